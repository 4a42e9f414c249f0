package game

import (
	"fmt"
	"strings"
)

type Player uint8

const (
	White Player = iota
	Black
)

func (p Player) Other() Player {
	return p ^ 1
}

func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "black"
}

// ParsePlayer accepts w, white, b and black in any case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return White, nil
	case "b", "black":
		return Black, nil
	}
	return White, fmt.Errorf("unknown player %q", s)
}
