package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"rock/game"
	"rock/meta"
	"rock/searcher"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// DefaultPath is read when no configuration file is given; it may be absent.
var DefaultPath = filepath.Join(xdg.ConfigHome, "rock", "config.yaml")

const EnvPrefix = "ROCK"

type Config struct {
	Search SearchConfig `mapstructure:"search"`
	Game   GameConfig   `mapstructure:"game"`
	Play   PlayConfig   `mapstructure:"play"`
}

type SearchConfig struct {
	Depth      int           `mapstructure:"depth"`
	Duration   time.Duration `mapstructure:"duration"`
	Nodes      int64         `mapstructure:"nodes"`
	Goroutines int           `mapstructure:"goroutines"`
	TableSize  int           `mapstructure:"table_size"`
	Evaluation string        `mapstructure:"evaluation"`
}

type GameConfig struct {
	Variant  string `mapstructure:"variant"`
	MaxPlies int    `mapstructure:"max_plies"`
}

type PlayConfig struct {
	Difficulty int    `mapstructure:"difficulty"`
	Color      string `mapstructure:"color"`
}

// New returns a viper instance with every key defaulted and ROCK_* environment
// variables (e.g. ROCK_SEARCH_DEPTH) bound on top.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("search.depth", meta.SEARCH_DEPTH)
	v.SetDefault("search.duration", time.Duration(0))
	v.SetDefault("search.nodes", 0)
	v.SetDefault("search.goroutines", meta.GO_ROUTINES)
	v.SetDefault("search.table_size", meta.TABLE_SIZE)
	v.SetDefault("search.evaluation", "standard")
	v.SetDefault("game.variant", game.StandardName)
	v.SetDefault("game.max_plies", 0)
	v.SetDefault("play.difficulty", meta.DIFFICULTY)
	v.SetDefault("play.color", "white")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the file at path, or DefaultPath if it exists when path is empty.
func Load(path string) (*Config, error) {
	return Setup(New(), path)
}

// Setup is Load on a viper instance that may already have flags bound.
func Setup(v *viper.Viper, path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultPath
	}
	v.SetConfigFile(path)

	err := v.ReadInConfig()
	if err != nil && !(optional && errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch {
	case c.Search.Depth < 1 || c.Search.Depth > searcher.MaxDepth:
		return fmt.Errorf("search.depth must be within 1 and %d, got %d", searcher.MaxDepth, c.Search.Depth)
	case c.Search.Goroutines < 1:
		return fmt.Errorf("search.goroutines must be positive, got %d", c.Search.Goroutines)
	case c.Search.TableSize < 0 || c.Search.TableSize > searcher.MaxTableSize:
		return fmt.Errorf("search.table_size must be within 0 and %d, got %d", searcher.MaxTableSize, c.Search.TableSize)
	case c.Search.Duration < 0 || c.Search.Nodes < 0:
		return errors.New("search budgets must not be negative")
	case c.Game.MaxPlies < 0:
		return fmt.Errorf("game.max_plies must not be negative, got %d", c.Game.MaxPlies)
	}
	if _, ok := game.Evaluations[c.Search.Evaluation]; !ok {
		return fmt.Errorf("unknown search.evaluation %q", c.Search.Evaluation)
	}
	if _, err := c.Rules(); err != nil {
		return err
	}
	_, err := c.Color()
	return err
}

func (c *Config) Rules() (game.Rules, error) {
	return game.RulesByName(c.Game.Variant, game.WithMaxPlies(c.Game.MaxPlies))
}

func (c *Config) Color() (game.Player, error) {
	return game.ParsePlayer(c.Play.Color)
}

func (c *Config) SearchOptions() []searcher.Option {
	return []searcher.Option{
		searcher.WithDepth(c.Search.Depth),
		searcher.WithDuration(c.Search.Duration),
		searcher.WithNodes(c.Search.Nodes),
		searcher.WithGoroutines(c.Search.Goroutines),
		searcher.WithTableSize(c.Search.TableSize),
		searcher.WithEvaluationFn(game.Evaluations[c.Search.Evaluation]),
	}
}
