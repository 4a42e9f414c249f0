// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines to search with.
const GO_ROUTINES = 4

// SEARCH_DEPTH defines the default depth of iterative deepening.
const SEARCH_DEPTH = 6

// TABLE_SIZE defines log2 of the transposition table entries per goroutine.
const TABLE_SIZE = 17

// DIFFICULTY defines the default level of the computer opponent.
const DIFFICULTY = 10

// MAX_TURNS caps the number of plies the engine plays in one game.
const MAX_TURNS = 300
