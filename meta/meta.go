// meta/meta.go
package meta

// CUTOFF defines the default search depth in plies below the root.
const CUTOFF = 3

// MAX_TURNS caps the plies of one game run by an engine.
const MAX_TURNS = 300

// NUM_GAMES defines the number of games per experiment match-up.
const NUM_GAMES = 10

// HEURISTIC names the default evaluation function.
const HEURISTIC = "mobility"
