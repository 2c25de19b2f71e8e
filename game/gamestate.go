package game

const (
	TotalTigers    = 4
	TotalGoats     = 20 // Goats available for placement
	GoatsToCapture = 5  // Captures needed for a tiger win
)

// Player identifies a side. NoPlayer is only used as "no winner yet".
type Player int

const (
	NoPlayer Player = iota
	GoatPlayer
	TigerPlayer
)

func (p Player) String() string {
	switch p {
	case GoatPlayer:
		return "Goat"
	case TigerPlayer:
		return "Tiger"
	default:
		return "None"
	}
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == TigerPlayer {
		return GoatPlayer
	}
	return TigerPlayer
}

type Phase int

const (
	PlacementPhase Phase = iota
	MovementPhase
)

func (p Phase) String() string {
	if p == PlacementPhase {
		return "placement"
	}
	return "movement"
}

// GameState holds the counters that change during the game, everything except the board.
type GameState struct {
	Player        Player // Side to move
	GoatsPlaced   int    // 0..TotalGoats, never decreases
	GoatsCaptured int    // 0..GoatsToCapture, never decreases
}

// NewGameState returns the state at the start of a game: Goat moves first.
func NewGameState() GameState {
	return GameState{Player: GoatPlayer}
}

// Phase is derived from the number of goats placed so far.
func (gs GameState) Phase() Phase {
	if gs.GoatsPlaced < TotalGoats {
		return PlacementPhase
	}
	return MovementPhase
}

// GoatsOnBoard is the number of goats placed and not yet captured.
func (gs GameState) GoatsOnBoard() int {
	return gs.GoatsPlaced - gs.GoatsCaptured
}
