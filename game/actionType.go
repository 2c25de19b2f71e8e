package game

// MoveKind tags the variant carried by a Move.
type MoveKind int

const (
	PlaceMove MoveKind = iota
	StepMove
	CaptureMove
)

func (k MoveKind) String() string {
	switch k {
	case PlaceMove:
		return "place"
	case StepMove:
		return "step"
	case CaptureMove:
		return "capture"
	default:
		return "unknown"
	}
}
