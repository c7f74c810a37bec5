package pong

// EventKind identifies something that happened during a Start or Update call.
type EventKind int

const (
	EventServe      EventKind = iota // A parked ball was launched
	EventPaddleHit                   // The ball bounced off a paddle
	EventWallBounce                  // The ball bounced off the top or bottom
	EventScore                       // A paddle scored and the ball was parked
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventServe:
		return "serve"
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventScore:
		return "score"
	default:
		return "unknown"
	}
}

// Event is delivered synchronously to the callback set with WithEvents.
type Event struct {
	Kind   EventKind
	Paddle int     // Paddle involved, -1 when none
	Speed  float64 // Ball speed after the event (before parking, for EventScore)
}
