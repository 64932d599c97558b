package app

// EventKind enumerates the logical actions delivered by the input layer.
type EventKind int

const (
	EventUp EventKind = iota
	EventDown
	EventConfirm
	EventBack
	EventType
	EventDelete
	EventRetry
	EventSkip
	EventQuit
)

// Event is a decoded user action. Runes is only set for EventType.
type Event struct {
	Kind  EventKind
	Runes []rune
}

// Dispatch routes an event to the matching operation. It returns true when the
// process should exit.
func (c *Controller) Dispatch(ev Event) bool {
	switch ev.Kind {
	case EventUp:
		c.Previous()
	case EventDown:
		c.Next()
	case EventConfirm:
		c.Confirm()
	case EventBack:
		c.Back()
	case EventType:
		c.Type(ev.Runes)
	case EventDelete:
		c.Backspace()
	case EventRetry:
		c.Retry()
	case EventSkip:
		c.Skip()
	case EventQuit:
		return true
	}
	return false
}
