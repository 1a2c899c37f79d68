package tetris

import (
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"
)

// EventKind names something that happened inside the simulation.
type EventKind uint8

const (
	EventSpawned EventKind = iota + 1
	EventMoved
	EventRotated
	EventHardDropped
	EventLocked
	EventLinesCleared
	EventScoreChanged
	EventGameOver
	EventReset
)

var eventNames = map[EventKind]string{
	EventSpawned:      "spawned",
	EventMoved:        "moved",
	EventRotated:      "rotated",
	EventHardDropped:  "hard-dropped",
	EventLocked:       "locked",
	EventLinesCleared: "lines-cleared",
	EventScoreChanged: "score-changed",
	EventGameOver:     "game-over",
	EventReset:        "reset",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is delivered to observers by value once the operation that raised
// it has finished.
type Event struct {
	Kind  EventKind
	Piece Kind

	// X, Y is the piece origin after the event.
	X, Y int

	// DX, DY is the translation for EventMoved; DY is the distance
	// travelled for EventHardDropped.
	DX, DY int

	// Lines is set for EventLinesCleared.
	Lines int

	// Score is the running score for EventScoreChanged, EventGameOver and
	// EventReset.
	Score int
}

func (e Event) String() string {
	switch e.Kind {
	case EventMoved:
		return fmt.Sprintf("%s %s (%+d,%+d)", e.Kind, e.Piece, e.DX, e.DY)
	case EventHardDropped:
		return fmt.Sprintf("%s %s %d rows", e.Kind, e.Piece, e.DY)
	case EventLinesCleared:
		return fmt.Sprintf("%s %d", e.Kind, e.Lines)
	case EventScoreChanged, EventGameOver, EventReset:
		return fmt.Sprintf("%s score=%d", e.Kind, e.Score)
	default:
		return fmt.Sprintf("%s %s at (%d,%d)", e.Kind, e.Piece, e.X, e.Y)
	}
}

// Observer receives simulation events. Observers get values only and have
// no handle to mutate the simulation.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

// SubscriptionId identifies an observer registered on a Bus.
type SubscriptionId uint32

// Bus buffers events raised during an operation and delivers them to
// observers in subscription order when flushed. Nothing is delivered while
// an operation is still mutating state.
type Bus struct {
	observers *intmap.Map[SubscriptionId, Observer]
	order     []SubscriptionId
	nextId    SubscriptionId
	pending   []Event
	flushing  bool
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{
		observers: intmap.New[SubscriptionId, Observer](8),
	}
}

// Subscribe registers an observer and returns its id.
func (b *Bus) Subscribe(o Observer) SubscriptionId {
	b.nextId++
	id := b.nextId
	b.observers.Put(id, o)
	b.order = append(b.order, id)
	return id
}

// Unsubscribe removes an observer. It reports whether the id was known.
func (b *Bus) Unsubscribe(id SubscriptionId) bool {
	if _, ok := b.observers.Get(id); !ok {
		return false
	}
	b.observers.Del(id)
	// A flush in progress may be ranging over the old slice.
	b.order = slices.DeleteFunc(slices.Clone(b.order), func(v SubscriptionId) bool { return v == id })
	return true
}

// Len is the number of registered observers.
func (b *Bus) Len() int {
	return b.observers.Len()
}

// Pending is the number of buffered, undelivered events.
func (b *Bus) Pending() int {
	return len(b.pending)
}

// Emit queues an event for the next Flush.
func (b *Bus) Emit(e Event) {
	b.pending = append(b.pending, e)
}

// Flush delivers every queued event to every observer, then empties the
// queue. Events queued by observers during delivery go out in the same
// flush.
func (b *Bus) Flush() {
	if b.flushing {
		return
	}
	b.flushing = true
	defer func() { b.flushing = false }()

	for i := 0; i < len(b.pending); i++ {
		e := b.pending[i]
		for _, id := range b.order {
			if o, ok := b.observers.Get(id); ok {
				o.Observe(e)
			}
		}
	}
	b.pending = b.pending[:0]
}
