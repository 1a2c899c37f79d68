package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []Event
}

func (r *recorder) Observe(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	kinds := make([]EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func TestBusFlush(t *testing.T) {
	bus := NewBus()
	var order []string
	bus.Subscribe(ObserverFunc(func(e Event) { order = append(order, "a:"+e.Kind.String()) }))
	bus.Subscribe(ObserverFunc(func(e Event) { order = append(order, "b:"+e.Kind.String()) }))

	bus.Emit(Event{Kind: EventLocked})
	bus.Emit(Event{Kind: EventSpawned})
	assert.Empty(t, order, "nothing is delivered before Flush")
	assert.Equal(t, 2, bus.Pending())

	bus.Flush()
	assert.Equal(t, []string{"a:locked", "b:locked", "a:spawned", "b:spawned"}, order)
	assert.Equal(t, 0, bus.Pending())

	bus.Flush()
	assert.Len(t, order, 4)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	a, b := &recorder{}, &recorder{}
	idA := bus.Subscribe(a)
	bus.Subscribe(b)
	assert.Equal(t, 2, bus.Len())

	assert.True(t, bus.Unsubscribe(idA))
	assert.False(t, bus.Unsubscribe(idA))
	assert.False(t, bus.Unsubscribe(99))
	assert.Equal(t, 1, bus.Len())

	bus.Emit(Event{Kind: EventMoved})
	bus.Flush()
	assert.Empty(t, a.events)
	assert.Len(t, b.events, 1)
}

func TestBusEmitDuringFlush(t *testing.T) {
	bus := NewBus()
	rec := &recorder{}
	bus.Subscribe(ObserverFunc(func(e Event) {
		if e.Kind == EventLinesCleared {
			bus.Emit(Event{Kind: EventScoreChanged, Score: 100})
			bus.Flush()
		}
	}))
	bus.Subscribe(rec)

	bus.Emit(Event{Kind: EventLinesCleared, Lines: 1})
	bus.Flush()

	assert.Equal(t, []EventKind{EventLinesCleared, EventScoreChanged}, rec.kinds())
	assert.Equal(t, 0, bus.Pending())
}

func TestBusUnsubscribeDuringFlush(t *testing.T) {
	bus := NewBus()
	var order []string
	var self SubscriptionId
	self = bus.Subscribe(ObserverFunc(func(e Event) {
		order = append(order, "a")
		bus.Unsubscribe(self)
	}))
	bus.Subscribe(ObserverFunc(func(e Event) { order = append(order, "b") }))
	bus.Subscribe(ObserverFunc(func(e Event) { order = append(order, "c") }))

	bus.Emit(Event{Kind: EventLocked})
	bus.Flush()
	assert.Equal(t, []string{"a", "b", "c"}, order)

	order = nil
	bus.Emit(Event{Kind: EventSpawned})
	bus.Flush()
	assert.Equal(t, []string{"b", "c"}, order)
	assert.Equal(t, 2, bus.Len())
}

func TestBusUnsubscribeOtherDuringFlush(t *testing.T) {
	bus := NewBus()
	var order []string
	var victim SubscriptionId
	bus.Subscribe(ObserverFunc(func(e Event) {
		order = append(order, "a")
		bus.Unsubscribe(victim)
	}))
	victim = bus.Subscribe(ObserverFunc(func(e Event) { order = append(order, "b") }))
	bus.Subscribe(ObserverFunc(func(e Event) { order = append(order, "c") }))

	bus.Emit(Event{Kind: EventLocked})
	bus.Flush()
	assert.Equal(t, []string{"a", "c"}, order, "removed observer is skipped, no one hears twice")
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Event{Kind: EventSpawned, Piece: T, X: 4}, "spawned T at (4,0)"},
		{Event{Kind: EventMoved, Piece: I, DX: -1}, "moved I (-1,+0)"},
		{Event{Kind: EventHardDropped, Piece: O, DY: 18}, "hard-dropped O 18 rows"},
		{Event{Kind: EventLinesCleared, Lines: 2}, "lines-cleared 2"},
		{Event{Kind: EventGameOver, Score: 400}, "game-over score=400"},
		{Event{Kind: 0}, "EventKind(0) I at (0,0)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.event.String())
	}
}
