package debugui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/tetris"
)

// LogEntry is one recorded event.
type LogEntry struct {
	Seq   uint64
	Event tetris.Event
}

// EventLog is a tetris.Observer keeping the most recent events in a ring.
type EventLog struct {
	mu       sync.Mutex
	entries  []LogEntry
	next     int
	seq      uint64
	counts   map[tetris.EventKind]int
	filter   string
	hideMove bool
}

// NewEventLog keeps up to capacity events.
func NewEventLog(capacity int) *EventLog {
	return &EventLog{
		entries:  make([]LogEntry, 0, max(capacity, 1)),
		counts:   make(map[tetris.EventKind]int),
		hideMove: true,
	}
}

// Observe implements tetris.Observer.
func (l *EventLog) Observe(e tetris.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	l.counts[e.Kind]++
	entry := LogEntry{Seq: l.seq, Event: e}
	if len(l.entries) < cap(l.entries) {
		l.entries = append(l.entries, entry)
		return
	}
	l.entries[l.next] = entry
	l.next = (l.next + 1) % len(l.entries)
}

// Entries returns the kept events, oldest first.
func (l *EventLog) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LogEntry, 0, len(l.entries))
	out = append(out, l.entries[l.next:]...)
	return append(out, l.entries[:l.next]...)
}

// Count is how many events of kind were observed in total.
func (l *EventLog) Count(kind tetris.EventKind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[kind]
}

// Clear drops the kept events. Totals are kept.
func (l *EventLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
	l.next = 0
}

// Filtered returns the kept events whose text contains filter, oldest
// first, optionally without moves.
func (l *EventLog) Filtered(filter string, hideMoves bool) []LogEntry {
	var out []LogEntry
	for _, entry := range l.Entries() {
		if hideMoves && entry.Event.Kind == tetris.EventMoved {
			continue
		}
		if filter != "" && !strings.Contains(entry.Event.String(), filter) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func (l *EventLog) Render(frame *loop.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 330), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)

	if !imgui.BeginV("Events", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##filter", "Filter...", &l.filter, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		l.Clear()
	}
	imgui.Checkbox("Hide moves", &l.hideMove)

	if imgui.TreeNodeStr("Totals") {
		for kind := tetris.EventSpawned; kind <= tetris.EventReset; kind++ {
			imgui.BulletText(fmt.Sprintf("%s: %d", kind, l.Count(kind)))
		}
		imgui.TreePop()
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EventTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Event")
		imgui.TableHeadersRow()

		entries := l.Filtered(l.filter, l.hideMove)
		for i := len(entries) - 1; i >= 0; i-- {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entries[i].Seq))
			imgui.TableNextColumn()
			imgui.Text(entries[i].Event.String())
		}
		imgui.EndTable()
	}

	imgui.End()
}
