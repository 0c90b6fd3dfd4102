package folderdrop

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-tick phase timings.
// Only populated when World.debug is true.
type debugStats struct {
	interactionTime time.Duration
	dragTime        time.Duration
	insertTime      time.Duration
	liveItems       int
}

// debugLog prints phase timings to stderr.
func (w *World) debugLog(stats debugStats) {
	if !w.debug {
		return
	}
	total := stats.interactionTime + stats.dragTime + stats.insertTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[folderdrop] tick %d | interaction: %v | drag: %v | insert: %v | total: %v | live: %d\n",
		w.tick, stats.interactionTime, stats.dragTime, stats.insertTime, total, stats.liveItems)
}

// debugEvent prints drag and drop outcomes. Hover churn is not logged.
func (w *World) debugEvent(ev Event) {
	switch ev.Type {
	case EventInserted:
		_, _ = fmt.Fprintf(os.Stderr, "[folderdrop] item %d inserted into container %d at (%.1f, %.1f)\n",
			ev.Item, ev.Container, ev.X, ev.Y)
	case EventWrongContainer:
		_, _ = fmt.Fprintf(os.Stderr, "[folderdrop] item %d rejected: wrong container %d\n",
			ev.Item, ev.Container)
	case EventWrongOrder:
		_, _ = fmt.Fprintf(os.Stderr, "[folderdrop] item %d rejected: container %d expects item %d next\n",
			ev.Item, ev.Container, ev.Expected)
	case EventDragStart, EventDragEnd:
		_, _ = fmt.Fprintf(os.Stderr, "[folderdrop] item %d %s at (%.1f, %.1f)\n",
			ev.Item, ev.Type, ev.X, ev.Y)
	}
}

// debugCheckLive panics with a descriptive message when a dead or unknown
// item handle is used. Callers only invoke it in debug mode.
func debugCheckLive(w *World, h ItemHandle, op string) {
	if h < 0 || int(h) >= len(w.items) {
		panic(fmt.Sprintf("folderdrop debug: %s on unknown item handle %d", op, h))
	}
	if !w.items[h].alive {
		panic(fmt.Sprintf("folderdrop debug: %s on inserted item %d (handle %d)", op, w.items[h].item.ID, h))
	}
}
