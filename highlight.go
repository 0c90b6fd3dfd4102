package folderdrop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// HighlightDuration is how long, in seconds, an item's Highlight takes to
// ease between 0 and 1.
const HighlightDuration float32 = 0.15

// highlightTween eases one item's Highlight toward its state's target.
// Only the highlight is tweened; positions always jump.
type highlightTween struct {
	tween  *gween.Tween
	target float32
}

func highlightTarget(s InteractionState) float32 {
	if s == StateIdle {
		return 0
	}
	return 1
}

// updateHighlights advances every live item's highlight by dt seconds,
// restarting the tween whenever the item's target flips.
func (w *World) updateHighlights(dt float32) {
	for i := range w.items {
		slot := &w.items[i]
		if !slot.alive {
			continue
		}
		target := highlightTarget(slot.item.State)
		if slot.hl.tween == nil && float32(slot.item.Highlight) == target {
			continue
		}
		if slot.hl.tween == nil || slot.hl.target != target {
			slot.hl = highlightTween{
				tween:  gween.New(float32(slot.item.Highlight), target, HighlightDuration, ease.OutQuad),
				target: target,
			}
		}
		val, finished := slot.hl.tween.Update(dt)
		slot.item.Highlight = float64(val)
		if finished {
			slot.item.Highlight = float64(target)
			slot.hl.tween = nil
		}
	}
}
