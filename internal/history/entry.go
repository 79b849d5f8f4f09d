// Package history holds the outcomes of past probe batches and derives the
// loss, latency and color figures the dashboard paints with.
package history

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"pingdeck/internal/grid"
	"pingdeck/internal/probe"
	"pingdeck/internal/screen"
)

// Entry records one probe batch. It is immutable after creation; loss,
// latency and color are derived on demand. A nil attempt slot means the
// probe could not be sent and is charged the timeout, same as a drop.
type Entry struct {
	attempts   []*probe.Result
	capturedAt time.Time
	timeoutMS  float64
}

// NewEntry wraps a batch of probe results captured now. timeoutMS is the
// latency charged to dropped or missing attempts.
func NewEntry(attempts []*probe.Result, timeoutMS float64) *Entry {
	return &Entry{
		attempts:   attempts,
		capturedAt: time.Now(),
		timeoutMS:  timeoutMS,
	}
}

// CapturedAt returns when the batch was recorded.
func (e *Entry) CapturedAt() time.Time {
	return e.capturedAt
}

// Sent returns the number of probes in the batch.
func (e *Entry) Sent() int {
	return len(e.attempts)
}

// Received returns the number of probes that got a reply.
func (e *Entry) Received() int {
	n := 0
	for _, a := range e.attempts {
		if a != nil && !a.Dropped {
			n++
		}
	}
	return n
}

// Loss returns the fraction of the batch that went unanswered, in [0, 1].
// An empty batch has zero loss.
func (e *Entry) Loss() float64 {
	sent := e.Sent()
	if sent == 0 {
		return 0
	}
	return 1 - float64(e.Received())/float64(sent)
}

// Latency returns the summed effective latency of the batch in
// milliseconds. Dropped and unsent probes contribute the timeout, so lossy
// batches are penalized rather than rewarded.
func (e *Entry) Latency() float64 {
	acc := 0.0
	for _, a := range e.attempts {
		if a == nil || a.Dropped {
			acc += e.timeoutMS
		} else {
			acc += a.LatencyMS
		}
	}
	return acc
}

// Color derives the entry's base color. minLatency is the best latency ever
// observed; the mix degrades multiplicatively with loss and with latency
// above that reference, so only a lossless batch at the best-ever latency
// is drawn fully good.
func (e *Entry) Color(minLatency float64) colorful.Color {
	latRatio := 1.0
	if lat := e.Latency(); lat > 0 {
		latRatio = minLatency / lat
		if latRatio > 1 {
			latRatio = 1
		} else if latRatio < 0 {
			latRatio = 0
		}
	}
	mix := (1 - e.Loss()) * latRatio
	return Mix(colorBad, colorGood, mix)
}

// Render paints the entry into area: a background in the derived color,
// tinted per tint, with a centered summary label when it fits. A narrow
// cell falls back to a compact label and then to color alone.
func (e *Entry) Render(c *screen.Canvas, area grid.Rect, minLatency float64, tint Tint) {
	if area.W <= 0 || area.H <= 0 {
		return
	}

	col := e.Color(minLatency)
	if tint.Weight > 0 {
		col = Mix(col, tint.Color, tint.Weight)
	}
	c.Fill(area, col.Clamped().Hex())

	pct := int(e.Loss() * 100)
	long := fmt.Sprintf(" %d packets transmitted, %d received, %d%% packet loss, time %.1fms ",
		e.Sent(), e.Received(), pct, e.Latency())
	short := fmt.Sprintf(" %d%% [%.0fms] ", pct, e.Latency())

	var info string
	switch {
	case area.W >= len(long):
		info = long
	case area.W >= len(short):
		info = short
	default:
		return
	}

	x := area.X + area.W/2 - len(info)/2
	y := area.Y + area.H/2
	c.SetString(x, y, info, area.X+area.W-x)
}
