// Package probe issues reachability checks against a single target by
// shelling out to the system ping command, one invocation per probe. The
// rest of the program treats it as an opaque source of batch results.
package probe

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"pingdeck/internal/logger"
)

// Result is the outcome of one probe. Dropped means the probe was sent but
// no reply arrived within the timeout; LatencyMS is only meaningful when
// Dropped is false.
type Result struct {
	Dropped   bool
	LatencyMS float64
}

// Pinger probes a fixed address with a fixed per-probe timeout.
type Pinger struct {
	addr    string
	timeout time.Duration
	log     logger.Logger
}

// New returns a pinger for addr. Each probe is given timeout to complete.
func New(addr string, timeout time.Duration) *Pinger {
	return &Pinger{
		addr:    addr,
		timeout: timeout,
		log:     logger.NewEnvLogger("[probe]"),
	}
}

// Addr returns the probed address.
func (p *Pinger) Addr() string {
	return p.addr
}

// Batch issues count probes sequentially and returns one slot per probe.
// A nil slot means the probe could not be sent at all (e.g. no ping binary);
// a Dropped result means it was sent and timed out or went unanswered.
func (p *Pinger) Batch(ctx context.Context, count int) []*Result {
	out := make([]*Result, count)
	for i := range out {
		out[i] = p.one(ctx)
	}
	return out
}

func (p *Pinger) one(ctx context.Context) *Result {
	var args []string
	if runtime.GOOS == "windows" {
		args = []string{"-n", "1", "-w", strconv.FormatInt(p.timeout.Milliseconds(), 10), p.addr}
	} else {
		args = []string{"-c", "1", p.addr}
	}

	// The context deadline kills pings that outrun the timeout on platforms
	// where no timeout flag was passed.
	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := exec.CommandContext(cctx, "ping", args...).CombinedOutput()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			// The command never started; the probe was not sent.
			p.log.Error("ping not runnable: %v", err)
			return nil
		}
		if errors.Is(cctx.Err(), context.DeadlineExceeded) {
			return &Result{Dropped: true}
		}
		// ping exits non-zero when the host is unreachable.
		p.log.Debug("ping %s failed: %v", p.addr, err)
		return &Result{Dropped: true}
	}

	if ms, ok := ParseLatency(string(out)); ok {
		return &Result{LatencyMS: ms}
	}
	return &Result{Dropped: true}
}

// ParseLatency extracts the round-trip time in milliseconds from ping
// output. A reply is recognised by a "ttl=" marker (any case); the time is
// taken from the "time=XX" or "time<XX" field that follows. ok is false
// when the output holds no parsable reply.
func ParseLatency(out string) (float64, bool) {
	if !strings.Contains(strings.ToLower(out), "ttl=") {
		return 0, false
	}
	idx := strings.Index(out, "time")
	if idx == -1 {
		return 0, false
	}
	j := idx + len("time")
	for j < len(out) && (out[j] == '=' || out[j] == '<' || out[j] == ' ') {
		j++
	}
	start := j
	for j < len(out) && (out[j] == '.' || (out[j] >= '0' && out[j] <= '9')) {
		j++
	}
	if start == j {
		return 0, false
	}
	v, err := strconv.ParseFloat(out[start:j], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
