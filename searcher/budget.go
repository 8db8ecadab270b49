package searcher

import (
	"context"
	"strings"
	"time"
)

type StopReason int

const (
	StopNone       StopReason = 0
	StopInterrupt  StopReason = 1 // Context cancelled or past its deadline
	StopMovetime   StopReason = 2 // Think time used up
	StopIterations StopReason = 4 // Iteration budget reached
	StopTerminal   StopReason = 8 // Nothing to search, the root is a finished game
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopIterations, "Iterations"},
		{StopTerminal, "Terminal"},
	}

	var names []string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			names = append(names, r.name)
		}
	}
	return strings.Join(names, "|")
}

// Limits bounds a search. Zero values are unlimited.
type Limits struct {
	Iterations int
	Movetime   time.Duration
}

// limiter decides, between iterations, whether a search may go on.
type limiter struct {
	limits Limits
	ctx    context.Context
	start  time.Time
}

func newLimiter(ctx context.Context, limits Limits) *limiter {
	return &limiter{limits: limits, ctx: ctx, start: time.Now()}
}

// bounded reports whether the search is guaranteed to stop.
func (l *limiter) bounded() bool {
	return l.limits.Iterations > 0 || l.limits.Movetime > 0 || l.ctx.Done() != nil
}

func (l *limiter) elapsed() time.Duration {
	return time.Since(l.start)
}

// reason returns why the search must stop after the given number of iterations, or StopNone.
func (l *limiter) reason(iterations int, terminal bool) StopReason {
	reason := StopNone
	if l.ctx.Err() != nil {
		reason |= StopInterrupt
	}
	if l.limits.Movetime > 0 && l.elapsed() >= l.limits.Movetime {
		reason |= StopMovetime
	}
	if l.limits.Iterations > 0 && iterations >= l.limits.Iterations {
		reason |= StopIterations
	}
	if terminal {
		reason |= StopTerminal
	}
	return reason
}
