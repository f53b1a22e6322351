package engine

import (
	"slices"
	"sync"
	"time"
)

const (
	defaultTraceLimit  = 240
	defaultFrameBudget = 16667 * time.Microsecond
)

// PhaseTimes holds the milliseconds spent in each pass of one frame.
type PhaseTimes struct {
	Measure float64 `json:"measureMs"`
	Arrange float64 `json:"arrangeMs"`
	Render  float64 `json:"renderMs"`
}

// FrameSample is one traced frame.
type FrameSample struct {
	At      int64      `json:"ts"`
	TotalMs float64    `json:"frameMs"`
	Phases  PhaseTimes `json:"phases"`
	Nodes   int        `json:"nodes"`
}

// FrameTimeline is what /frames serves.
type FrameTimeline struct {
	Samples    []FrameSample `json:"samples"`
	SlowFrames int           `json:"slowFrames"`
	BudgetMs   float64       `json:"budgetMs"`
}

// FrameTrace keeps the most recent samples, oldest first, and counts
// every recorded frame that went over budget.
type FrameTrace struct {
	mu      sync.Mutex
	limit   int
	budget  time.Duration
	samples []FrameSample
	slow    int
}

// NewFrameTrace returns a trace holding up to limit samples. Non-positive
// arguments select 240 samples and a 60 Hz budget.
func NewFrameTrace(limit int, budget time.Duration) *FrameTrace {
	if limit <= 0 {
		limit = defaultTraceLimit
	}
	if budget <= 0 {
		budget = defaultFrameBudget
	}
	return &FrameTrace{limit: limit, budget: budget, samples: make([]FrameSample, 0, limit)}
}

// Record appends a sample, evicting the oldest when full.
func (t *FrameTrace) Record(sample FrameSample, took time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.samples) == t.limit {
		t.samples = slices.Delete(t.samples, 0, 1)
	}
	t.samples = append(t.samples, sample)
	if took > t.budget {
		t.slow++
	}
}

// Timeline copies the current samples.
func (t *FrameTrace) Timeline() FrameTimeline {
	t.mu.Lock()
	defer t.mu.Unlock()
	return FrameTimeline{
		Samples:    slices.Clone(t.samples),
		SlowFrames: t.slow,
		BudgetMs:   millis(t.budget),
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
