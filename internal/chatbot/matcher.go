package chatbot

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Matcher selects a canned response for free-text input. It holds no
// per-conversation state and is safe to share across sessions; the jitter
// source is the only mutable state and is guarded by a mutex.
type Matcher struct {
	rules    []Rule
	fallback string

	baseDelay time.Duration
	jitter    time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Matcher
type Option func(*Matcher)

// WithRules replaces the default rule table
func WithRules(rules []Rule, fallback string) Option {
	return func(m *Matcher) {
		m.rules = rules
		m.fallback = fallback
	}
}

// WithDelay sets the simulated thinking time: base plus a uniform random
// jitter. The delay is cosmetic realism, not a timeout.
func WithDelay(base, jitter time.Duration) Option {
	return func(m *Matcher) {
		m.baseDelay = base
		m.jitter = jitter
	}
}

// WithRandSource sets the jitter randomness source, for deterministic tests
func WithRandSource(src rand.Source) Option {
	return func(m *Matcher) {
		m.rng = rand.New(src)
	}
}

// NewMatcher creates a matcher over the product rule table
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		rules:     DefaultRules,
		fallback:  Fallback,
		baseDelay: 2 * time.Second,
		jitter:    time.Second,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Reply returns the response for the first rule whose keyword list has a
// substring hit in the case-folded input, or the fallback when none match.
// There is no scoring: an earlier rule always pre-empts a later one, even
// when the later rule's keyword is a longer or "better" fit.
func (m *Matcher) Reply(input string) string {
	lower := strings.ToLower(input)
	for _, rule := range m.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Response
			}
		}
	}
	return m.fallback
}

// ThinkingDelay draws the simulated typing latency: base delay plus a
// uniform random jitter.
func (m *Matcher) ThinkingDelay() time.Duration {
	if m.jitter <= 0 {
		return m.baseDelay
	}
	m.mu.Lock()
	jitter := m.rng.Int63n(int64(m.jitter))
	m.mu.Unlock()
	return m.baseDelay + time.Duration(jitter)
}
