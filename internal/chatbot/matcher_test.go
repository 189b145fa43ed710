package chatbot

import (
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestReply(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name     string
		input    string
		wantRule int // index into DefaultRules, -1 for fallback
	}{
		{
			name:     "saludo simple",
			input:    "Hola",
			wantRule: 0,
		},
		{
			name:     "mayúsculas se pliegan",
			input:    "HOLA BUENAS",
			wantRule: 0,
		},
		{
			name:     "pregunta de precio con acento",
			input:    "¿Cuánto cuesta?",
			wantRule: 5,
		},
		{
			name:     "precio sin acento",
			input:    "cuanto cuesta el plan",
			wantRule: 5,
		},
		{
			name:     "registro en beta",
			input:    "quiero registrarme en la beta",
			wantRule: 3,
		},
		{
			name:     "comunidades",
			input:    "muéstrame las comunidades",
			wantRule: 4,
		},
		{
			name:     "seguridad",
			input:    "¿es confiable la plataforma?",
			// "plataforma" hits rule 1 before the security rule is reached
			wantRule: 1,
		},
		{
			name:     "sin coincidencias",
			input:    "xyzzy",
			wantRule: -1,
		},
		{
			name:     "substring dentro de palabra",
			input:    "rehey", // contains "hey"
			wantRule: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Reply(tt.input)

			want := Fallback
			if tt.wantRule >= 0 {
				want = DefaultRules[tt.wantRule].Response
			}

			if got != want {
				t.Errorf("Reply(%q) = %.40q..., want rule %d", tt.input, got, tt.wantRule)
			}
		})
	}
}

// An earlier rule always wins even when a later rule also matches.
func TestReplyOrderPrecedence(t *testing.T) {
	m := NewMatcher()

	// "hola" (rule 0) and "precio" (rule 5) both present
	got := m.Reply("hola, ¿qué precio tiene?")
	if got != DefaultRules[0].Response {
		t.Errorf("expected greeting rule to pre-empt pricing rule")
	}

	// reversed word order changes nothing: table order decides, not position
	got = m.Reply("precio... hola")
	if got != DefaultRules[0].Response {
		t.Errorf("expected greeting rule regardless of word order in input")
	}
}

func TestReplyCustomRules(t *testing.T) {
	rules := []Rule{
		{Keywords: []string{"uno"}, Response: "primera"},
		{Keywords: []string{"dos", "uno dos"}, Response: "segunda"},
	}
	m := NewMatcher(WithRules(rules, "ninguna"))

	if got := m.Reply("uno dos"); got != "primera" {
		t.Errorf("Reply = %q, want first rule to win", got)
	}
	if got := m.Reply("tres"); got != "ninguna" {
		t.Errorf("Reply = %q, want fallback", got)
	}
}

func TestThinkingDelayBounds(t *testing.T) {
	m := NewMatcher(
		WithDelay(2*time.Second, time.Second),
		WithRandSource(rand.NewSource(1)),
	)

	for i := 0; i < 100; i++ {
		d := m.ThinkingDelay()
		if d < 2*time.Second || d >= 3*time.Second {
			t.Fatalf("ThinkingDelay = %v, want [2s, 3s)", d)
		}
	}
}

// One matcher is shared by every request goroutine on the server, so
// concurrent delay draws must be safe under the race detector.
func TestThinkingDelayConcurrent(t *testing.T) {
	m := NewMatcher(WithDelay(2*time.Second, time.Second))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if d := m.ThinkingDelay(); d < 2*time.Second || d >= 3*time.Second {
					t.Errorf("ThinkingDelay = %v, want [2s, 3s)", d)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestThinkingDelayNoJitter(t *testing.T) {
	m := NewMatcher(WithDelay(500*time.Millisecond, 0))
	if d := m.ThinkingDelay(); d != 500*time.Millisecond {
		t.Errorf("ThinkingDelay = %v, want exactly the base delay", d)
	}
}

// Every rule keyword must be lowercase, otherwise it can never match the
// case-folded input.
func TestRuleKeywordsAreLowercase(t *testing.T) {
	for i, rule := range DefaultRules {
		for _, keyword := range rule.Keywords {
			if keyword != strings.ToLower(keyword) {
				t.Errorf("rule %d keyword %q is not lowercase", i, keyword)
			}
		}
	}
}
