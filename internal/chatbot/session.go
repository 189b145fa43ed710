package chatbot

import (
	"errors"
	"strings"
	"time"

	"github.com/pubnicaragua/investi-documentacion2/internal/domain/entity"
)

// Session errors returned by Submit.
var (
	// ErrEmptyMessage means the input was empty or whitespace only; the
	// transcript is not mutated.
	ErrEmptyMessage = errors.New("empty message")
	// ErrReplyPending means a previous submission has not resolved yet.
	ErrReplyPending = errors.New("a reply is still pending")
)

// Session is one in-memory chat transcript. It lives for a single visit:
// no persistence, and a fresh session starts with only the greeting.
//
// Lifecycle per submission: the user message and a typing placeholder are
// appended immediately; Resolve removes the placeholder and appends the
// final bot message. The placeholder is never mutated in place.
//
// Session is not safe for concurrent use; the host event loop (TUI or a
// single HTTP handler goroutine) owns it.
type Session struct {
	matcher *Matcher
	msgs    []entity.ChatMessage
	nextID  int
	pending string // resolved reply text while the placeholder is shown
	now     func() time.Time
}

// NewSession creates a transcript seeded with the greeting
func NewSession(matcher *Matcher) *Session {
	s := &Session{
		matcher: matcher,
		nextID:  1,
		now:     time.Now,
	}
	s.append(Greeting, true, false)
	return s
}

// Submit records a user message and the typing placeholder, and returns the
// delay after which Resolve should be called. Empty or whitespace-only
// input is rejected without touching the transcript, as is a submission
// while a previous reply is still pending.
func (s *Session) Submit(text string) (time.Duration, error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrEmptyMessage
	}
	if s.Pending() {
		return 0, ErrReplyPending
	}

	s.append(text, false, false)
	s.append("", true, true)
	s.pending = s.matcher.Reply(text)

	return s.matcher.ThinkingDelay(), nil
}

// Resolve replaces the typing placeholder with the final bot message.
// Calling Resolve with no pending reply is a no-op.
func (s *Session) Resolve() {
	if !s.Pending() {
		return
	}

	kept := s.msgs[:0]
	for _, msg := range s.msgs {
		if !msg.Typing {
			kept = append(kept, msg)
		}
	}
	s.msgs = kept

	s.append(s.pending, true, false)
	s.pending = ""
}

// Pending reports whether a typing placeholder is on the transcript
func (s *Session) Pending() bool {
	for _, msg := range s.msgs {
		if msg.Typing {
			return true
		}
	}
	return false
}

// Messages returns a copy of the transcript
func (s *Session) Messages() []entity.ChatMessage {
	out := make([]entity.ChatMessage, len(s.msgs))
	copy(out, s.msgs)
	return out
}

func (s *Session) append(text string, isBot, typing bool) {
	s.msgs = append(s.msgs, entity.ChatMessage{
		ID:        s.nextID,
		Text:      text,
		IsBot:     isBot,
		Timestamp: s.now(),
		Typing:    typing,
	})
	s.nextID++
}
