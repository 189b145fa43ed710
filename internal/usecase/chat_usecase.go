package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pubnicaragua/investi-documentacion2/internal/chatbot"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain"
)

// ChatReply is the scripted answer to one visitor message. TypingFor is
// how long a client should show the typing indicator before revealing
// the text; the delay is presentation, the reply is computed instantly.
type ChatReply struct {
	Text      string
	TypingFor time.Duration
}

// ChatUsecase answers landing-page chat messages from the scripted rule set
type ChatUsecase interface {
	Reply(ctx context.Context, message string) (*ChatReply, error)
	Greeting() string
	QuickPrompts() []string
}

type chatUsecase struct {
	matcher *chatbot.Matcher
	logger  *slog.Logger
}

// NewChatUsecase creates the chat business logic over the given matcher
func NewChatUsecase(matcher *chatbot.Matcher, logger *slog.Logger) ChatUsecase {
	return &chatUsecase{matcher: matcher, logger: logger}
}

// Reply resolves the scripted answer for one message
func (u *chatUsecase) Reply(ctx context.Context, message string) (*ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domain.NewInvalidInputError("message is required")
	}

	reply := u.matcher.Reply(message)
	delay := u.matcher.ThinkingDelay()
	u.logger.Debug("chat reply resolved", "typing_ms", delay.Milliseconds())

	return &ChatReply{Text: reply, TypingFor: delay}, nil
}

// Greeting returns the opening bot message
func (u *chatUsecase) Greeting() string {
	return chatbot.Greeting
}

// QuickPrompts returns the suggested starter questions
func (u *chatUsecase) QuickPrompts() []string {
	return chatbot.QuickPrompts
}
