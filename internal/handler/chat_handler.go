package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/pubnicaragua/investi-documentacion2/internal/handler/dto"
	"github.com/pubnicaragua/investi-documentacion2/internal/usecase"
)

// ChatHandler handles the landing-page assistant endpoints
type ChatHandler struct {
	usecase usecase.ChatUsecase
	logger  *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{usecase: uc, logger: logger}
}

// Reply answers one visitor message
// @Summary Chat with the assistant
// @Description Returns the scripted reply plus the typing-indicator duration
// @Tags chat
// @Accept json
// @Produce json
// @Param message body dto.ChatRequest true "Visitor message"
// @Success 200 {object} Response{data=dto.ChatResponse}
// @Failure 400 {object} Response
// @Router /api/v1/chat [post]
func (h *ChatHandler) Reply(ctx context.Context, c *app.RequestContext) {
	var req dto.ChatRequest
	if err := c.BindJSON(&req); err != nil {
		BadRequestResponse(c, "invalid request body")
		return
	}

	reply, err := h.usecase.Reply(ctx, req.Message)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ChatResponse{
		Reply:    reply.Text,
		TypingMs: reply.TypingFor.Milliseconds(),
	})
}

// Config returns the greeting and quick prompts for a fresh transcript
// @Summary Chat configuration
// @Description Returns the opening message and suggested questions
// @Tags chat
// @Produce json
// @Success 200 {object} Response{data=dto.ChatConfigResponse}
// @Router /api/v1/chat/config [get]
func (h *ChatHandler) Config(ctx context.Context, c *app.RequestContext) {
	SuccessResponse(c, dto.ChatConfigResponse{
		Greeting:     h.usecase.Greeting(),
		QuickPrompts: h.usecase.QuickPrompts(),
	})
}
