package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/pubnicaragua/investi-documentacion2/internal/domain"
	"github.com/pubnicaragua/investi-documentacion2/internal/handler/dto"
	"github.com/pubnicaragua/investi-documentacion2/pkg/logger"
)

// LeadHandler handles lead-capture HTTP requests
type LeadHandler struct {
	usecase domain.LeadUsecase
	logger  *slog.Logger
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(usecase domain.LeadUsecase, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{usecase: usecase, logger: logger}
}

// Create handles the public landing-page form submission
// @Summary Submit a lead
// @Description Stores a landing-page registration and notifies the team
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body dto.CreateLeadRequest true "Lead form"
// @Success 201 {object} Response{data=dto.LeadResponse}
// @Failure 400 {object} Response
// @Router /api/v1/leads [post]
func (h *LeadHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateLeadRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Debug("malformed lead payload", "error", err)
		BadRequestResponse(c, "invalid request body")
		return
	}

	lead, err := h.usecase.CreateLead(ctx, req.ToEntity())
	if err != nil {
		logger.FromContext(ctx).Error("failed to create lead", "email", req.Email, "error", err)
		ErrorResponse(c, err)
		return
	}

	CreatedResponse(c, dto.ToLeadResponse(lead))
}

// List handles the admin dashboard lead listing
// @Summary List leads
// @Description Returns a page of leads plus dashboard aggregates
// @Tags admin
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} Response{data=dto.LeadListResponse}
// @Failure 401 {object} Response
// @Security BearerAuth
// @Router /api/v1/admin/leads [get]
func (h *LeadHandler) List(ctx context.Context, c *app.RequestContext) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	leads, stats, total, err := h.usecase.ListLeads(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list leads", "error", err)
		ErrorResponse(c, err)
		return
	}

	resp := &dto.LeadListResponse{
		Leads:    make([]*dto.LeadResponse, len(leads)),
		Stats:    dto.ToLeadStatsResponse(stats),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i, lead := range leads {
		resp.Leads[i] = dto.ToLeadResponse(lead)
	}

	SuccessResponse(c, resp)
}
