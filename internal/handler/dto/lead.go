package dto

import (
	"time"

	"github.com/pubnicaragua/investi-documentacion2/internal/domain/entity"
)

// CreateLeadRequest is the landing-page form submission (HTTP)
type CreateLeadRequest struct {
	Name          string   `json:"name" binding:"required,max=120"`
	Email         string   `json:"email" binding:"required,max=254"`
	Phone         string   `json:"phone" binding:"max=30"`
	Age           string   `json:"age" binding:"max=20"`
	Goals         []string `json:"goals"`
	Interests     []string `json:"interests"`
	FinancialGoal string   `json:"financial_goal" binding:"max=200"`
}

// ToEntity converts the request into a domain lead
func (r *CreateLeadRequest) ToEntity() *entity.Lead {
	return &entity.Lead{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Age:           r.Age,
		Goals:         r.Goals,
		Interests:     r.Interests,
		FinancialGoal: r.FinancialGoal,
	}
}

// LeadResponse is one lead row (HTTP)
type LeadResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	Age           string   `json:"age,omitempty"`
	Goals         []string `json:"goals,omitempty"`
	Interests     []string `json:"interests,omitempty"`
	FinancialGoal string   `json:"financial_goal,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
}

// ToLeadResponse converts entity.Lead to LeadResponse DTO
func ToLeadResponse(lead *entity.Lead) *LeadResponse {
	resp := &LeadResponse{
		ID:            lead.ID,
		Name:          lead.Name,
		Email:         lead.Email,
		Phone:         lead.Phone,
		Age:           lead.Age,
		Goals:         lead.Goals,
		Interests:     lead.Interests,
		FinancialGoal: lead.FinancialGoal,
	}
	if !lead.CreatedAt.IsZero() {
		resp.CreatedAt = lead.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// LeadStatsResponse is the admin dashboard aggregate view (HTTP)
type LeadStatsResponse struct {
	Total          int            `json:"total"`
	Today          int            `json:"today"`
	ThisWeek       int            `json:"this_week"`
	ThisMonth      int            `json:"this_month"`
	ByGoal         map[string]int `json:"by_goal"`
	ByInterest     map[string]int `json:"by_interest"`
	ByAge          map[string]int `json:"by_age"`
	ConversionRate float64        `json:"conversion_rate"`
}

// ToLeadStatsResponse converts entity.LeadStats to its DTO
func ToLeadStatsResponse(stats *entity.LeadStats) *LeadStatsResponse {
	return &LeadStatsResponse{
		Total:          stats.Total,
		Today:          stats.Today,
		ThisWeek:       stats.ThisWeek,
		ThisMonth:      stats.ThisMonth,
		ByGoal:         stats.ByGoal,
		ByInterest:     stats.ByInterest,
		ByAge:          stats.ByAge,
		ConversionRate: stats.ConversionRate,
	}
}

// LeadListResponse is the paged admin lead list (HTTP)
type LeadListResponse struct {
	Leads    []*LeadResponse    `json:"leads"`
	Stats    *LeadStatsResponse `json:"stats"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}
