package domain

import (
	"context"

	"github.com/pubnicaragua/investi-documentacion2/internal/domain/entity"
)

// ============ Repository interfaces ============

// LeadRepository is the data-access interface for landing-page leads.
// The backing store is the external BaaS row-storage collaborator.
type LeadRepository interface {
	// Create inserts a lead and returns the stored row
	Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error)

	// List returns leads ordered newest first, ranged by offset/limit,
	// together with the total row count
	List(ctx context.Context, offset, limit int) ([]*entity.Lead, int, error)

	// All returns the goal/interest/age columns of every lead, used to
	// compute dashboard aggregates
	All(ctx context.Context) ([]*entity.Lead, error)
}

// LeadNotifier sends the transactional notification for a new lead.
// Delivery is best effort: a failure must never roll back the stored lead.
type LeadNotifier interface {
	// NotifyLead sends the rendered notification email
	NotifyLead(ctx context.Context, lead *entity.Lead) error

	// Enabled reports whether the notifier is configured
	Enabled() bool
}

// ============ Usecase interface ============

// LeadUsecase is the lead-capture business logic
type LeadUsecase interface {
	// CreateLead validates and stores a lead, then fires the notification
	CreateLead(ctx context.Context, lead *entity.Lead) (*entity.Lead, error)

	// ListLeads returns a page of leads plus dashboard aggregates
	ListLeads(ctx context.Context, offset, limit int) ([]*entity.Lead, *entity.LeadStats, int, error)
}
