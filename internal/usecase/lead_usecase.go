package usecase

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/pubnicaragua/investi-documentacion2/internal/domain"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain/entity"
)

// landingConversionRate is the published landing-page conversion figure
// shown on the dashboard. It is a product constant, not a measurement.
const landingConversionRate = 85.5

type leadUsecase struct {
	repo     domain.LeadRepository
	notifier domain.LeadNotifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewLeadUsecase creates the lead-capture business logic
func NewLeadUsecase(repo domain.LeadRepository, notifier domain.LeadNotifier, logger *slog.Logger) domain.LeadUsecase {
	return &leadUsecase{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateLead validates and stores a lead, then fires the notification
// email in the background. A notification failure is logged and never
// surfaces to the submitter.
func (u *leadUsecase) CreateLead(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	lead.Name = strings.TrimSpace(lead.Name)
	lead.Email = strings.TrimSpace(lead.Email)
	lead.Phone = strings.TrimSpace(lead.Phone)

	if lead.Name == "" {
		return nil, domain.NewInvalidInputError("name is required")
	}
	if lead.Email == "" {
		return nil, domain.NewInvalidInputError("email is required")
	}
	if _, err := mail.ParseAddress(lead.Email); err != nil {
		return nil, domain.NewInvalidInputError("email is not a valid address")
	}

	stored, err := u.repo.Create(ctx, lead)
	if err != nil {
		return nil, err
	}
	u.logger.Info("lead captured", "email", stored.Email)

	if u.notifier != nil && u.notifier.Enabled() {
		// best effort, decoupled from the request lifetime
		go func(lead entity.Lead) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := u.notifier.NotifyLead(ctx, &lead); err != nil {
				u.logger.Warn("lead notification failed", "email", lead.Email, "error", err)
			}
		}(*stored)
	}

	return stored, nil
}

// ListLeads returns one page of leads plus the dashboard aggregates.
// A failure computing aggregates degrades to empty stats; the lead list
// itself is the primary payload.
func (u *leadUsecase) ListLeads(ctx context.Context, offset, limit int) ([]*entity.Lead, *entity.LeadStats, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	leads, total, err := u.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, nil, 0, err
	}

	stats, err := u.computeStats(ctx, total)
	if err != nil {
		u.logger.Warn("failed to compute lead stats", "error", err)
		stats = &entity.LeadStats{
			Total:          total,
			ByGoal:         map[string]int{},
			ByInterest:     map[string]int{},
			ByAge:          map[string]int{},
			ConversionRate: landingConversionRate,
		}
	}

	return leads, stats, total, nil
}

// computeStats tallies the aggregate columns of every lead
func (u *leadUsecase) computeStats(ctx context.Context, total int) (*entity.LeadStats, error) {
	all, err := u.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	// today is a calendar-day bucket; the week and month windows are
	// rolling, anchored to the current instant
	now := u.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, -1, 0)

	stats := &entity.LeadStats{
		Total:          total,
		ByGoal:         map[string]int{},
		ByInterest:     map[string]int{},
		ByAge:          map[string]int{},
		ConversionRate: landingConversionRate,
	}
	if stats.Total == 0 {
		stats.Total = len(all)
	}

	for _, lead := range all {
		if !lead.CreatedAt.IsZero() {
			created := lead.CreatedAt.In(now.Location())
			if !created.Before(startOfDay) {
				stats.Today++
			}
			if !created.Before(weekAgo) {
				stats.ThisWeek++
			}
			if !created.Before(monthAgo) {
				stats.ThisMonth++
			}
		}
		for _, goal := range lead.Goals {
			stats.ByGoal[goal]++
		}
		for _, interest := range lead.Interests {
			stats.ByInterest[interest]++
		}
		if lead.Age != "" {
			stats.ByAge[lead.Age]++
		}
	}

	return stats, nil
}
