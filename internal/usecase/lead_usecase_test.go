package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pubnicaragua/investi-documentacion2/internal/domain"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain/entity"
)

type fakeLeadRepo struct {
	created   []*entity.Lead
	leads     []*entity.Lead
	total     int
	createErr error
	allErr    error
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *lead
	stored.ID = int64(len(f.created) + 1)
	stored.CreatedAt = time.Now()
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeLeadRepo) List(ctx context.Context, offset, limit int) ([]*entity.Lead, int, error) {
	return f.leads, f.total, nil
}

func (f *fakeLeadRepo) All(ctx context.Context) ([]*entity.Lead, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.leads, nil
}

type fakeNotifier struct {
	enabled bool
	err     error
	sent    chan *entity.Lead
}

func newFakeNotifier(enabled bool) *fakeNotifier {
	return &fakeNotifier{enabled: enabled, sent: make(chan *entity.Lead, 1)}
}

func (f *fakeNotifier) NotifyLead(ctx context.Context, lead *entity.Lead) error {
	f.sent <- lead
	return f.err
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateLeadValidation(t *testing.T) {
	tests := []struct {
		name string
		lead *entity.Lead
	}{
		{"missing name", &entity.Lead{Email: "ana@example.com"}},
		{"whitespace name", &entity.Lead{Name: "   ", Email: "ana@example.com"}},
		{"missing email", &entity.Lead{Name: "Ana"}},
		{"malformed email", &entity.Lead{Name: "Ana", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeLeadRepo{}
			uc := NewLeadUsecase(repo, nil, discardLogger())

			_, err := uc.CreateLead(context.Background(), tt.lead)
			if !domain.IsInvalidInput(err) {
				t.Errorf("CreateLead() error = %v, want invalid-input", err)
			}
			if len(repo.created) != 0 {
				t.Error("invalid lead reached the repository")
			}
		})
	}
}

func TestCreateLeadStoresAndNotifies(t *testing.T) {
	repo := &fakeLeadRepo{}
	notifier := newFakeNotifier(true)
	uc := NewLeadUsecase(repo, notifier, discardLogger())

	stored, err := uc.CreateLead(context.Background(), &entity.Lead{
		Name:  "  Ana  ",
		Email: " ana@example.com ",
	})
	if err != nil {
		t.Fatalf("CreateLead() error = %v", err)
	}
	if stored.Name != "Ana" || stored.Email != "ana@example.com" {
		t.Errorf("stored lead = %q/%q, want trimmed fields", stored.Name, stored.Email)
	}
	if stored.ID == 0 {
		t.Error("stored lead has no id")
	}

	select {
	case sent := <-notifier.sent:
		if sent.Email != "ana@example.com" {
			t.Errorf("notified lead = %q, want the stored lead", sent.Email)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never sent")
	}
}

func TestCreateLeadNotificationFailureDoesNotSurface(t *testing.T) {
	repo := &fakeLeadRepo{}
	notifier := newFakeNotifier(true)
	notifier.err = errors.New("smtp on fire")
	uc := NewLeadUsecase(repo, notifier, discardLogger())

	_, err := uc.CreateLead(context.Background(), &entity.Lead{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("CreateLead() error = %v, delivery failure must not surface", err)
	}

	select {
	case <-notifier.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never attempted")
	}
}

func TestCreateLeadDisabledNotifierIsSkipped(t *testing.T) {
	repo := &fakeLeadRepo{}
	notifier := newFakeNotifier(false)
	uc := NewLeadUsecase(repo, notifier, discardLogger())

	if _, err := uc.CreateLead(context.Background(), &entity.Lead{Name: "Ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("CreateLead() error = %v", err)
	}

	select {
	case <-notifier.sent:
		t.Fatal("disabled notifier was called")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestListLeadsComputesStats(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	leads := []*entity.Lead{
		{Goals: []string{"ahorrar"}, Interests: []string{"cripto"}, Age: "25-34", CreatedAt: now.Add(-2 * time.Hour)},
		{Goals: []string{"ahorrar", "invertir"}, Age: "25-34", CreatedAt: now.AddDate(0, 0, -3)},
		{Interests: []string{"cripto"}, Age: "35-44", CreatedAt: now.AddDate(0, 0, -20)},
		// one hour past the rolling seven-day window: same calendar day
		// as the window edge, but outside it
		{Age: "45+", CreatedAt: now.AddDate(0, 0, -7).Add(-time.Hour)},
	}
	repo := &fakeLeadRepo{leads: leads, total: 4}
	uc := NewLeadUsecase(repo, nil, discardLogger()).(*leadUsecase)
	uc.now = func() time.Time { return now }

	got, stats, total, err := uc.ListLeads(context.Background(), 0, 20)
	if err != nil {
		t.Fatalf("ListLeads() error = %v", err)
	}
	if total != 4 || len(got) != 4 {
		t.Fatalf("ListLeads() total = %d, leads = %d, want 4/4", total, len(got))
	}

	if stats.Today != 1 {
		t.Errorf("Today = %d, want 1", stats.Today)
	}
	if stats.ThisWeek != 2 {
		t.Errorf("ThisWeek = %d, want 2", stats.ThisWeek)
	}
	if stats.ThisMonth != 4 {
		t.Errorf("ThisMonth = %d, want 4", stats.ThisMonth)
	}
	if stats.ByGoal["ahorrar"] != 2 {
		t.Errorf("ByGoal[ahorrar] = %d, want 2", stats.ByGoal["ahorrar"])
	}
	if stats.ByInterest["cripto"] != 2 {
		t.Errorf("ByInterest[cripto] = %d, want 2", stats.ByInterest["cripto"])
	}
	if stats.ByAge["25-34"] != 2 {
		t.Errorf("ByAge[25-34] = %d, want 2", stats.ByAge["25-34"])
	}
	if stats.ConversionRate != 85.5 {
		t.Errorf("ConversionRate = %v, want 85.5", stats.ConversionRate)
	}
}

func TestListLeadsDegradesWhenStatsFail(t *testing.T) {
	repo := &fakeLeadRepo{
		leads:  []*entity.Lead{{Name: "Ana"}},
		total:  1,
		allErr: errors.New("aggregate columns unavailable"),
	}
	uc := NewLeadUsecase(repo, nil, discardLogger())

	leads, stats, total, err := uc.ListLeads(context.Background(), 0, 20)
	if err != nil {
		t.Fatalf("ListLeads() error = %v, stats failure must degrade", err)
	}
	if len(leads) != 1 || total != 1 {
		t.Fatalf("leads = %d, total = %d, want the primary payload intact", len(leads), total)
	}
	if stats == nil || stats.Total != 1 {
		t.Errorf("stats = %+v, want empty stats with total carried over", stats)
	}
}

func TestListLeadsClampsPaging(t *testing.T) {
	repo := &fakeLeadRepo{}
	uc := NewLeadUsecase(repo, nil, discardLogger())

	if _, _, _, err := uc.ListLeads(context.Background(), -5, 0); err != nil {
		t.Fatalf("ListLeads() error = %v", err)
	}
	if _, _, _, err := uc.ListLeads(context.Background(), 0, 10_000); err != nil {
		t.Fatalf("ListLeads() error = %v", err)
	}
}
