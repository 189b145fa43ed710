package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/pubnicaragua/investi-documentacion2/internal/domain"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain/entity"
)

const leadsTable = "/formularios_landing"

// leadRecord is the explicit wire record for the formularios_landing
// table. Column names are fixed here so that drift between variants
// (name vs nombre) is a compile-time concern, not a silent null column.
type leadRecord struct {
	ID                 int64    `json:"id,omitempty"`
	Nombre             string   `json:"nombre"`
	Email              string   `json:"email"`
	Telefono           string   `json:"telefono,omitempty"`
	Age                string   `json:"age,omitempty"`
	Goals              []string `json:"goals,omitempty"`
	Interests          []string `json:"interests,omitempty"`
	ObjetivoFinanciero string   `json:"objetivo_financiero,omitempty"`
	CreatedAt          string   `json:"created_at,omitempty"`
	UpdatedAt          string   `json:"updated_at,omitempty"`
}

func (r *leadRecord) toEntity() *entity.Lead {
	return &entity.Lead{
		ID:            r.ID,
		Name:          r.Nombre,
		Email:         r.Email,
		Phone:         r.Telefono,
		Age:           r.Age,
		Goals:         r.Goals,
		Interests:     r.Interests,
		FinancialGoal: r.ObjetivoFinanciero,
		CreatedAt:     parseTimestamp(r.CreatedAt),
		UpdatedAt:     parseTimestamp(r.UpdatedAt),
	}
}

// parseTimestamp parses a provider timestamp, zero time on failure
func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// leadRepository is the LeadRepository implementation over the BaaS
type leadRepository struct {
	client *Client
}

// NewLeadRepository creates a LeadRepository backed by the BaaS
func NewLeadRepository(client *Client) domain.LeadRepository {
	return &leadRepository{client: client}
}

// Create inserts a lead and returns the stored representation
func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	record := leadRecord{
		Nombre:             lead.Name,
		Email:              lead.Email,
		Telefono:           lead.Phone,
		Age:                lead.Age,
		Goals:              lead.Goals,
		Interests:          lead.Interests,
		ObjetivoFinanciero: lead.FinancialGoal,
	}

	body, err := r.client.Request(ctx, "POST", leadsTable, &RequestOptions{
		Body:    []leadRecord{record},
		Headers: map[string]string{"Prefer": "return=representation"},
	})
	if err != nil {
		if KindOf(err) == KindConflict {
			return nil, domain.NewAlreadyExistsError("Lead", lead.Email)
		}
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	var rows []leadRecord
	decodeJSON(body, &rows)
	if len(rows) == 0 {
		// provider returned no representation; hand back the input
		return lead, nil
	}
	return rows[0].toEntity(), nil
}

// List returns leads ordered newest first plus the exact total count
func (r *leadRepository) List(ctx context.Context, offset, limit int) ([]*entity.Lead, int, error) {
	body, total, err := r.client.RequestRange(ctx, "GET", leadsTable, &RequestOptions{
		Params: map[string]interface{}{
			"select": "*",
			"order":  "created_at.desc",
		},
	}, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}

	var rows []leadRecord
	decodeJSON(body, &rows)

	leads := make([]*entity.Lead, len(rows))
	for i := range rows {
		leads[i] = rows[i].toEntity()
	}
	return leads, total, nil
}

// All returns the aggregate columns of every lead for stats computation
func (r *leadRepository) All(ctx context.Context) ([]*entity.Lead, error) {
	body, err := r.client.Request(ctx, "GET", leadsTable, &RequestOptions{
		Params: map[string]interface{}{
			"select": "goals,interests,age,created_at",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load lead stats columns: %w", err)
	}

	var rows []leadRecord
	decodeJSON(body, &rows)

	leads := make([]*entity.Lead, len(rows))
	for i := range rows {
		leads[i] = rows[i].toEntity()
	}
	return leads, nil
}
