package supabase

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/pubnicaragua/investi-documentacion2/internal/domain"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain/entity"
)

func TestLeadCreateReturnsRepresentation(t *testing.T) {
	var gotPrefer string
	var gotBody []byte
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrefer = r.Header.Get("Prefer")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{
			"id": 7,
			"nombre": "Ana",
			"email": "ana@example.com",
			"objetivo_financiero": "ahorrar",
			"created_at": "2026-08-30T12:00:00Z"
		}]`))
	}))
	repo := NewLeadRepository(client)

	lead, err := repo.Create(context.Background(), &entity.Lead{
		Name:          "Ana",
		Email:         "ana@example.com",
		FinancialGoal: "ahorrar",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if gotPrefer != "return=representation" {
		t.Errorf("Prefer = %q, want return=representation", gotPrefer)
	}
	if string(gotBody) == "" || gotBody[0] != '[' {
		t.Errorf("body = %s, want an array insert", gotBody)
	}
	if lead.ID != 7 {
		t.Errorf("ID = %d, want the stored id 7", lead.ID)
	}
	if lead.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero, want parsed timestamp")
	}
}

func TestLeadCreateDuplicateEmail(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint"}`))
	}))
	repo := NewLeadRepository(client)

	_, err := repo.Create(context.Background(), &entity.Lead{Name: "Ana", Email: "ana@example.com"})
	if !domain.IsAlreadyExists(err) {
		t.Errorf("Create() error = %v, want already-exists", err)
	}
}

func TestLeadListReturnsTotal(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("order"); got != "created_at.desc" {
			t.Errorf("order param = %q, want created_at.desc", got)
		}
		w.Header().Set("Content-Range", "0-1/57")
		w.Write([]byte(`[
			{"id": 2, "nombre": "Beto", "email": "beto@example.com"},
			{"id": 1, "nombre": "Ana", "email": "ana@example.com"}
		]`))
	}))
	repo := NewLeadRepository(client)

	leads, total, err := repo.List(context.Background(), 0, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 57 {
		t.Errorf("total = %d, want 57", total)
	}
	if len(leads) != 2 {
		t.Fatalf("List() = %d leads, want 2", len(leads))
	}
	if leads[0].Name != "Beto" {
		t.Errorf("first lead = %q, want newest first", leads[0].Name)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		value    string
		wantZero bool
	}{
		{"2026-08-30T12:00:00Z", false},
		{"2026-08-30T12:00:00.123456+00:00", false},
		{"2026-08-30T12:00:00.123456", false},
		{"", true},
		{"yesterday", true},
	}
	for _, tt := range tests {
		got := parseTimestamp(tt.value)
		if got.IsZero() != tt.wantZero {
			t.Errorf("parseTimestamp(%q).IsZero() = %v, want %v", tt.value, got.IsZero(), tt.wantZero)
		}
	}
}
