package supabase

import (
	"context"
	"net/http"
	"testing"
)

func TestProfileGetByIDSoftMiss(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "row missing",
			status: http.StatusNotAcceptable,
			body:   `{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned"}`,
		},
		{
			name:   "table missing",
			status: http.StatusNotFound,
			body:   `{"code":"42P01","message":"relation \"public.users\" does not exist"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			repo := NewProfileRepository(client)

			profile, err := repo.GetByID(context.Background(), "user-1")
			if err != nil {
				t.Fatalf("GetByID() error = %v, soft misses must not error", err)
			}
			if profile != nil {
				t.Errorf("GetByID() = %+v, want nil", profile)
			}
		})
	}
}

func TestProfileGetByIDMapsColumns(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "eq.user-1" {
			t.Errorf("id param = %q, want eq.user-1", got)
		}
		w.Write([]byte(`{
			"id": "user-1",
			"email": "ana@example.com",
			"nombre": "Ana",
			"username": "ana",
			"metas": ["ahorrar"],
			"intereses": ["cripto"],
			"nivel_finanzas": "basico"
		}`))
	}))
	repo := NewProfileRepository(client)

	profile, err := repo.GetByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if profile == nil {
		t.Fatal("GetByID() = nil, want profile")
	}
	if profile.FullName != "Ana" {
		t.Errorf("FullName = %q, want Ana", profile.FullName)
	}
	if profile.KnowledgeLevel != "basico" {
		t.Errorf("KnowledgeLevel = %q, want basico", profile.KnowledgeLevel)
	}
	if !profile.Onboarded() {
		t.Error("Onboarded() = false, want true with goals, interests and level set")
	}
}

func TestCommunityListUnprovisionedTable(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"42P01","message":"relation \"public.communities\" does not exist"}`))
	}))
	repo := NewCommunityRepository(client)

	communities, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v, unprovisioned table must degrade", err)
	}
	if len(communities) != 0 {
		t.Errorf("List() = %d communities, want 0", len(communities))
	}
}

func TestCommunityJoinDuplicateIsNoOp(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint"}`))
	}))
	repo := NewCommunityRepository(client)

	if err := repo.Join(context.Background(), "user-1", "community-1"); err != nil {
		t.Errorf("Join() error = %v, duplicate membership must be a no-op", err)
	}
}

func TestPostLikeDuplicateIsNoOp(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint"}`))
	}))
	repo := NewPostRepository(client)

	if err := repo.Like(context.Background(), "post-1", "user-1", true); err != nil {
		t.Errorf("Like() error = %v, duplicate reaction must be a no-op", err)
	}
}

func TestFeedMissingRPCIsEmpty(t *testing.T) {
	requested := make([]string, 0, 2)
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"PGRST202","message":"could not find the function"}`))
	}))
	repo := NewFeedRepository(client)

	posts, err := repo.UserFeed(context.Background(), "user-1", 20)
	if err != nil {
		t.Fatalf("UserFeed() error = %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Fatalf("UserFeed() = %v, want an empty slice when the rpc is unprovisioned", posts)
	}
	// degradation must not retry against another table
	if len(requested) != 1 || requested[0] != "/rpc/get_user_feed" {
		t.Errorf("requested = %v, want a single rpc call", requested)
	}
}

func TestPortfolioGetMissingRowIsEmptyPortfolio(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotAcceptable)
		w.Write([]byte(`{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned"}`))
	}))
	repo := NewPortfolioRepository(client)

	portfolio, err := repo.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if portfolio == nil || portfolio.UserID != "user-1" {
		t.Fatalf("Get() = %+v, want empty portfolio for the user", portfolio)
	}
	if len(portfolio.Investments) != 0 {
		t.Errorf("Investments = %d, want 0", len(portfolio.Investments))
	}
}
