//go:build integration

package supabase

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/pubnicaragua/investi-documentacion2/internal/config"
)

// TestLiveProject runs read-only calls against a real project. Provide the
// project via the environment:
//
//	INVESTI_SUPABASE_REST_URL, INVESTI_SUPABASE_AUTH_URL,
//	INVESTI_SUPABASE_STORAGE_URL, INVESTI_SUPABASE_ANON_KEY
//
// then: go test -tags integration ./internal/infrastructure/supabase/
func TestLiveProject(t *testing.T) {
	cfg := config.SupabaseConfig{
		RestURL:    os.Getenv("INVESTI_SUPABASE_REST_URL"),
		AuthURL:    os.Getenv("INVESTI_SUPABASE_AUTH_URL"),
		StorageURL: os.Getenv("INVESTI_SUPABASE_STORAGE_URL"),
		AnonKey:    os.Getenv("INVESTI_SUPABASE_ANON_KEY"),
	}
	if cfg.RestURL == "" || cfg.AnonKey == "" {
		t.Skip("INVESTI_SUPABASE_REST_URL and INVESTI_SUPABASE_ANON_KEY not set")
	}

	client, err := NewClient(cfg, NewMemoryStore(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	t.Run("communities list", func(t *testing.T) {
		communities, err := NewCommunityRepository(client).List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		// An unprovisioned project legitimately returns an empty slice.
		t.Logf("communities: %d", len(communities))
	})

	t.Run("anonymous profile read misses", func(t *testing.T) {
		profile, err := NewProfileRepository(client).GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if profile != nil {
			t.Fatalf("expected nil profile for unknown id, got %+v", profile)
		}
	})
}
