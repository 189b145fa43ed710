package supabase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pubnicaragua/investi-documentacion2/internal/config"
)

// newTestClient points a client with a fresh in-memory token store at the
// given handler.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *MemoryStore, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := NewMemoryStore()
	client, err := NewClient(config.SupabaseConfig{
		RestURL:    server.URL,
		AuthURL:    server.URL + "/auth/v1",
		StorageURL: server.URL + "/storage/v1",
		AnonKey:    "anon-key",
	}, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client, store, server
}

func TestRequestSendsAPIKeyWithoutToken(t *testing.T) {
	var gotAPIKey string
	var authValues []string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		authValues = r.Header.Values("Authorization")
		w.Write([]byte(`[]`))
	}))

	if _, err := client.Request(context.Background(), "GET", "/users", nil); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if gotAPIKey != "anon-key" {
		t.Errorf("apikey header = %q, want %q", gotAPIKey, "anon-key")
	}
	if len(authValues) != 0 {
		t.Errorf("Authorization headers = %v, want none for anonymous call", authValues)
	}
}

func TestRequestSendsBearerOnceWithToken(t *testing.T) {
	var authValues []string
	client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authValues = r.Header.Values("Authorization")
		w.Write([]byte(`[]`))
	}))

	if err := store.Set(KeyAccessToken, "session-token"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, err := client.Request(context.Background(), "GET", "/users", nil); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if len(authValues) != 1 {
		t.Fatalf("Authorization headers = %d, want exactly 1", len(authValues))
	}
	if authValues[0] != "Bearer session-token" {
		t.Errorf("Authorization = %q, want %q", authValues[0], "Bearer session-token")
	}
}

func TestRequestStaticTokenWinsOverStore(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	store := NewMemoryStore()
	store.Set(KeyAccessToken, "user-token")
	client, err := NewClient(config.SupabaseConfig{
		RestURL:    server.URL,
		AuthURL:    server.URL,
		StorageURL: server.URL,
		AnonKey:    "anon-key",
	}, store, slog.New(slog.NewTextHandler(io.Discard, nil)), WithStaticToken("service-key"))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if _, err := client.Request(context.Background(), "GET", "/users", nil); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if gotAuth != "Bearer service-key" {
		t.Errorf("Authorization = %q, want the pinned service key", gotAuth)
	}
}

func TestRequestOmitsNilParams(t *testing.T) {
	var gotQuery string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))

	_, err := client.Request(context.Background(), "GET", "/users", &RequestOptions{
		Params: map[string]interface{}{
			"select": "*",
			"order":  nil,
		},
	})
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if gotQuery != "select=%2A" {
		t.Errorf("query = %q, nil params must be omitted entirely", gotQuery)
	}
}

func TestRequestJSONBodySetsContentType(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`[]`))
	}))

	_, err := client.Request(context.Background(), "POST", "/users", &RequestOptions{
		Body: map[string]string{"nombre": "Ana"},
	})
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if string(gotBody) != `{"nombre":"Ana"}` {
		t.Errorf("body = %s, want serialized JSON", gotBody)
	}
}

func TestRequestRawBodyPassesThroughUntouched(t *testing.T) {
	raw := []byte{0xFF, 0xD8, 0xFF, 0x00, 0x10}
	var gotBody []byte
	var gotContentType string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))

	_, err := client.Request(context.Background(), "POST", "/upload", &RequestOptions{
		RawBody: raw,
		Headers: map[string]string{"Content-Type": "image/jpeg"},
	})
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if string(gotBody) != string(raw) {
		t.Errorf("body = %v, want raw bytes %v", gotBody, raw)
	}
	if gotContentType != "image/jpeg" {
		t.Errorf("Content-Type = %q, want caller-supplied image/jpeg", gotContentType)
	}
}

func TestRequestEmptySuccessBody(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	body, err := client.Request(context.Background(), "DELETE", "/users", nil)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if len(body) != 0 {
		t.Errorf("body = %q, want empty", body)
	}
}

func TestRequestErrorNormalization(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
		wantCode string
	}{
		{
			name:     "row not found",
			status:   http.StatusNotAcceptable,
			body:     `{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned"}`,
			wantKind: KindNotFound,
			wantCode: "PGRST116",
		},
		{
			name:     "missing table",
			status:   http.StatusNotFound,
			body:     `{"code":"42P01","message":"relation \"public.communities\" does not exist"}`,
			wantKind: KindUnavailable,
			wantCode: "42P01",
		},
		{
			name:     "missing rpc",
			status:   http.StatusNotFound,
			body:     `{"code":"PGRST202","message":"could not find the function"}`,
			wantKind: KindUnavailable,
			wantCode: "PGRST202",
		},
		{
			name:     "unique violation",
			status:   http.StatusConflict,
			body:     `{"code":"23505","message":"duplicate key value violates unique constraint"}`,
			wantKind: KindConflict,
			wantCode: "23505",
		},
		{
			name:     "auth error description",
			status:   http.StatusUnauthorized,
			body:     `{"error":"invalid_grant","error_description":"Invalid login credentials"}`,
			wantKind: KindUnauthorized,
			wantCode: "401",
		},
		{
			name:     "undecodable body",
			status:   http.StatusServiceUnavailable,
			body:     `<html>bad gateway</html>`,
			wantKind: KindUnavailable,
			wantCode: "503",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := client.Request(context.Background(), "GET", "/whatever", nil)
			if err == nil {
				t.Fatal("Request() error = nil, want normalized error")
			}
			if got := KindOf(err); got != tt.wantKind {
				t.Errorf("KindOf() = %v, want %v", got, tt.wantKind)
			}
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %v is not *Error", err)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", apiErr.Code, tt.wantCode)
			}
			if apiErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", apiErr.Status, tt.status)
			}
		})
	}
}

func TestRequestRange(t *testing.T) {
	var gotRange, gotRangeUnit, gotPrefer string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.Header.Get("Range")
		gotRangeUnit = r.Header.Get("Range-Unit")
		gotPrefer = r.Header.Get("Prefer")
		w.Header().Set("Content-Range", "0-9/42")
		w.Write([]byte(`[]`))
	}))

	_, total, err := client.RequestRange(context.Background(), "GET", "/leads", nil, 0, 10)
	if err != nil {
		t.Fatalf("RequestRange() error = %v", err)
	}
	if gotRange != "0-9" {
		t.Errorf("Range = %q, want 0-9", gotRange)
	}
	if gotRangeUnit != "items" {
		t.Errorf("Range-Unit = %q, want items", gotRangeUnit)
	}
	if gotPrefer != "count=exact" {
		t.Errorf("Prefer = %q, want count=exact", gotPrefer)
	}
	if total != 42 {
		t.Errorf("total = %d, want 42", total)
	}
}

func TestParseContentRangeTotal(t *testing.T) {
	tests := []struct {
		header string
		want   int
	}{
		{"0-9/42", 42},
		{"items 0-9/42", 42},
		{"*/0", 0},
		{"0-9/*", 0},
		{"", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		if got := parseContentRangeTotal(tt.header); got != tt.want {
			t.Errorf("parseContentRangeTotal(%q) = %d, want %d", tt.header, got, tt.want)
		}
	}
}
