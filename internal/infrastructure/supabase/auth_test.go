package supabase

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"
)

// fakeJWT builds an unsigned token with the given payload JSON
func fakeJWT(payload string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".signature"
}

func authHandler(accessToken string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"access_token": "` + accessToken + `",
			"refresh_token": "refresh-123",
			"token_type": "bearer",
			"expires_in": 3600,
			"user": {"id": "user-1", "email": "ana@example.com"}
		}`))
	})
	mux.HandleFunc("/auth/v1/signup", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"access_token": "` + accessToken + `",
			"refresh_token": "refresh-123",
			"user": {"id": "user-1", "email": "ana@example.com"}
		}`))
	})
	return mux
}

func TestSignInPersistsBothKeyPairs(t *testing.T) {
	token := fakeJWT(`{"sub":"user-1"}`)
	client, store, _ := newTestClient(t, authHandler(token))

	session, err := client.SignIn(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if session.AccessToken != token {
		t.Errorf("AccessToken = %q, want %q", session.AccessToken, token)
	}
	if session.User.ID != "user-1" {
		t.Errorf("User.ID = %q, want user-1", session.User.ID)
	}

	for _, key := range []string{KeyAccessToken, KeyLegacyAccessToken} {
		if got, _ := store.Get(key); got != token {
			t.Errorf("store[%q] = %q, want the access token", key, got)
		}
	}
	for _, key := range []string{KeyRefreshToken, KeyLegacyRefreshToken} {
		if got, _ := store.Get(key); got != "refresh-123" {
			t.Errorf("store[%q] = %q, want the refresh token", key, got)
		}
	}
}

func TestSignInFailureKeepsStoreEmpty(t *testing.T) {
	client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	}))

	_, err := client.SignIn(context.Background(), "ana@example.com", "wrong")
	if err == nil {
		t.Fatal("SignIn() error = nil, want unauthorized")
	}
	if KindOf(err) != KindUnauthorized {
		t.Errorf("KindOf() = %v, want KindUnauthorized", KindOf(err))
	}
	if got, _ := store.Get(KeyAccessToken); got != "" {
		t.Errorf("store[%q] = %q, want empty after failed sign-in", KeyAccessToken, got)
	}
}

func TestSignInTokenIsReusedOnNextRequest(t *testing.T) {
	token := fakeJWT(`{"sub":"user-1"}`)
	var gotAuth string
	mux := http.NewServeMux()
	mux.Handle("/auth/v1/", authHandler(token))
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})
	client, _, _ := newTestClient(t, mux)

	if _, err := client.SignIn(context.Background(), "ana@example.com", "secret"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if _, err := client.Request(context.Background(), "GET", "/users", nil); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if gotAuth != "Bearer "+token {
		t.Errorf("Authorization = %q, want the signed-in token", gotAuth)
	}
}

func TestSignUpDoesNotPersistTokens(t *testing.T) {
	token := fakeJWT(`{"sub":"user-1"}`)
	client, store, _ := newTestClient(t, authHandler(token))

	session, err := client.SignUp(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if session.User.ID != "user-1" {
		t.Errorf("User.ID = %q, want user-1", session.User.ID)
	}

	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyLegacyAccessToken, KeyLegacyRefreshToken} {
		if got, _ := store.Get(key); got != "" {
			t.Errorf("store[%q] = %q, sign-up must not persist tokens", key, got)
		}
	}
	if got := client.CurrentUserID(); got != "" {
		t.Errorf("CurrentUserID() = %q, want empty after sign-up", got)
	}
}

func TestSignOutClearsSession(t *testing.T) {
	token := fakeJWT(`{"sub":"user-1"}`)
	client, store, _ := newTestClient(t, authHandler(token))

	if _, err := client.SignIn(context.Background(), "ana@example.com", "secret"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if got := client.CurrentUserID(); got != "user-1" {
		t.Fatalf("CurrentUserID() = %q, want user-1 before sign-out", got)
	}

	if err := client.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}

	for _, key := range []string{KeyAccessToken, KeyRefreshToken} {
		if got, _ := store.Get(key); got != "" {
			t.Errorf("store[%q] = %q, want deleted", key, got)
		}
	}
	if got := client.CurrentUserID(); got != "" {
		t.Errorf("CurrentUserID() = %q, want empty after sign-out", got)
	}
}

func TestDecodeSubject(t *testing.T) {
	padded := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"padded-user"}`)) + "=="

	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{
			name:  "standard token",
			token: fakeJWT(`{"sub":"user-42","role":"authenticated"}`),
			want:  "user-42",
		},
		{
			name:  "padded payload",
			token: "h." + padded + ".s",
			want:  "padded-user",
		},
		{
			name:  "no sub claim",
			token: fakeJWT(`{"role":"anon"}`),
			want:  "",
		},
		{
			name:    "malformed token",
			token:   "only-one-segment",
			wantErr: true,
		},
		{
			name:    "payload not json",
			token:   "h." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".s",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSubject(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("decodeSubject() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeSubject() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("decodeSubject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCurrentUserIDIgnoresGarbageToken(t *testing.T) {
	client, store, _ := newTestClient(t, http.NotFoundHandler())

	store.Set(KeyAccessToken, strings.Repeat("x", 40))
	if got := client.CurrentUserID(); got != "" {
		t.Errorf("CurrentUserID() = %q, want empty for an undecodable token", got)
	}
}
