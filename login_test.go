package cloud_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	cloud "github.com/gitloom/cloud-go"
)

func TestClient_CreateLoginToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/login/token.json" {
			t.Errorf("path = %s, want /api/login/token.json", r.URL.Path)
		}
		if r.Header.Get("X-Auth-Token") != "" {
			t.Error("login token creation must not carry an auth token")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"t","expires":"2026-09-01T12:00:00Z","url":"https://other-host/sign-in/t"}`))
	}))
	defer ts.Close()

	c, err := cloud.Build(ts.URL + "/api/")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	lt, err := c.CreateLoginToken(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if lt.Token != "t" {
		t.Errorf("Token = %q, want %q", lt.Token, "t")
	}

	// The redirect URL host must be rewritten to the configured API host,
	// not the host the server answered with.
	got, err := url.Parse(lt.URL)
	if err != nil {
		t.Fatalf("failed to parse rewritten url %q: %v", lt.URL, err)
	}
	want := c.BaseURL().Host
	if got.Host != want {
		t.Errorf("redirect url host = %q, want configured API host %q", got.Host, want)
	}
	if got.Path != "/sign-in/t" {
		t.Errorf("redirect url path = %q, want /sign-in/t", got.Path)
	}
}

func TestClient_GetLoginUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/login/user/tok-42.json" {
			t.Errorf("path = %s, want /api/login/user/tok-42.json", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"email":"alice@example.com","access_token":"at-123"}`))
	}))
	defer ts.Close()

	c, err := cloud.Build(ts.URL + "/api/")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	u, err := c.GetLoginUser(context.Background(), "tok-42")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if u.ID != 7 || u.Email != "alice@example.com" || u.AccessToken != "at-123" {
		t.Errorf("unexpected user decoded: %+v", u)
	}
}

func TestClient_GetLoginUser_NotConfirmedYet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "login token not confirmed", http.StatusNotFound)
	}))
	defer ts.Close()

	c, err := cloud.Build(ts.URL + "/api/")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := c.GetLoginUser(context.Background(), "tok-42"); err == nil {
		t.Error("expected an error while the token is unconfirmed")
	}
}
