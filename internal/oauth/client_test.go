package oauth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClient_AcquireToken_Success(t *testing.T) {
	var gotRequest *http.Request
	var gotForm map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("Failed to parse form: %v", err)
			return
		}
		gotRequest = r
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"T","token_type":"bearer","expires_in":300}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "build-pipeline-client")

	token, err := client.AcquireToken(context.Background(), "the-secret", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if token.Value() != "T" {
		t.Errorf("Expected token %q, got %q", "T", token.Value())
	}

	if gotRequest.Method != http.MethodPost {
		t.Errorf("Expected POST, got %s", gotRequest.Method)
	}

	if ct := gotRequest.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
		t.Errorf("Expected form content type, got %s", ct)
	}

	if accept := gotRequest.Header.Get("Accept"); accept != "application/json" {
		t.Errorf("Expected Accept application/json, got %s", accept)
	}

	checks := map[string]string{
		"grant_type":    "client_credentials",
		"client_id":     "build-pipeline-client",
		"client_secret": "the-secret",
	}
	for key, expected := range checks {
		if got := gotForm[key]; len(got) != 1 || got[0] != expected {
			t.Errorf("Expected form field %s=%q, got %v", key, expected, got)
		}
	}

	// Empty scope must be omitted entirely, not sent as an empty string.
	if _, present := gotForm["scope"]; present {
		t.Error("Expected scope to be absent from the form body")
	}
}

func TestClient_AcquireToken_ScopeSentWhenNonEmpty(t *testing.T) {
	var gotScope []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotScope = r.PostForm["scope"]
		w.Write([]byte(`{"access_token":"T"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "build-pipeline-client")

	if _, err := client.AcquireToken(context.Background(), "the-secret", "read write"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(gotScope) != 1 || gotScope[0] != "read write" {
		t.Errorf("Expected scope 'read write', got %v", gotScope)
	}
}

func TestClient_AcquireToken_ServerRejected(t *testing.T) {
	const body = `{"error":"invalid_client"}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient(server.URL, "build-pipeline-client")

	_, err := client.AcquireToken(context.Background(), "the-secret", "")
	if err == nil {
		t.Fatal("Expected error for 401 response")
	}

	var rejected *ServerRejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("Expected ServerRejectedError, got %T: %v", err, err)
	}

	if rejected.Status != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rejected.Status)
	}

	if rejected.Body != body {
		t.Errorf("Expected body %q, got %q", body, rejected.Body)
	}

	msg := err.Error()
	if !strings.Contains(msg, "401") {
		t.Errorf("Expected message to contain status 401, got: %s", msg)
	}
	if !strings.Contains(msg, body) {
		t.Errorf("Expected message to contain server body, got: %s", msg)
	}
	if strings.Contains(msg, "the-secret") {
		t.Errorf("Error message must never contain the client secret, got: %s", msg)
	}
}

func TestClient_AcquireToken_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing access_token", body: `{"token_type":"bearer"}`},
		{name: "empty access_token", body: `{"access_token":""}`},
		{name: "not JSON", body: `<html>oops</html>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "build-pipeline-client")

			_, err := client.AcquireToken(context.Background(), "the-secret", "")
			if err == nil {
				t.Fatal("Expected error for malformed response")
			}

			var malformed *MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Fatalf("Expected MalformedResponseError, got %T: %v", err, err)
			}
		})
	}
}

func TestClient_AcquireToken_UnknownFieldsTolerated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"T","scope":"read","issued_token_type":"urn:x","future_field":{"a":1}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "build-pipeline-client")

	token, err := client.AcquireToken(context.Background(), "the-secret", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token.Value() != "T" {
		t.Errorf("Expected token T, got %q", token.Value())
	}
}

func TestClient_AcquireToken_EmptySecret(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"access_token":"T"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "build-pipeline-client")

	for _, secret := range []string{"", "   ", "\t\n"} {
		_, err := client.AcquireToken(context.Background(), secret, "")
		if err == nil {
			t.Fatalf("Expected error for secret %q", secret)
		}

		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("Expected InvalidInputError, got %T: %v", err, err)
		}
	}

	if requests != 0 {
		t.Errorf("Expected zero network calls for empty secrets, got %d", requests)
	}
}

func TestClient_AcquireToken_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClientWithHTTPClient(server.URL, "build-pipeline-client",
		&http.Client{Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := client.AcquireToken(context.Background(), "the-secret", "")
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("Expected error for timed-out request")
	}

	var unreachable *UnreachableError
	if !errors.As(err, &unreachable) {
		t.Fatalf("Expected UnreachableError, got %T: %v", err, err)
	}

	if elapsed > 2*time.Second {
		t.Errorf("Expected call to resolve near the timeout, took %v", elapsed)
	}
}

func TestClient_AcquireToken_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	client := NewClient(endpoint, "build-pipeline-client")

	_, err := client.AcquireToken(context.Background(), "the-secret", "")
	if err == nil {
		t.Fatal("Expected error for closed endpoint")
	}

	var unreachable *UnreachableError
	if !errors.As(err, &unreachable) {
		t.Fatalf("Expected UnreachableError, got %T: %v", err, err)
	}
}
