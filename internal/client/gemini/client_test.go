package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s", r.Method)
		}
		if r.URL.Path != "/v1beta/models/gemini-pro:generateContent" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Fatalf("key = %q", r.URL.Query().Get("key"))
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "hello" {
			t.Fatalf("unexpected request: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{
					{"text": "part one "},
					{"text": "part two"},
				}}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "test-key", "gemini-pro")
	got, err := client.GenerateContent(context.Background(), "hello")
	if err != nil {
		t.Fatalf("GenerateContent() error: %v", err)
	}
	if got != "part one part two" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"quota"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "test-key", "gemini-pro")
	_, err := client.GenerateContent(context.Background(), "hello")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusTooManyRequests {
		t.Fatalf("status = %d", apiErr.Status)
	}
}

func TestGenerateContent_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "test-key", "gemini-pro")
	if _, err := client.GenerateContent(context.Background(), "hello"); err == nil {
		t.Fatalf("expected error for empty candidates")
	}
}

func TestNotConfigured(t *testing.T) {
	client := NewClient(http.DefaultClient, "", "", "")
	if client.Configured() {
		t.Fatalf("Configured() = true without key")
	}
	if _, err := client.GenerateContent(context.Background(), "hello"); err == nil {
		t.Fatalf("expected error without key")
	}
}
