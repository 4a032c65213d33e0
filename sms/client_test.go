package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
		limiter: time.Tick(time.Millisecond),
	}
}

func TestSendPostsPayload(t *testing.T) {
	var got Message

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/send" {
			t.Errorf("path = %s, want /send", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	err := client.Send(context.Background(), Message{
		Text:      "Huduma yako itaisha baada ya saa 24 hours",
		Receivers: []string{"+255752628215"},
		Vendor:    "SMASAPP",
		ApiKey:    "k-123",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if len(got.Receivers) != 1 || got.Receivers[0] != "+255752628215" {
		t.Errorf("receivers = %v", got.Receivers)
	}
	if got.Vendor != "SMASAPP" || got.ApiKey != "k-123" {
		t.Errorf("vendor/apiKey = %q/%q", got.Vendor, got.ApiKey)
	}
}

func TestSendEmptyMessageIsNoop(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	err := client.Send(context.Background(), Message{
		Text:      "   ",
		Receivers: []string{"+255752628215"},
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if called {
		t.Fatal("gateway should not be called for an empty message")
	}
}

func TestSendGatewayErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	err := client.Send(context.Background(), Message{
		Text:      "hello",
		Receivers: []string{"+255752628215"},
	})
	if err == nil {
		t.Fatal("expected error on 401")
	}
}

func TestSendNoReceivers(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")
	err := client.Send(context.Background(), Message{Text: "hello"})
	if err == nil {
		t.Fatal("expected error when receivers are empty")
	}
}
