package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSend(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottok123/sendMessage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("cannot decode request body: %v", err)
		}
		w.Write([]byte(`{"ok": true, "result": {"message_id": 7}}`))
	}))
	defer srv.Close()

	b := New("tok123", "42")
	b.BaseURL = srv.URL
	if err := b.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if got["chat_id"] != "42" {
		t.Errorf("chat_id = %q, want %q", got["chat_id"], "42")
	}
	if got["text"] != "hello" {
		t.Errorf("text = %q, want %q", got["text"], "hello")
	}
}

func TestSend_apiError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok": false, "error_code": 400, "description": "Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	b := New("tok123", "nope")
	b.BaseURL = srv.URL
	err := b.Send(context.Background(), "hello")
	if err == nil {
		t.Fatal("Send() expected an error")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Errorf("error %q does not surface the API description", err)
	}
}

func TestSend_transportError(t *testing.T) {
	b := New("tok123", "42")
	// a closed server makes the transport fail
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	b.BaseURL = srv.URL

	if err := b.Send(context.Background(), "hello"); err == nil {
		t.Fatal("Send() expected an error")
	}
}
