package twist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bobmcallan/twist-mcp/internal/common"
	"github.com/bobmcallan/twist-mcp/internal/config"
)

func testClient(serverURL string) *Client {
	return NewClient(config.TwistConfig{
		BaseURL:     serverURL,
		APIToken:    "test-token",
		WorkspaceID: "123",
		Timeout:     "5s",
	}, common.NewSilentLogger())
}

func TestClient_Get_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/inbox/get" {
			t.Errorf("Expected /inbox/get, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("workspace_id"); got != "123" {
			t.Errorf("Expected workspace_id=123, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Expected bearer auth header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]interface{}{{"id": 1}})
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	params := url.Values{}
	params.Set("workspace_id", "123")

	body, err := client.Get(context.Background(), "inbox/get", params)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var threads []Thread
	if err := json.Unmarshal(body, &threads); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(threads) != 1 || threads[0].ID != 1 {
		t.Errorf("Expected one thread with id 1, got %+v", threads)
	}
}

func TestClient_Post_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/threads/star" {
			t.Errorf("Expected /threads/star, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %q", ct)
		}
		var reqBody map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if reqBody["id"] != float64(42) {
			t.Errorf("Expected id=42 in body, got %v", reqBody["id"])
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	_, err := client.Post(context.Background(), "threads/star", map[string]interface{}{"id": 42})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestClient_ErrorEnvelope(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error_code":   200,
			"error_string": "Invalid token",
		})
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	_, err := client.Get(context.Background(), "inbox/get", nil)
	if err == nil {
		t.Fatal("Expected error for 403 response")
	}
	if err.Error() != "Invalid token" {
		t.Errorf("Expected upstream error string, got %q", err.Error())
	}
}

func TestClient_ErrorWithoutEnvelope(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	_, err := client.Get(context.Background(), "inbox/get", nil)
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "twist returned 500") {
		t.Errorf("Expected status in error, got %q", err.Error())
	}
}

func TestClient_ServerUnavailable(t *testing.T) {
	client := testClient("http://localhost:1")
	_, err := client.Get(context.Background(), "inbox/get", nil)
	if err == nil {
		t.Fatal("Expected error when server is unavailable")
	}
}

func TestClient_WithCorrelationId(t *testing.T) {
	client := testClient("http://localhost:1")
	clone := client.WithCorrelationId("abc-123")
	if clone == client {
		t.Error("Expected a copy, got the same client")
	}
	if clone.WorkspaceID() != client.WorkspaceID() {
		t.Error("Copy should keep the workspace id")
	}
}
