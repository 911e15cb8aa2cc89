package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(geocodeURL, forecastURL string) *Client {
	return New(Options{
		GeocodeURL:  geocodeURL,
		ForecastURL: forecastURL,
		Timeout:     2 * time.Second,
	}, nil)
}

func TestClient_Resolve_FirstMatchWins(t *testing.T) {
	body := `{"results":[
		{"name":"London","country":"United Kingdom","admin1":"England","latitude":51.5,"longitude":-0.12,"timezone":"Europe/London"},
		{"name":"London","country":"Canada","admin1":"Ontario","latitude":42.98,"longitude":-81.25,"timezone":"America/Toronto"}
	]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		q := r.URL.Query()
		if q.Get("name") != "London" {
			t.Errorf("name param = %q, want %q", q.Get("name"), "London")
		}
		if q.Get("count") == "" {
			t.Error("expected count param in query")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	c := newTestClient(server.URL, "")
	place, err := c.Resolve(context.Background(), "London")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if place.Name != "London" {
		t.Errorf("Name = %q, want %q", place.Name, "London")
	}
	if place.Region != "England" {
		t.Errorf("Region = %q, want %q (first match, not Canada)", place.Region, "England")
	}
	if place.Latitude != 51.5 || place.Longitude != -0.12 {
		t.Errorf("coordinates = (%v, %v), want (51.5, -0.12)", place.Latitude, place.Longitude)
	}
	if place.Timezone != "Europe/London" {
		t.Errorf("Timezone = %q, want %q", place.Timezone, "Europe/London")
	}
}

func TestClient_Resolve_RegionFallsBackToCountry(t *testing.T) {
	body := `{"results":[{"name":"Singapore","country":"Singapore","latitude":1.35,"longitude":103.82,"timezone":"Asia/Singapore"}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	c := newTestClient(server.URL, "")
	place, err := c.Resolve(context.Background(), "Singapore")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if place.Region != "Singapore" {
		t.Errorf("Region = %q, want country fallback %q", place.Region, "Singapore")
	}
}

func TestClient_Resolve_NoResults(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `{"results":[]}`},
		{"absent key", `{"generationtime_ms":0.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := newTestClient(server.URL, "")
			_, err := c.Resolve(context.Background(), "xyzzy")
			if err == nil {
				t.Fatal("Resolve() expected error, got nil")
			}
			if !errors.Is(err, ErrLocationNotFound) {
				t.Errorf("Resolve() error = %v, want ErrLocationNotFound", err)
			}
		})
	}
}

func TestClient_Resolve_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(server.URL, "")
	_, err := c.Resolve(context.Background(), "London")
	if err == nil {
		t.Fatal("Resolve() expected error, got nil")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Resolve() error = %v, want ErrNetwork", err)
	}
	if !strings.Contains(err.Error(), "HTTP 500") {
		t.Errorf("Resolve() error = %v, want HTTP status in message", err)
	}
}

func TestClient_Resolve_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	c := newTestClient(server.URL, "")
	_, err := c.Resolve(context.Background(), "London")
	if err == nil {
		t.Fatal("Resolve() expected error, got nil")
	}
	if !errors.Is(err, ErrBadResponse) {
		t.Errorf("Resolve() error = %v, want ErrBadResponse", err)
	}
}

func TestClient_Resolve_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	c := New(Options{GeocodeURL: server.URL, Timeout: 50 * time.Millisecond}, nil)
	_, err := c.Resolve(context.Background(), "London")
	if err == nil {
		t.Fatal("Resolve() expected error, got nil")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Resolve() error = %v, want ErrNetwork", err)
	}
}

func TestClient_Resolve_SetsCorrelationID(t *testing.T) {
	var corrID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		corrID = r.Header.Get("X-Correlation-ID")
		_, _ = w.Write([]byte(`{"results":[{"name":"Delhi","country":"India","latitude":28.6,"longitude":77.2,"timezone":"Asia/Kolkata"}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, "")
	if _, err := c.Resolve(context.Background(), "Delhi"); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if corrID == "" {
		t.Error("expected X-Correlation-ID header on geocode request")
	}
}
