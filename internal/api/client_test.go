package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kingrea/emis-dashboard/internal/config"
	"github.com/kingrea/emis-dashboard/internal/dashboard"
	"github.com/kingrea/emis-dashboard/internal/store"
)

var _ dashboard.API = (*Client)(nil)

func newTestClient(t *testing.T, handler http.HandlerFunc, cfg config.APIConfig) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg.BaseURL = srv.URL + "/v1/"
	return New(cfg, WithRequestID(func() string { return "req-1" }))
}

func TestGetAlertsDecodesEnvelopeAndSendsHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/alerts" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization = %q", got)
		}
		if got := r.Header.Get(RequestIDHeader); got != "req-1" {
			t.Errorf("request id = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"_id":"a1","event":"Flood","severity":"Severe"}],"page":2,"total":11}`))
	}, config.APIConfig{Token: "secret"})

	page, err := client.GetAlerts(context.Background())
	if err != nil {
		t.Fatalf("GetAlerts: %v", err)
	}
	if page.Page != 2 || page.Total != 11 || len(page.Data) != 1 || page.Data[0].ID != "a1" {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestGetAlertEscapesID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/v1/alerts/a%2F1" {
			t.Errorf("escaped path = %s", r.URL.EscapedPath())
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("expected no authorization header without token")
		}
		_, _ = w.Write([]byte(`{"_id":"a/1","headline":"River rising"}`))
	}, config.APIConfig{})

	alert, err := client.GetAlert(context.Background(), "a/1")
	if err != nil {
		t.Fatalf("GetAlert: %v", err)
	}
	if alert.Headline != "River rising" {
		t.Fatalf("headline = %q", alert.Headline)
	}
}

func TestQueryParameters(t *testing.T) {
	seen := make(chan string, 3)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen <- r.URL.Path + "?" + r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data":[],"page":1,"total":0}`))
	}, config.APIConfig{})

	if _, err := client.GetPlanActivities(context.Background(), "p1"); err != nil {
		t.Fatalf("GetPlanActivities: %v", err)
	}
	found, err := client.GetStakeholders(context.Background(), "  red cross ")
	if err != nil {
		t.Fatalf("GetStakeholders: %v", err)
	}
	if found == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if _, err := client.GetStakeholders(context.Background(), ""); err != nil {
		t.Fatalf("GetStakeholders: %v", err)
	}
	for _, want := range []string{"/v1/activities?plan=p1", "/v1/stakeholders?q=red+cross", "/v1/stakeholders?"} {
		if got := <-seen; got != want {
			t.Fatalf("request = %q, want %q", got, want)
		}
	}
}

func TestErrorBodyBecomesErrorObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"code":404,"name":"NotFound","message":"Not Found","userMessage":"Plan missing"}`))
	}, config.APIConfig{})

	_, err := client.GetPlans(context.Background())
	var obj store.ErrorObject
	if !errors.As(err, &obj) {
		t.Fatalf("expected ErrorObject, got %T %v", err, err)
	}
	if obj.Status != 404 || obj.Name != "NotFound" || obj.UserMessage != "Plan missing" {
		t.Fatalf("unexpected error object %+v", obj)
	}
}

func TestNonJSONErrorKeepsStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}, config.APIConfig{})

	_, err := client.GetIncidentTypes(context.Background())
	obj := store.AsErrorObject(err)
	if obj.Status != http.StatusBadGateway || obj.Message != "Bad Gateway" || obj.DeveloperMessage != "upstream down" {
		t.Fatalf("unexpected error object %+v", obj)
	}
}

func TestCancelledRequestIsAbortError(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, config.APIConfig{})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := client.GetAlerts(ctx)
	if err == nil {
		t.Fatalf("expected error from cancelled request")
	}
	if obj := store.AsErrorObject(err); obj.Name != "AbortError" || obj.Status != 0 {
		t.Fatalf("unexpected error object %+v", obj)
	}
}
