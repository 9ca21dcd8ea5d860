package endpoints_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/simplystudent09/sanatan-spirituality/internal/webhook"
)

func TestJoinRejectsMissingFields(t *testing.T) {
	webhookHits := make(chan struct{}, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webhookHits <- struct{}{}
	}))
	defer srv.Close()

	store := newFakeStore()
	relay := webhook.NewClient(srv.URL)
	router := setupRouter(store, relay)

	cases := []struct {
		name    string
		payload map[string]string
	}{
		{"empty name", map[string]string{"name": "", "contact_number": "+44 7123 456789"}},
		{"empty contact", map[string]string{"name": "Asha", "contact_number": ""}},
		{"whitespace name", map[string]string{"name": "   ", "contact_number": "+44 7123 456789"}},
		{"whitespace contact", map[string]string{"name": "Asha", "contact_number": "  \t "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/site/join", tc.payload)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var resp map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp["error"] != "Please fill in both name and contact number." {
				t.Errorf("error message = %q", resp["error"])
			}
		})
	}

	relay.Wait()
	if len(store.leads) != 0 {
		t.Errorf("invalid submissions were persisted: %+v", store.leads)
	}
	select {
	case <-webhookHits:
		t.Error("webhook was dispatched for an invalid submission")
	default:
	}
}

func TestJoinAcceptsValidLead(t *testing.T) {
	received := make(chan map[string]string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		received <- map[string]string{
			"name":           r.PostFormValue("name"),
			"contact_number": r.PostFormValue("contact_number"),
			"service":        r.PostFormValue("service"),
		}
	}))
	defer srv.Close()

	store := newFakeStore()
	relay := webhook.NewClient(srv.URL)
	router := setupRouter(store, relay)

	w := postJSON(t, router, "/api/site/join", map[string]string{
		"name":           "  Asha  ",
		"contact_number": " +44 7123 456789 ",
		"service":        "Kundalini Meditation",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["message"] == "" {
		t.Error("expected a confirmation message")
	}

	if len(store.leads) != 1 {
		t.Fatalf("persisted %d leads, want 1", len(store.leads))
	}
	if store.leads[0].Name != "Asha" || store.leads[0].ContactNumber != "+44 7123 456789" {
		t.Errorf("lead stored untrimmed: %+v", store.leads[0])
	}

	select {
	case got := <-received:
		if got["name"] != "Asha" || got["contact_number"] != "+44 7123 456789" {
			t.Errorf("webhook payload = %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never called")
	}
}

func TestJoinSucceedsEvenWhenWebhookUnreachable(t *testing.T) {
	store := newFakeStore()
	relay := webhook.NewClient("http://127.0.0.1:1/webhook")
	router := setupRouter(store, relay)

	w := postJSON(t, router, "/api/site/join", map[string]string{
		"name":           "Asha",
		"contact_number": "+44 7123 456789",
	})
	relay.Wait()

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 regardless of webhook reachability", w.Code)
	}
	if len(store.leads) != 1 {
		t.Errorf("persisted %d leads, want 1", len(store.leads))
	}
}

func TestJoinRejectsUnknownService(t *testing.T) {
	store := newFakeStore()
	relay := webhook.NewClient("http://127.0.0.1:1/webhook")
	router := setupRouter(store, relay)

	w := postJSON(t, router, "/api/site/join", map[string]string{
		"name":           "Asha",
		"contact_number": "+44 7123 456789",
		"service":        "Skydiving",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(store.leads) != 0 {
		t.Errorf("lead with unknown service was persisted")
	}
}

func TestJoinReportsStorageFailure(t *testing.T) {
	store := newFakeStore()
	store.failCreateLead = true
	relay := webhook.NewClient("http://127.0.0.1:1/webhook")
	router := setupRouter(store, relay)

	w := postJSON(t, router, "/api/site/join", map[string]string{
		"name":           "Asha",
		"contact_number": "+44 7123 456789",
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "Something went wrong. Please try again." {
		t.Errorf("error message = %q", resp["error"])
	}
}
