package endpoints_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simplystudent09/sanatan-spirituality/internal/content"
	"github.com/simplystudent09/sanatan-spirituality/internal/db"
	"github.com/simplystudent09/sanatan-spirituality/internal/http/api"
	"github.com/simplystudent09/sanatan-spirituality/internal/http/api/site/endpoints"
	"github.com/simplystudent09/sanatan-spirituality/internal/model"
	"github.com/simplystudent09/sanatan-spirituality/internal/webhook"
)

// fakeStore records calls in memory and can simulate failures.
type fakeStore struct {
	leads          []model.Lead
	subscribers    map[string]bool
	failCreateLead bool
}

var _ db.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{subscribers: make(map[string]bool)}
}

func (f *fakeStore) CreateLead(name, contactNumber, service string) (model.Lead, error) {
	if f.failCreateLead {
		return model.Lead{}, errDBDown
	}
	lead := model.Lead{ID: len(f.leads) + 1, Name: name, ContactNumber: contactNumber, Service: service}
	f.leads = append(f.leads, lead)
	return lead, nil
}

func (f *fakeStore) ListLeads() ([]model.Lead, error) {
	return f.leads, nil
}

func (f *fakeStore) CreateSubscriber(email string) (model.NewsletterSubscriber, error) {
	if f.subscribers[email] {
		return model.NewsletterSubscriber{}, db.ErrDuplicateSubscriber
	}
	f.subscribers[email] = true
	return model.NewsletterSubscriber{ID: len(f.subscribers), Email: email}, nil
}

var errDBDown = errors.New("database unavailable")

func setupRouter(store db.Store, relay *webhook.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api.MountGroup(r, api.GroupConfig{Prefix: "/api/site"},
		endpoints.EventsModule(content.NewService(nil, nil)),
		endpoints.TeamModule(content.NewService(nil, nil)),
		endpoints.JoinModule(store, relay),
		endpoints.NewsletterModule(store),
	)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}
