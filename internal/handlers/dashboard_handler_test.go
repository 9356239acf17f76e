package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onboard/app/internal/middleware"
	"github.com/onboard/app/internal/models"
	"github.com/onboard/app/internal/services"
)

func dashboardRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	sess := &middleware.Session{ID: "sess-1", UserID: "uid-1", Email: "jane@example.com"}
	return req.WithContext(middleware.ContextWithSession(req.Context(), sess))
}

func TestDashboardMissingProfileRoutesToSetup(t *testing.T) {
	store := &fakeProfileStore{getErr: services.ErrProfileNotFound}
	h := NewDashboardHandler(store, newTestRenderer(t))

	rec := httptest.NewRecorder()
	h.Show(rec, dashboardRequest())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile-setup", rec.Header().Get("Location"))
}

func TestDashboardRendersProfileWithoutInterests(t *testing.T) {
	store := &fakeProfileStore{getProfile: &models.Profile{
		UserID:    "uid-1",
		Name:      "A",
		Email:     "jane@example.com",
		Interests: []string{},
	}}
	h := NewDashboardHandler(store, newTestRenderer(t))

	rec := httptest.NewRecorder()
	h.Show(rec, dashboardRequest())

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "A")
	assert.Contains(t, body, "jane@example.com")
	assert.NotContains(t, body, "<h3>Interests</h3>")
}

func TestDashboardRendersInterestsWhenPresent(t *testing.T) {
	store := &fakeProfileStore{getProfile: &models.Profile{
		UserID:    "uid-1",
		Name:      "A",
		Interests: []string{"chess", "hiking"},
	}}
	h := NewDashboardHandler(store, newTestRenderer(t))

	rec := httptest.NewRecorder()
	h.Show(rec, dashboardRequest())

	body := rec.Body.String()
	assert.Contains(t, body, "<h3>Interests</h3>")
	assert.Contains(t, body, "chess")
	assert.Contains(t, body, "hiking")
}

func TestDashboardReadFaultFallsThroughToLoadingState(t *testing.T) {
	store := &fakeProfileStore{getErr: errors.New("store unreachable")}
	h := NewDashboardHandler(store, newTestRenderer(t))

	rec := httptest.NewRecorder()
	h.Show(rec, dashboardRequest())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"), "no retry, no redirect")
	assert.Contains(t, rec.Body.String(), "Loading...")
}
