package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/onboard/app/internal/middleware"
	"github.com/onboard/app/internal/services"
	"github.com/onboard/app/internal/web"
)

// DashboardHandler is the session gate and the profile display. One store
// read per load; a missing record routes to setup, a read fault falls through
// to an empty loading state with no retry.
type DashboardHandler struct {
	store    services.ProfileStore
	renderer *web.Renderer
}

func NewDashboardHandler(store services.ProfileStore, renderer *web.Renderer) *DashboardHandler {
	return &DashboardHandler{store: store, renderer: renderer}
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	profile, err := h.store.Get(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Redirect(w, r, "/profile-setup", http.StatusSeeOther)
			return
		}
		log.Printf("[Dashboard] user=%s error=%v", sess.UserID, err)
		h.renderer.Render(w, "dashboard.html", web.DashboardView{LoadFailed: true})
		return
	}

	h.renderer.Render(w, "dashboard.html", web.DashboardView{
		Profile: profile,
		Flash:   popFlash(w, r),
	})
}
