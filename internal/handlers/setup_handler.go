package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/onboard/app/internal/form"
	"github.com/onboard/app/internal/middleware"
	"github.com/onboard/app/internal/models"
	"github.com/onboard/app/internal/services"
	"github.com/onboard/app/internal/web"
)

// SetupHandler drives the multi-step profile form. The draft lives server
// side per session; every post binds the visible step's fields, applies the
// requested transition, and redirects back to the single setup page.
type SetupHandler struct {
	identity services.Identity
	store    services.ProfileStore
	drafts   *services.DraftService
	guard    *services.InflightGuard
	renderer *web.Renderer
}

func NewSetupHandler(identity services.Identity, store services.ProfileStore, drafts *services.DraftService, guard *services.InflightGuard, renderer *web.Renderer) *SetupHandler {
	return &SetupHandler{
		identity: identity,
		store:    store,
		drafts:   drafts,
		guard:    guard,
		renderer: renderer,
	}
}

func (h *SetupHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	draft := h.drafts.Snapshot(sess.ID, sess.Email)
	h.renderer.Render(w, "setup.html", web.SetupView{Draft: &draft})
}

// Update handles next/back navigation and the final save. Field values posted
// with the action are always bound first, so nothing typed is lost on a
// transition; there is no validation gate between steps.
func (h *SetupHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/profile-setup", http.StatusSeeOther)
		return
	}

	action := r.PostFormValue("action")
	var saved form.Draft
	h.drafts.Update(sess.ID, sess.Email, func(draft *form.Draft) {
		h.bindFields(draft, r)
		switch action {
		case "next":
			draft.Next()
		case "back":
			draft.Back()
		case "save":
			saved = *draft
			saved.Interests = append([]string(nil), draft.Interests...)
		}
	})

	if action == "save" {
		h.save(w, r, sess, &saved)
		return
	}
	http.Redirect(w, r, "/profile-setup", http.StatusSeeOther)
}

// Interests handles the tag sub-editor. A commit that fails its guards is
// dropped without feedback; the scratch input is cleared either way by the
// page reload.
func (h *SetupHandler) Interests(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/profile-setup", http.StatusSeeOther)
		return
	}

	h.drafts.Update(sess.ID, sess.Email, func(draft *form.Draft) {
		switch r.PostFormValue("action") {
		case "add":
			_ = draft.CommitInterest(r.PostFormValue("interest"))
		case "remove":
			draft.RemoveInterest(r.PostFormValue("interest"))
		}
	})
	http.Redirect(w, r, "/profile-setup", http.StatusSeeOther)
}

// save assembles the record from a detached copy of the draft and performs the
// single overwriting store write.
// Re-entry while a save is in flight is a no-op. Faults are classified
// coarsely: an expired session sends the visitor back to sign-in, a
// permission fault keeps them here with a configuration message, anything
// else surfaces its raw text.
func (h *SetupHandler) save(w http.ResponseWriter, r *http.Request, sess *middleware.Session, draft *form.Draft) {
	if !h.guard.TryBegin("save:" + sess.ID) {
		http.Redirect(w, r, "/profile-setup", http.StatusSeeOther)
		return
	}
	defer h.guard.End("save:" + sess.ID)

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	// Re-check the live session before writing, so a vanished account reads
	// as an auth fault rather than a store fault.
	if err := h.identity.CheckUser(ctx, sess.UserID); err != nil {
		log.Printf("[SaveProfile] user=%s error=%v", sess.UserID, err)
		setFlash(w, "Please log in again and try saving your profile.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	now := time.Now().UTC()
	profile := &models.Profile{
		UserID:      sess.UserID,
		Name:        draft.Name,
		PhotoURL:    draft.PhotoURL,
		Designation: draft.Designation,
		Phone:       draft.Phone,
		Address:     draft.Address,
		Interests:   draft.Interests,
		Email:       draft.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.store.Save(ctx, profile); err != nil {
		log.Printf("[SaveProfile] user=%s error=%v", sess.UserID, err)
		switch {
		case errors.Is(err, services.ErrPermissionDenied):
			h.renderer.Render(w, "setup.html", web.SetupView{
				Draft: draft,
				Error: "Permission denied. Please check the store security rules and make sure writes to your own profile are allowed.",
			})
		case errors.Is(err, services.ErrUnauthenticated):
			setFlash(w, "Please log in again and try saving your profile.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			h.renderer.Render(w, "setup.html", web.SetupView{
				Draft: draft,
				Error: "An error occurred while saving your profile: " + err.Error(),
			})
		}
		return
	}

	h.drafts.Discard(sess.ID)
	setFlash(w, "Profile saved successfully!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *SetupHandler) bindFields(draft *form.Draft, r *http.Request) {
	switch draft.Step {
	case form.StepBasicInfo:
		draft.Name = r.PostFormValue("name")
		draft.PhotoURL = r.PostFormValue("photoURL")
		draft.Designation = r.PostFormValue("designation")
	case form.StepContact:
		draft.Phone = r.PostFormValue("phone")
		draft.Address = r.PostFormValue("address")
	}
}
