package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/onboard/app/internal/middleware"
	"github.com/onboard/app/internal/models"
	"github.com/onboard/app/internal/services"
	"github.com/onboard/app/internal/web"
)

// AuthHandler owns the credential forms. Verification is entirely the
// provider's job; failures map to the small set of canned messages the pages
// show, with the underlying reason logged only.
type AuthHandler struct {
	identity       services.Identity
	sessions       *middleware.SessionManager
	drafts         *services.DraftService
	guard          *services.InflightGuard
	renderer       *web.Renderer
	googleClientID string
}

func NewAuthHandler(identity services.Identity, sessions *middleware.SessionManager, drafts *services.DraftService, guard *services.InflightGuard, renderer *web.Renderer, googleClientID string) *AuthHandler {
	return &AuthHandler{
		identity:       identity,
		sessions:       sessions,
		drafts:         drafts,
		guard:          guard,
		renderer:       renderer,
		googleClientID: googleClientID,
	}
}

func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, "")
}

func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "register.html", web.RegisterView{})
}

// Login handles the email/password form. On success the visitor lands on the
// dashboard; on failure the page re-renders with a generic message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, "Failed to sign in. Please check your credentials.")
		return
	}

	req := models.LoginRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.renderLogin(w, firstError(errs, "email", "password"))
		return
	}

	// One sign-in in flight per account; a re-submit is a no-op.
	key := "login:" + strings.ToLower(req.Email)
	if !h.guard.TryBegin(key) {
		h.renderLogin(w, "")
		return
	}
	defer h.guard.End(key)

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	account, err := h.identity.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		log.Printf("[Login] email=%s error=%v", req.Email, err)
		h.renderLogin(w, "Failed to sign in. Please check your credentials.")
		return
	}

	if _, err := h.sessions.Issue(w, account.UID, account.Email); err != nil {
		log.Printf("[Login] session issue error=%v", err)
		h.renderLogin(w, "Failed to sign in. Please check your credentials.")
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// GoogleLogin accepts the ID token minted by the client-side federated popup
// and answers with the route to navigate to. Federated sign-ins always land
// on profile setup, whether or not a profile already exists.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	key := googleGuardKey(req.IDToken)
	if !h.guard.TryBegin(key) {
		writeJSON(w, http.StatusAccepted, models.NewErrorResponse("Sign-in already in progress"))
		return
	}
	defer h.guard.End(key)

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	account, err := h.identity.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		log.Printf("[GoogleLogin] error=%v", err)
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Failed to sign in with Google. Please try again."))
		return
	}

	if _, err := h.sessions.Issue(w, account.UID, account.Email); err != nil {
		log.Printf("[GoogleLogin] session issue error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to sign in with Google. Please try again."))
		return
	}
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(models.RedirectResponse{Redirect: "/profile-setup"}))
}

// googleGuardKey keys the federated in-flight guard on the token's subject,
// which stays constant across popup clicks while the token string itself is
// minted fresh each time. The claims are read without verification; the key
// only serializes submits, trust comes from VerifyIDToken.
func googleGuardKey(idToken string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err == nil {
		if sub, ok := claims["sub"].(string); ok && sub != "" {
			return "google:" + sub
		}
	}
	return "google:" + idToken
}

// Register handles the sign-up form. Local validation runs before any
// external call; only a clean request reaches the provider.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegister(w, "Failed to create an account. The email may already be in use.")
		return
	}

	req := models.RegisterRequest{
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.renderRegister(w, firstError(errs, "confirm_password", "password", "email"))
		return
	}

	key := "register:" + strings.ToLower(req.Email)
	if !h.guard.TryBegin(key) {
		h.renderRegister(w, "")
		return
	}
	defer h.guard.End(key)

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	account, err := h.identity.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		log.Printf("[Register] email=%s error=%v", req.Email, err)
		h.renderRegister(w, "Failed to create an account. The email may already be in use.")
		return
	}

	if _, err := h.sessions.Issue(w, account.UID, account.Email); err != nil {
		log.Printf("[Register] session issue error=%v", err)
		h.renderRegister(w, "Failed to create an account. The email may already be in use.")
		return
	}
	http.Redirect(w, r, "/profile-setup", http.StatusSeeOther)
}

// Logout clears the session cookie and drops any unsaved draft.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess := h.sessions.FromRequest(r); sess != nil {
		h.drafts.Discard(sess.ID)
	}
	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, errMsg string) {
	h.renderer.Render(w, "login.html", web.LoginView{
		Error:          errMsg,
		GoogleClientID: h.googleClientID,
	})
}

func (h *AuthHandler) renderRegister(w http.ResponseWriter, errMsg string) {
	h.renderer.Render(w, "register.html", web.RegisterView{Error: errMsg})
}
