package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const sessionKey contextKey = "session"

const cookieName = "onboard_session"

// Session is the explicit per-request proof of authentication. It is resolved
// once at request entry by Resolve and released with the request scope; no
// handler reads the cookie or the token directly.
type Session struct {
	ID     string
	UserID string
	Email  string
}

// SessionManager mints and validates the signed session cookie.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a session for the account and sets the signed cookie.
func (m *SessionManager) Issue(w http.ResponseWriter, userID, email string) (*Session, error) {
	sess := &Session{
		ID:     uuid.New().String(),
		UserID: userID,
		Email:  email,
	}

	claims := jwt.MapClaims{
		"jti":     sess.ID,
		"user_id": sess.UserID,
		"email":   sess.Email,
		"exp":     time.Now().Add(m.ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl.Seconds()),
	})
	return sess, nil
}

// Clear signs the session out by expiring the cookie.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// FromRequest reads and validates the session cookie. A missing or invalid
// cookie yields a nil session, not an error distinction the callers care
// about.
func (m *SessionManager) FromRequest(r *http.Request) *Session {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil
	}
	id, _ := claims["jti"].(string)
	email, _ := claims["email"].(string)

	return &Session{ID: id, UserID: userID, Email: email}
}

// Resolve gates a route on a live session: without one the visitor is
// redirected to redirectTo, with one the session is attached to the request
// context for the wrapped handler.
func (m *SessionManager) Resolve(redirectTo string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := m.FromRequest(r)
			if sess == nil {
				http.Redirect(w, r, redirectTo, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), sess)))
		})
	}
}

// ContextWithSession attaches sess to ctx.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession extracts the session from context, or nil outside a gated route.
func GetSession(ctx context.Context) *Session {
	sess, ok := ctx.Value(sessionKey).(*Session)
	if !ok {
		return nil
	}
	return sess
}

// GetUserID extracts the session user ID from context.
func GetUserID(ctx context.Context) string {
	if sess := GetSession(ctx); sess != nil {
		return sess.UserID
	}
	return ""
}

// GetUserEmail extracts the session email from context.
func GetUserEmail(ctx context.Context) string {
	if sess := GetSession(ctx); sess != nil {
		return sess.Email
	}
	return ""
}
