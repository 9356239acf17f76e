package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
)

// Account is what the auth provider tells us about a signed-in user: a stable
// UID plus the email the account was created with.
type Account struct {
	UID   string
	Email string
}

// Identity is the capability the credential forms are polymorphic over:
// submit credentials, get a session or a failure. All verification happens on
// the provider side; callers only react to success or error.
type Identity interface {
	SignIn(ctx context.Context, email, password string) (*Account, error)
	SignUp(ctx context.Context, email, password string) (*Account, error)
	VerifyIDToken(ctx context.Context, idToken string) (*Account, error)
	CheckUser(ctx context.Context, uid string) error
}

// FirebaseIdentity talks to the Identity Toolkit REST API for password
// credentials and to the Admin SDK for federated ID-token verification and
// live-session checks.
type FirebaseIdentity struct {
	APIKey     string
	Endpoint   string
	HTTPClient *http.Client

	authClient *fbauth.Client
}

const defaultIdentityEndpoint = "https://identitytoolkit.googleapis.com/v1"

func NewFirebaseIdentity(apiKey string, authClient *fbauth.Client) *FirebaseIdentity {
	return &FirebaseIdentity{
		APIKey:   apiKey,
		Endpoint: defaultIdentityEndpoint,
		HTTPClient: &http.Client{
			Timeout: 8 * time.Second,
		},
		authClient: authClient,
	}
}

type passwordRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identityResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

type identityError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (f *FirebaseIdentity) SignIn(ctx context.Context, email, password string) (*Account, error) {
	return f.password(ctx, "accounts:signInWithPassword", email, password)
}

func (f *FirebaseIdentity) SignUp(ctx context.Context, email, password string) (*Account, error) {
	return f.password(ctx, "accounts:signUp", email, password)
}

func (f *FirebaseIdentity) password(ctx context.Context, op, email, password string) (*Account, error) {
	body, err := json.Marshal(passwordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?key=%s", f.Endpoint, op, f.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := f.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 8 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr identityError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("identity %s: %s", op, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("identity %s: http %d", op, resp.StatusCode)
	}

	var out identityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.LocalID == "" {
		return nil, fmt.Errorf("identity %s: empty localId", op)
	}
	return &Account{UID: out.LocalID, Email: out.Email}, nil
}

// VerifyIDToken validates an ID token minted by the client-side federated
// popup and extracts the account it belongs to.
func (f *FirebaseIdentity) VerifyIDToken(ctx context.Context, idToken string) (*Account, error) {
	if f.authClient == nil {
		return nil, ErrUnauthenticated
	}
	tok, err := f.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	email, _ := tok.Claims["email"].(string)
	return &Account{UID: tok.UID, Email: email}, nil
}

// CheckUser re-checks that the account behind the session still exists with
// the provider. Used immediately before a profile write to distinguish an
// expired session from a store fault.
func (f *FirebaseIdentity) CheckUser(ctx context.Context, uid string) error {
	if f.authClient == nil {
		return ErrUnauthenticated
	}
	if _, err := f.authClient.GetUser(ctx, uid); err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return nil
}
