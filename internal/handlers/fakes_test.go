package handlers

import (
	"context"
	"testing"

	"github.com/onboard/app/internal/models"
	"github.com/onboard/app/internal/services"
	"github.com/onboard/app/internal/web"
)

type fakeIdentity struct {
	signInCalls int
	signUpCalls int
	verifyCalls int

	account   *services.Account
	signInErr error
	signUpErr error
	verifyErr error
	checkErr  error
}

func (f *fakeIdentity) SignIn(ctx context.Context, email, password string) (*services.Account, error) {
	f.signInCalls++
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return f.account, nil
}

func (f *fakeIdentity) SignUp(ctx context.Context, email, password string) (*services.Account, error) {
	f.signUpCalls++
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return f.account, nil
}

func (f *fakeIdentity) VerifyIDToken(ctx context.Context, idToken string) (*services.Account, error) {
	f.verifyCalls++
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.account, nil
}

func (f *fakeIdentity) CheckUser(ctx context.Context, uid string) error {
	return f.checkErr
}

type fakeProfileStore struct {
	getProfile *models.Profile
	getErr     error

	saveCalls int
	saved     *models.Profile
	saveErr   error
}

func (f *fakeProfileStore) Get(ctx context.Context, uid string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getProfile, nil
}

func (f *fakeProfileStore) Save(ctx context.Context, profile *models.Profile) error {
	f.saveCalls++
	f.saved = profile
	return f.saveErr
}

func newTestRenderer(t *testing.T) *web.Renderer {
	t.Helper()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}
	return renderer
}
