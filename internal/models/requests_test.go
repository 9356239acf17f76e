package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequestValidate(t *testing.T) {
	assert.Empty(t, (&LoginRequest{Email: "a@b.c", Password: "pw"}).Validate())

	errs := (&LoginRequest{}).Validate()
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestRegisterRequestValidate(t *testing.T) {
	ok := &RegisterRequest{Email: "a@b.c", Password: "longenough", ConfirmPassword: "longenough"}
	assert.Empty(t, ok.Validate())

	mismatch := &RegisterRequest{Email: "a@b.c", Password: "longenough", ConfirmPassword: "different"}
	errs := mismatch.Validate()
	assert.Equal(t, "Passwords do not match.", errs["confirm_password"])

	short := &RegisterRequest{Email: "a@b.c", Password: "12345", ConfirmPassword: "12345"}
	errs = short.Validate()
	assert.Equal(t, "Password should be at least 6 characters long.", errs["password"])
}
