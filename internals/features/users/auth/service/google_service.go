package service

import (
	"fmt"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"

	"elearn_backend/internals/configs"
)

type GoogleProfile struct {
	Email string
	Name  string
}

// VerifyGoogleIDToken memverifikasi ID token dari Google Sign-In dan
// mengembalikan email + nama untuk find-or-create student.
func VerifyGoogleIDToken(idToken string) (GoogleProfile, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return GoogleProfile{}, fmt.Errorf("ID token tidak valid: %w", err)
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("gagal decode ID token: %w", err)
	}
	return GoogleProfile{
		Email: claimSet.Email,
		Name:  claimSet.Name,
	}, nil
}
