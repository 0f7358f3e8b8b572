package auth

import (
	"crypto/rand"
	"encoding/base64"

	appErrors "Feira/internal/errors"
)

// generateSecurePassword cria a senha aleatória de contas abertas via Google.
func generateSecurePassword() (string, error) {
	const passwordLength = 32
	bytes := make([]byte, passwordLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
