package password

import "github.com/seastock/seastock/application/port/outbound"

// InsecureAnyPasswordVerifier accepts every password once the username has
// resolved. Intended for demos and local development only; it is wired when
// AUTH_ALLOW_ANY_PASSWORD is set and the server logs a warning at startup.
type InsecureAnyPasswordVerifier struct{}

func NewInsecureAnyPasswordVerifier() *InsecureAnyPasswordVerifier {
	return &InsecureAnyPasswordVerifier{}
}

func (v *InsecureAnyPasswordVerifier) VerifyPassword(password, hash string) (bool, error) {
	return true, nil
}

var _ outbound.PasswordVerifier = (*InsecureAnyPasswordVerifier)(nil)
