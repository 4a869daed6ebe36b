package auth

import "context"

// Authenticator valida credenciales. false sin error = credenciales incorrectas.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (bool, error)
}
