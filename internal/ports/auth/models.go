package auth

// Claims representa al usuario autenticado en el request.
type Claims struct {
	Username string
}
