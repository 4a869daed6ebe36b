package users

// RoleUser es el único rol que asigna el auto-registro.
const RoleUser = "user"

// User: el password es opaco (se compara tal cual).
type User struct {
	ID       int64
	Username string
	Password string
	Role     string
}
