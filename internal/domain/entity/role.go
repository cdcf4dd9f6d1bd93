package entity

// Conjunto cerrado de roles. Se resuelven una sola vez al emitir el token;
// el middleware autoriza por pertenencia al conjunto, no por igualdad dinámica.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// ValidRole indica si name pertenece al conjunto cerrado de roles.
func ValidRole(name string) bool {
	return name == RoleAdmin || name == RoleUser
}

// Role representa un rol de autorización persistido (seed: 1=Admin, 2=User).
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
