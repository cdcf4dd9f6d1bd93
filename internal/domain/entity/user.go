package entity

import "time"

// User representa una cuenta del sistema. RoleName se resuelve con JOIN al leer
// (tablas planas relacionadas por FK, sin referencias inversas embebidas).
type User struct {
	ID           int64
	Username     string
	PasswordHash string `json:"-"` // hash bcrypt, nunca el secreto plano
	RoleID       int64
	RoleName     string
	CreatedAt    time.Time
}
