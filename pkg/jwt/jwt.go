package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Errores de validación de token. El middleware de auth los mapea a 401.
var (
	ErrExpired      = errors.New("jwt: token expirado")
	ErrBadSignature = errors.New("jwt: firma inválida")
	ErrMalformed    = errors.New("jwt: token malformado")
)

// Config parámetros de emisión/validación. Se cargan una vez al arranque, no por request.
type Config struct {
	Secret     string
	Issuer     string
	Audience   string
	ExpMinutes int
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Subject es el username; Role permite al middleware autorizar sin consultar la DB.
// El jti se genera fresco en cada emisión (auditoría / detección de replay; no hay
// lista de revocación: un token emitido vale hasta su expiración natural).
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	Role string `json:"role"` // "Admin" | "User"
}

// Generate emite un token HS256 firmado con subject (username), nombre visible y rol.
// Falla solo si el secret está vacío (error de configuración, fatal al arranque).
func Generate(cfg Config, username, name, role string) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   username,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpMinutes) * time.Minute)),
			ID:        uuid.New().String(),
		},
		Name: name,
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// Parse valida firma, issuer, audience y expiración, y devuelve los claims.
// Retorna ErrExpired, ErrBadSignature o ErrMalformed según la causa.
func Parse(cfg Config, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	},
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrMalformed
		}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformed
	}
	return claims, nil
}
