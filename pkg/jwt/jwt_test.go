package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/ventas-api/pkg/jwt"
)

var testCfg = pkgjwt.Config{
	Secret:     "test-secret-key-for-unit-tests",
	Issuer:     "ventas-api-test",
	Audience:   "ventas-api-test-clients",
	ExpMinutes: 60,
}

// Caso 1: Generate + Parse ida y vuelta — los claims embebidos se recuperan intactos.
func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := pkgjwt.Generate(testCfg, "maria", "maria", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := pkgjwt.Parse(testCfg, token)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims.Subject, "el subject debe ser el username")
	assert.Equal(t, "Admin", claims.Role, "el rol del claim debe ser Admin")
	assert.Equal(t, testCfg.Issuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID, "cada emisión debe llevar un jti fresco")
}

// Caso 2: cada emisión genera un jti distinto.
func TestGenerate_JTIUnico(t *testing.T) {
	t1, err := pkgjwt.Generate(testCfg, "maria", "maria", "User")
	require.NoError(t, err)
	t2, err := pkgjwt.Generate(testCfg, "maria", "maria", "User")
	require.NoError(t, err)

	c1, err := pkgjwt.Parse(testCfg, t1)
	require.NoError(t, err)
	c2, err := pkgjwt.Parse(testCfg, t2)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

// Caso 3: un token vencido retorna ErrExpired.
func TestParse_Expirado(t *testing.T) {
	expiredCfg := testCfg
	expiredCfg.ExpMinutes = -5 // emitido ya vencido

	token, err := pkgjwt.Generate(expiredCfg, "maria", "maria", "Admin")
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testCfg, token)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
}

// Caso 4: firma con otro secret retorna ErrBadSignature.
func TestParse_FirmaInvalida(t *testing.T) {
	otherCfg := testCfg
	otherCfg.Secret = "otro-secret-distinto"

	token, err := pkgjwt.Generate(otherCfg, "maria", "maria", "Admin")
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testCfg, token)
	assert.ErrorIs(t, err, pkgjwt.ErrBadSignature)
}

// Caso 5: basura retorna ErrMalformed.
func TestParse_Malformado(t *testing.T) {
	_, err := pkgjwt.Parse(testCfg, "no-es-un-jwt")
	assert.ErrorIs(t, err, pkgjwt.ErrMalformed)
}

// Caso 6: audience distinta no valida.
func TestParse_AudienceIncorrecta(t *testing.T) {
	otherAud := testCfg
	otherAud.Audience = "otra-audiencia"

	token, err := pkgjwt.Generate(otherAud, "maria", "maria", "Admin")
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testCfg, token)
	assert.Error(t, err)
}

// Caso 7: secret vacío es error de configuración al emitir.
func TestGenerate_SecretVacio(t *testing.T) {
	emptyCfg := testCfg
	emptyCfg.Secret = ""

	_, err := pkgjwt.Generate(emptyCfg, "maria", "maria", "Admin")
	assert.Error(t, err)
}
