package password

import "golang.org/x/crypto/bcrypt"

// Hash genera el hash bcrypt (con salt) de un secreto. El hash nunca es reversible.
func Hash(secret string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify devuelve true si el candidato corresponde al hash almacenado.
// bcrypt compara el digest en tiempo constante.
func Verify(candidate, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(candidate)) == nil
}
