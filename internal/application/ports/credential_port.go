package ports

// PasswordHasher puerto del servicio de credenciales (hash adaptativo de un solo sentido).
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify nunca devuelve error: un digest inválido equivale a no coincidencia.
	Verify(plaintext, digest string) bool
}
