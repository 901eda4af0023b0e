// Package secret implements the owner-secret capability shared by groups,
// posts and comments. Secrets are stored as bcrypt hashes, never plaintext.
package secret

import "golang.org/x/crypto/bcrypt"

// Hash derives a one-way hash from a plaintext secret. An empty secret hashes
// to the empty string, meaning no secret is set.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost) // cost ~10
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash. An entity with no
// stored secret only verifies against an empty password.
func Verify(hash, plain string) bool {
	if hash == "" {
		return plain == ""
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
