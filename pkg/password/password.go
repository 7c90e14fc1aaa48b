// Package password is the single credential-hashing service. Every
// write path that stores a credential goes through it, so hashed
// passwords cannot drift between entities.
package password

import "golang.org/x/crypto/bcrypt"

type Service struct {
	cost int
}

func NewService() *Service {
	return &Service{cost: bcrypt.DefaultCost}
}

// Hash derives a bcrypt hash from a plaintext credential
func (s *Service) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether plain matches the stored hash
func (s *Service) Compare(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
