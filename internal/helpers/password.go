package helpers

import (
	"golang.org/x/crypto/bcrypt"
)

const DefaultPasswordCost = 10

type BcryptHasher struct{}

func (BcryptHasher) HashPassword(plaintext string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
