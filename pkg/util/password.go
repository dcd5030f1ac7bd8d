package util

import (
	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 12

var bcryptCost = defaultBcryptCost

// SetBcryptCost overrides the hashing cost, typically from configuration.
// Values outside bcrypt's supported range fall back to the default, so a
// bad config value can never silently weaken hashing below MinCost.
func SetBcryptCost(cost int) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		bcryptCost = defaultBcryptCost
		return
	}
	bcryptCost = cost
}

// HashPassword hashes a plain text password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword checks if a plain text password matches a hashed password
func VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
