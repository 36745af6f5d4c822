package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the bcrypt work factor. Tests lower it to bcrypt.MinCost.
var BcryptCost = 12

// HashPassword returns a salted bcrypt hash of password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches the stored hash
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

var (
	dummyOnce sync.Once
	dummy     []byte
)

// dummyHash is compared against when the account does not exist so that
// unknown emails and wrong passwords take the same time. It is built on first
// use at BcryptCost.
func dummyHash() []byte {
	dummyOnce.Do(func() {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("mentorbridge-dummy-password"), BcryptCost)
	})
	return dummy
}

// CheckPasswordOrDummy behaves like CheckPassword but burns a comparison when hashedPassword is empty.
func CheckPasswordOrDummy(hashedPassword, password string) bool {
	if hashedPassword == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return false
	}
	return CheckPassword(hashedPassword, password)
}
