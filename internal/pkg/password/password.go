package password

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var ErrMismatch = errors.New("password does not match")

// dummyHash is compared against when no account exists, so a missing account
// and a wrong password take the same time.
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("hrflo-placeholder-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
})

// Hash returns a salted bcrypt hash of raw.
func Hash(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify returns ErrMismatch unless raw matches hash.
func Verify(hash, raw string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)); err != nil {
		return ErrMismatch
	}
	return nil
}

// VerifyAgainstDummy burns one comparison and always fails.
func VerifyAgainstDummy(raw string) error {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(raw))
	return ErrMismatch
}
