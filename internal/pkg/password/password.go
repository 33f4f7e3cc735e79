package password

import (
	"sync"

	"loyalty-ledger/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errs.New("password hashing failed")
	ErrMismatch      = errs.New("password does not match")
	ErrEmpty         = errs.New("password is empty")
)

const DefaultCost = bcrypt.DefaultCost

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hashed), nil
}

func Compare(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmpty
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// CompareDummy spends about as long as Compare on a real hash and always fails.
// Login calls it for unknown emails so response time does not reveal which emails exist.
func CompareDummy(plain string) error {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
	return ErrMismatch
}
