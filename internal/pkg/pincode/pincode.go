package pincode

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("pincode hashing failed")
	ErrComparisonFailed = errors.New("pincode comparison failed")
	ErrInvalidPincode   = errors.New("invalid pincode")
)

const DefaultCost = bcrypt.DefaultCost

func Hash(pin string) (string, error) {
	if pin == "" {
		return "", ErrInvalidPincode
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(pin), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Compare(hashed, pin string) error {
	if hashed == "" || pin == "" {
		return ErrInvalidPincode
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pin))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
