package pkg

import "golang.org/x/crypto/bcrypt"

// PasswordHashCost is lowered in tests, bcrypt at cost 14 is slow.
var PasswordHashCost = 14

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return BytesToString(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
