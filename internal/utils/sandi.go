package utils

import "golang.org/x/crypto/bcrypt"

// HashSandi menghasilkan hash bcrypt untuk kata sandi.
func HashSandi(sandi string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(sandi), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifikasiSandi membandingkan hash bcrypt dengan kata sandi polos.
func VerifikasiSandi(hash, sandi string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(sandi))
	return err == nil
}
