package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes      = 16
	pbkdf2Iters    = 10000
	pbkdf2KeyBytes = 64
)

// HashPassword derives credential material from a raw password using a
// fresh random salt. Both outputs are hex-encoded; the raw password is
// never stored.
func HashPassword(raw string) (salt, hash string, err error) {
	saltRaw := make([]byte, saltBytes)
	if _, err = rand.Read(saltRaw); err != nil {
		return "", "", err
	}
	key := pbkdf2.Key([]byte(raw), saltRaw, pbkdf2Iters, pbkdf2KeyBytes, sha512.New)
	return hex.EncodeToString(saltRaw), hex.EncodeToString(key), nil
}

// VerifyPassword recomputes the derivation with the stored salt and
// compares against the stored hash in constant time.
func VerifyPassword(raw, salt, hash string) bool {
	saltRaw, err := hex.DecodeString(salt)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(hash)
	if err != nil {
		return false
	}
	key := pbkdf2.Key([]byte(raw), saltRaw, pbkdf2Iters, pbkdf2KeyBytes, sha512.New)
	return subtle.ConstantTimeCompare(key, stored) == 1
}
