package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrInvalidToken = errors.New("invalid auth token")
)

// Principal identifies an authenticated caller.
type Principal struct {
	UserID string
	Role   string
}

// signPrincipal computes the HMAC-SHA256 signature over "userID|role".
func signPrincipal(userID, role, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(userID + "|" + role))
	sum := h.Sum(nil)
	// URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// GenerateUserToken creates a verifiable token for a principal. The
// external identity provider shares the salt and issues these tokens
// after credential verification; this service only validates them.
//
// Token format: userID.role.signature
func GenerateUserToken(userID, role, salt string) string {
	return userID + "." + role + "." + signPrincipal(userID, role, salt)
}

// ParseUserToken validates a token and returns the principal it encodes.
// The signature is checked in constant time; any malformed or tampered
// token yields ErrInvalidToken.
func ParseUserToken(token, salt string) (Principal, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return Principal{}, ErrInvalidToken
	}

	userID, role, sig := parts[0], parts[1], parts[2]
	expected := signPrincipal(userID, role, salt)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return Principal{}, ErrInvalidToken
	}

	return Principal{UserID: userID, Role: role}, nil
}
