package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// ClientCookieName holds the signed client id that namespaces persisted
// session tokens.
const ClientCookieName = "fw_client"

// CookieSigner signs client ids with a keyed BLAKE2b MAC so a client cannot
// pick another client's namespace.
type CookieSigner struct {
	key [64]byte
}

// NewCookieSigner derives a MAC key from secret.
func NewCookieSigner(secret string) *CookieSigner {
	return &CookieSigner{key: blake2b.Sum512([]byte(secret))}
}

// Sign returns "<id>.<mac>".
func (s *CookieSigner) Sign(id string) string {
	return id + "." + base64.RawURLEncoding.EncodeToString(s.mac(id))
}

// Verify returns the client id carried by value, or false when the MAC does
// not match or the id is not a UUID.
func (s *CookieSigner) Verify(value string) (string, bool) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", false
	}
	if subtle.ConstantTimeCompare(got, s.mac(id)) != 1 {
		return "", false
	}
	return id, true
}

func (s *CookieSigner) mac(id string) []byte {
	h, err := blake2b.New256(s.key[:])
	if err != nil {
		// Only returned for keys longer than 64 bytes.
		panic(err)
	}
	h.Write([]byte(id))
	return h.Sum(nil)
}
