package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrEmptySecret is returned when a digest is requested without a secret.
var ErrEmptySecret = errors.New("signer: secret is empty")

// Sign returns the hex-encoded HMAC-SHA256 of parts keyed with secret.
// Each part is fed to the hash in order, which is equivalent to hashing
// their concatenation.
func Sign(secret string, parts ...[]byte) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	mac := hmac.New(sha256.New, []byte(secret))
	for _, p := range parts {
		mac.Write(p)
	}

	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Signer holds a validated secret. It is safe for concurrent use.
type Signer struct {
	secret string
}

// New returns a Signer for secret or ErrEmptySecret.
func New(secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Signer{secret: secret}, nil
}

// MustNew is like New but panics on an empty secret.
func MustNew(secret string) *Signer {
	s, err := New(secret)
	if err != nil {
		panic(err)
	}
	return s
}

// Token signs the three strings the hub uses for both connection tokens
// (user, timestamp, info) and private channel signs (client, channel, info).
func (s *Signer) Token(userOrClient, timestampOrChannel, info string) string {
	return s.sum([]byte(userOrClient), []byte(timestampOrChannel), []byte(info))
}

// APISign signs a serialized API request body for the X-API-Sign header.
func (s *Signer) APISign(body []byte) string {
	return s.sum(body)
}

func (s *Signer) sum(parts ...[]byte) string {
	// Secret is checked in New.
	sign, _ := Sign(s.secret, parts...)
	return sign
}
