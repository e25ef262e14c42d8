// Package mwp authenticates mutations issued by the multi-write-proxy.
//
// Every call carries {"payload": <json>, "digest": "<hex>"} where
// digest = hex(HMAC(secret, Canonicalize(payload))).
package mwp

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/account-service/internal/domain"
)

// Envelope is the body of every MWP call.
type Envelope struct {
	Payload json.RawMessage `json:"payload"`
	Digest  string          `json:"digest"`
}

// HasPayload reports whether the envelope carries a non-null payload.
func (e Envelope) HasPayload() bool {
	p := bytes.TrimSpace(e.Payload)
	return len(p) > 0 && !bytes.Equal(p, []byte("null"))
}

// Signer computes and verifies digests with a shared secret.
type Signer struct {
	secret  []byte
	newHash func() hash.Hash
}

// NewSigner creates a Signer. algorithm is "sha256" or "sha512".
func NewSigner(secret, algorithm string) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("mwp: empty secret")
	}

	var h func() hash.Hash
	switch strings.ToLower(algorithm) {
	case "sha256":
		h = sha256.New
	case "sha512":
		h = sha512.New
	default:
		return nil, fmt.Errorf("mwp: unsupported algorithm %q", algorithm)
	}

	return &Signer{secret: []byte(secret), newHash: h}, nil
}

// Sign returns the hex digest of payload.
func (s *Signer) Sign(payload json.RawMessage) (string, error) {
	sum, err := s.sum(payload)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// Verify checks digest against payload in constant time.
// It returns domain.ErrMissingDigest or domain.ErrInvalidDigest.
func (s *Signer) Verify(payload json.RawMessage, digest string) error {
	if digest == "" {
		return domain.ErrMissingDigest
	}

	given, err := hex.DecodeString(digest)
	if err != nil {
		return domain.ErrInvalidDigest
	}

	want, err := s.sum(payload)
	if err != nil {
		return domain.ErrInvalidDigest
	}

	if !hmac.Equal(given, want) {
		return domain.ErrInvalidDigest
	}
	return nil
}

func (s *Signer) sum(payload json.RawMessage) ([]byte, error) {
	canonical, err := Canonicalize(payload)
	if err != nil {
		return nil, err
	}
	mac := hmac.New(s.newHash, s.secret)
	mac.Write(canonical)
	return mac.Sum(nil), nil
}

// Canonicalize re-encodes a JSON document with object keys sorted and no
// insignificant whitespace. Numbers keep their original text.
//
// Invalid UTF-8 and lone surrogate escapes are rejected: the decoder would
// turn both into U+FFFD, so distinct payloads would share a digest.
func Canonicalize(raw json.RawMessage) ([]byte, error) {
	if !utf8.Valid(raw) {
		return nil, errors.New("mwp: payload is not valid UTF-8")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("mwp: decode payload: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("mwp: trailing data after payload")
	}
	if hasReplacementChar(v) {
		return nil, errors.New("mwp: payload contains U+FFFD")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("mwp: encode payload: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func hasReplacementChar(v any) bool {
	switch t := v.(type) {
	case string:
		return strings.ContainsRune(t, utf8.RuneError)
	case []any:
		for _, e := range t {
			if hasReplacementChar(e) {
				return true
			}
		}
	case map[string]any:
		for k, e := range t {
			if strings.ContainsRune(k, utf8.RuneError) || hasReplacementChar(e) {
				return true
			}
		}
	}
	return false
}
