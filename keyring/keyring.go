// Package keyring stores the advisor API key encrypted at rest.
//
// The key is sealed with a passphrase-derived key (scrypt) and
// chacha20poly1305, and written as a small JSON envelope so the file
// remains inspectable without exposing the secret.
package keyring

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// formatVersion is the current version of the envelope written to disk.
const formatVersion = 1

// Scrypt parameters used when sealing. Opening reads them back from the
// envelope, so they can change without breaking existing files.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// envelope has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted keyring")

// envelope is the on-disk JSON structure holding the ciphertext and the
// key derivation parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and encrypts raw into a JSON envelope.
func seal(passphrase string, raw []byte) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [12]byte // zero nonce, the salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(envelope{
		V:      formatVersion,
		Salt:   salt[:],
		N:      scryptN,
		R:      scryptR,
		P:      scryptP,
		Cipher: ct,
	})
}

// open decrypts a JSON envelope using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var e envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, fmt.Errorf("could not read keyring envelope: %w", err)
	}
	if e.V > formatVersion {
		return nil, fmt.Errorf("unsupported keyring version %d", e.V)
	}

	key, err := scrypt.Key([]byte(passphrase), e.Salt, e.N, e.R, e.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [12]byte
	pt, err := aead.Open(nil, nonce[:], e.Cipher, e.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// Save seals the secret with the passphrase and writes it to filename,
// creating the parent directory if needed.
func Save(filename, passphrase, secret string) error {
	data, err := seal(passphrase, []byte(secret))
	if err != nil {
		return fmt.Errorf("could not seal keyring: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("could not create directory for keyring %q: %w", filename, err)
	}
	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("could not write keyring %q: %w", filename, err)
	}
	return nil
}

// Load reads the keyring file and returns the secret it holds.
func Load(filename, passphrase string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("could not read keyring %q: %w", filename, err)
	}
	secret, err := open(passphrase, data)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
