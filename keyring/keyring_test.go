package keyring

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "keyring.json")

	if err := Save(filename, "open sesame", "AIza-very-secret"); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	// the file must not leak the secret in clear.
	raw, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading keyring file: %v", err)
	}
	if string(raw) == "AIza-very-secret" {
		t.Fatal("secret stored in clear")
	}
	var e envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		t.Fatalf("keyring file is not a JSON envelope: %v", err)
	}
	if e.V != formatVersion || len(e.Salt) != 16 || len(e.Cipher) == 0 {
		t.Errorf("unexpected envelope %+v", e)
	}

	secret, err := Load(filename, "open sesame")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if secret != "AIza-very-secret" {
		t.Errorf("Load() = %q, want the sealed secret back", secret)
	}
}

func TestLoadWrongPassphrase(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "keyring.json")
	if err := Save(filename, "right", "secret"); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if _, err := Load(filename, "wrong"); !errors.Is(err, ErrWrongPassphrase) {
		t.Errorf("Load() error = %v, want ErrWrongPassphrase", err)
	}
}

func TestLoadTampered(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "keyring.json")
	if err := Save(filename, "pass", "secret"); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading keyring file: %v", err)
	}
	var e envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	e.Cipher[0] ^= 0xff
	tampered, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal tampered envelope: %v", err)
	}
	if err := os.WriteFile(filename, tampered, 0600); err != nil {
		t.Fatalf("writing tampered keyring: %v", err)
	}

	if _, err := Load(filename, "pass"); !errors.Is(err, ErrWrongPassphrase) {
		t.Errorf("Load() error = %v, want ErrWrongPassphrase on a tampered envelope", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "keyring.json")
	if _, err := Load(filename, "pass"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want a not-exist error", err)
	}
}
