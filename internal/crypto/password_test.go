package crypto

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"testing"
)

// newTestHasher keeps argon2 cheap so the suite stays fast.
func newTestHasher() PasswordHasher {
	return &passwordHasher{argonTime: 1, argonMemory: 8 * 1024, argonThreads: 1, argonKeyLen: 32}
}

func TestHash_Layout(t *testing.T) {
	h := newTestHasher()

	stored, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	parts := strings.Split(stored, "|")
	if len(parts) != 3 {
		t.Fatalf("stored value %q has %d parts, want 3", stored, len(parts))
	}
	if parts[0] != AlgorithmArgon2id {
		t.Fatalf("algorithm = %q, want %q", parts[0], AlgorithmArgon2id)
	}
	if len(parts[1]) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(parts[1]))
	}
	if len(parts[2]) != saltLength {
		t.Fatalf("salt length = %d, want %d", len(parts[2]), saltLength)
	}
}

func TestHash_SaltsDiffer(t *testing.T) {
	h := newTestHasher()

	a, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a == b {
		t.Fatalf("expected different stored values for the same password")
	}
}

func TestVerify_Argon2id(t *testing.T) {
	h := newTestHasher()

	stored, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !h.Verify("correct horse", stored) {
		t.Fatalf("expected password to verify")
	}
	if h.Verify("wrong horse", stored) {
		t.Fatalf("expected wrong password to be rejected")
	}
}

func TestVerify_LegacySHA1(t *testing.T) {
	h := newTestHasher()

	sum := sha1.Sum([]byte("hunter2" + "abcde"))
	stored := "sha1|" + hex.EncodeToString(sum[:]) + "|abcde"

	if !h.Verify("hunter2", stored) {
		t.Fatalf("expected legacy sha1 password to verify")
	}
	if h.Verify("hunter3", stored) {
		t.Fatalf("expected wrong password to be rejected")
	}
}

func TestVerify_Malformed(t *testing.T) {
	h := newTestHasher()

	for _, stored := range []string{
		"",
		"sha1",
		"sha1|abc",
		"sha1||salt",
		"md5|0cc175b9c0f1b6a831c399e269772661|",
		"argon2id|zz|salt|extra",
	} {
		if h.Verify("a", stored) {
			t.Errorf("Verify(%q) = true, want false", stored)
		}
	}
}

func TestGenerateSalt_Alphabet(t *testing.T) {
	salt, err := generateSalt(64)
	if err != nil {
		t.Fatalf("generateSalt error: %v", err)
	}
	for _, r := range salt {
		if !strings.ContainsRune(saltLetters, r) {
			t.Fatalf("salt contains unexpected rune %q", r)
		}
	}
}
