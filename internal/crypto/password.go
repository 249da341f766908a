// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	// AlgorithmArgon2id marks hashes derived with Argon2id.
	AlgorithmArgon2id = "argon2id"
	// AlgorithmSHA1 marks legacy salted SHA-1 hashes.
	AlgorithmSHA1 = "sha1"

	separator   = "|"
	saltLength  = 16
	saltLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

// Hash implements [PasswordHasher].
func (p *passwordHasher) Hash(password string) (string, error) {
	salt, err := generateSalt(saltLength)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	return strings.Join([]string{AlgorithmArgon2id, p.argon2idHex(password, salt), salt}, separator), nil
}

// Verify implements [PasswordHasher].
func (p *passwordHasher) Verify(password, stored string) bool {
	parts := strings.Split(stored, separator)
	if len(parts) != 3 || parts[1] == "" {
		return false
	}
	algorithm, want, salt := parts[0], parts[1], parts[2]

	var got string
	switch algorithm {
	case AlgorithmArgon2id:
		got = p.argon2idHex(password, salt)
	case AlgorithmSHA1:
		got = sha1Hex(password, salt)
	default:
		return false
	}

	return subtle.ConstantTimeCompare([]byte(got), []byte(strings.ToLower(want))) == 1
}

func (p *passwordHasher) argon2idHex(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), p.argonTime, p.argonMemory, p.argonThreads, p.argonKeyLen)
	return hex.EncodeToString(key)
}

func sha1Hex(password, salt string) string {
	sum := sha1.Sum([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// generateSalt returns n random characters drawn from saltLetters.
func generateSalt(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = saltLetters[int(buf[i])%len(saltLetters)]
	}
	return string(buf), nil
}
