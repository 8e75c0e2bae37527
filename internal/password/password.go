// Package password hashes and verifies account passwords with argon2id.
// The encoded form embeds algorithm, cost parameters, salt and digest, so a
// stored hash is self-describing and verification needs no extra state.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLen   = 32
	timeCost  = 1
	memoryKiB = 64 * 1024
	threads   = 4
	keyLen    = 32
)

// Hash derives an encoded argon2id hash with a fresh random salt. A failing
// entropy source is an environment fault, not a recoverable condition.
func Hash(clear string) string {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		panic(fmt.Sprintf("password: reading random salt: %v", err))
	}

	key := argon2.IDKey([]byte(clear), salt, timeCost, memoryKiB, threads, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memoryKiB, timeCost, threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))
}

// Verify re-derives the candidate with the parameters embedded in encoded
// and compares in constant time. A wrong password is (false, nil); an error
// means the stored hash itself is unusable.
func Verify(encoded, candidate string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, fmt.Errorf("password: malformed hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("password: malformed hash version: %w", err)
	}
	if version != argon2.Version {
		return false, fmt.Errorf("password: unsupported argon2 version %d", version)
	}

	var memory, time uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &parallelism); err != nil {
		return false, fmt.Errorf("password: malformed hash parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("password: malformed salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("password: malformed digest: %w", err)
	}

	derived := argon2.IDKey([]byte(candidate), salt, time, memory, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, derived) == 1, nil
}
