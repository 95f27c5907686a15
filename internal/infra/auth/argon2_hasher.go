// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"directory/config"
	"directory/internal/domain/service"
	"directory/internal/errors"

	"golang.org/x/crypto/argon2"
)

const argon2Algorithm = "argon2id"

var errMalformedHash = errors.New("malformed argon2 hash")

// Argon2Params are the Argon2id cost parameters used for new hashes.
type Argon2Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// argon2Hasher implements PasswordHasher with Argon2id and PHC-encoded output:
// $argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
type argon2Hasher struct {
	params Argon2Params
}

// NewArgon2Hasher builds the hasher from the auth.argon2 configuration.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	a := cfg.Auth.Argon2

	return NewArgon2HasherWithParams(Argon2Params{
		Memory:      a.Memory,
		Iterations:  a.Iterations,
		Parallelism: a.Parallelism,
		SaltLength:  a.SaltLength,
		KeyLength:   a.KeyLength,
	})
}

// NewArgon2HasherWithParams builds a hasher with explicit parameters.
func NewArgon2HasherWithParams(params Argon2Params) service.PasswordHasher {
	return &argon2Hasher{params: params}
}

// Hash derives an Argon2id key from password and a fresh random salt.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Algorithm,
		argon2.Version,
		h.params.Memory,
		h.params.Iterations,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Check recomputes the key with the parameters stored in encodedHash and
// compares digests in constant time. Any decoding problem is a mismatch.
func (h *argon2Hasher) Check(password, encodedHash string) bool {
	params, salt, key, err := decodeArgon2Hash(encodedHash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func decodeArgon2Hash(encodedHash string) (Argon2Params, []byte, []byte, error) {
	// Leading "$" yields an empty first part.
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argon2Algorithm {
		return Argon2Params{}, nil, nil, errMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Argon2Params{}, nil, nil, errMalformedHash
	}

	var params Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return Argon2Params{}, nil, nil, errMalformedHash
	}
	if params.Memory == 0 || params.Iterations == 0 || params.Parallelism == 0 {
		return Argon2Params{}, nil, nil, errMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return Argon2Params{}, nil, nil, errMalformedHash
	}
	params.SaltLength = uint32(len(salt))

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Argon2Params{}, nil, nil, errMalformedHash
	}
	params.KeyLength = uint32(len(key))

	return params, salt, key, nil
}
