// Хэширование паролей
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// HasherParams — параметры хэширования паролей из конфига.
//
// Hasher выбирает алгоритм: bcrypt (дефолт, cost 10 как в исходной версии)
// или argon2id.
type HasherParams struct {
	Hasher string

	BcryptCost int

	Argon2Time      uint32
	Argon2MemoryKiB uint32
	Argon2Threads   uint8
	Argon2KeyLen    uint32
	Argon2SaltLen   uint32
}

// HashPassword хэширует пароль выбранным алгоритмом.
//
// bcrypt: возвращает стандартную строку $2a$..., соль внутри.
// argon2id: возвращает строку формата
// argon2id$v=19$m=65536,t=3,p=2$<salt_b64>$<hash_b64>
func HashPassword(password string, p HasherParams) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("empty password")
	}

	switch strings.ToLower(p.Hasher) {
	case "", "bcrypt":
		cost := p.BcryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return "", fmt.Errorf("bcrypt: %w", err)
		}
		return string(b), nil
	case "argon2id":
		return hashArgon2(password, p)
	default:
		return "", fmt.Errorf("unknown hasher %q", p.Hasher)
	}
}

// VerifyPassword сравнивает пароль с сохранённым хэшом.
//
// Алгоритм определяется по префиксу хэша, поэтому смена password.hasher в
// конфиге не ломает уже сохранённые пароли.
func VerifyPassword(password, encoded string) (bool, error) {
	if strings.HasPrefix(encoded, "argon2id$") {
		return verifyArgon2(password, encoded)
	}

	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func hashArgon2(password string, p HasherParams) (string, error) {
	salt := make([]byte, p.Argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.Argon2Time, p.Argon2MemoryKiB, p.Argon2Threads, p.Argon2KeyLen)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	encoded := fmt.Sprintf(
		"argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		p.Argon2MemoryKiB, p.Argon2Time, p.Argon2Threads,
		b64Salt, b64Hash,
	)
	return encoded, nil
}

func verifyArgon2(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 {
		return false, errors.New("invalid hash format")
	}

	// parts[0] = argon2id
	// parts[1] = v=19
	// parts[2] = m=...,t=...,p=...
	// parts[3] = salt
	// parts[4] = hash

	var memory uint32
	var time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, errors.New("invalid params format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, errors.New("invalid salt")
	}

	wantHash, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errors.New("invalid hash")
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(wantHash)))
	return subtle.ConstantTimeCompare(got, wantHash) == 1, nil
}
