package tests

import (
	"strings"
	"testing"

	crypt "github.com/foliodev/go-folio/internal/server/crypto"
)

func bcryptParams() crypt.HasherParams {
	return crypt.HasherParams{
		Hasher:     "bcrypt",
		BcryptCost: 4, // минимальный cost для скорости тестов
	}
}

func argon2Params() crypt.HasherParams {
	return crypt.HasherParams{
		Hasher:          "argon2id",
		Argon2Time:      1,
		Argon2MemoryKiB: 32 * 1024,
		Argon2Threads:   1,
		Argon2KeyLen:    32,
		Argon2SaltLen:   16,
	}
}

// Хэширование и успешная проверка (bcrypt)
func TestHashAndVerifyPassword_Bcrypt_OK(t *testing.T) {
	password := "super-secret-password"

	hash, err := crypt.HashPassword(password, bcryptParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	ok, err := crypt.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}

	if !ok {
		t.Fatal("expected password to be valid")
	}
}

// Хэширование и успешная проверка (argon2id)
func TestHashAndVerifyPassword_Argon2_OK(t *testing.T) {
	password := "super-secret-password"

	hash, err := crypt.HashPassword(password, argon2Params())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "argon2id$") {
		t.Fatalf("expected argon2id hash, got %q", hash)
	}

	ok, err := crypt.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}

	if !ok {
		t.Fatal("expected password to be valid")
	}
}

// Неверный пароль
func TestVerifyPassword_InvalidPassword(t *testing.T) {
	hash, err := crypt.HashPassword("correct-password", bcryptParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := crypt.VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}

	if ok {
		t.Fatal("expected password to be invalid")
	}
}

// Пустой пароль
func TestHashPassword_EmptyPassword(t *testing.T) {
	_, err := crypt.HashPassword("", bcryptParams())
	if err == nil {
		t.Fatal("expected error for empty password")
	}
}

// Неизвестный алгоритм
func TestHashPassword_UnknownHasher(t *testing.T) {
	_, err := crypt.HashPassword("password", crypt.HasherParams{Hasher: "md5"})
	if err == nil {
		t.Fatal("expected error for unknown hasher")
	}
}

// Строка, не являющаяся хэшом
func TestVerifyPassword_InvalidFormat(t *testing.T) {
	_, err := crypt.VerifyPassword("password", "not-a-valid-hash")
	if err == nil {
		t.Fatal("expected error for invalid hash format")
	}

	ok, err := crypt.VerifyPassword("password", "argon2id$broken")
	if err == nil {
		t.Fatal("expected error for broken argon2id hash")
	}
	if ok {
		t.Fatal("expected invalid result")
	}
}

// Проверка: соль разная (хэши разные)
func TestHashPassword_DifferentSalt(t *testing.T) {
	password := "same-password"

	h1, _ := crypt.HashPassword(password, bcryptParams())
	h2, _ := crypt.HashPassword(password, bcryptParams())

	if h1 == h2 {
		t.Fatal("expected different hashes for same password")
	}
}

// Смена hasher в конфиге не ломает старые хэши: алгоритм определяется по префиксу
func TestVerifyPassword_MixedHashes(t *testing.T) {
	bc, err := crypt.HashPassword("password", bcryptParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	ar, err := crypt.HashPassword("password", argon2Params())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	for _, hash := range []string{bc, ar} {
		ok, err := crypt.VerifyPassword("password", hash)
		if err != nil {
			t.Fatalf("VerifyPassword error: %v", err)
		}
		if !ok {
			t.Fatalf("expected password to be valid for hash %q", hash)
		}
	}
}
