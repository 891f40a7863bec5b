package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/foliodev/go-folio/internal/server/config"
	"github.com/foliodev/go-folio/internal/server/crypto"
	srvmodels "github.com/foliodev/go-folio/internal/server/models"
	serr "github.com/foliodev/go-folio/internal/shared/errors"
)

// минимальная длина пароля — как в исходной версии сервиса
const minPasswordLen = 5

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (сразу с выдачей auth-токена)
//   - аутентификация (логин)
//   - выдача подписанных auth-токенов с TTL
//   - получение данных текущего пользователя (без хэша пароля)
type AuthService struct {
	users UsersRepo

	pass crypto.HasherParams
	jwt  crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.HasherParams{
			Hasher:          cfg.Password.Hasher,
			BcryptCost:      cfg.Password.Bcrypt.Cost,
			Argon2Time:      cfg.Password.Argon2.Time,
			Argon2MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Argon2Threads:   cfg.Password.Argon2.Threads,
			Argon2KeyLen:    cfg.Password.Argon2.KeyLen,
			Argon2SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// Register регистрирует нового пользователя и сразу выдаёт ему auth-токен.
//
// Валидация:
//   - name обязателен
//   - email обязателен и должен быть валидным
//   - пароль обязателен и длиной >= 5 символов
//
// Возвращает:
//   - подписанный auth-токен с id нового пользователя в subject
//   - ErrInvalidInput при некорректных данных или ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	if name == "" || email == "" || password == "" ||
		!regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`).MatchString(email) ||
		len(password) < minPasswordLen {
		return "", serr.ErrInvalidInput
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return "", serr.ErrInternal
	}

	userID, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		return "", err
	}

	token, err := crypto.NewAuthToken(userID.String(), s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}
	return token, nil
}

// Login аутентифицирует пользователя и выдаёт auth-токен.
//
// Поведение:
//   - не раскрывает факт существования email
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", serr.ErrInvalidInput
	}
	// получаем юзера по email
	userID, hash, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrInvalidCredentials
		}
		return "", err
	}
	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, hash)
	if err != nil {
		return "", serr.ErrInternal
	}
	if !ok {
		return "", serr.ErrInvalidCredentials
	}

	token, err := crypto.NewAuthToken(userID.String(), s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}
	return token, nil
}

// GetUser возвращает данные пользователя по id из токена.
//
// Хэш пароля в модели не заполняется — наружу он не отдаётся никогда.
//
// Ошибки:
//   - ErrInvalidID — id из токена не парсится как UUID
//   - ErrNotFound — пользователь удалён/не существует
func (s *AuthService) GetUser(ctx context.Context, rawUserID string) (srvmodels.User, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return srvmodels.User{}, serr.ErrInvalidID
	}
	return s.users.GetByID(ctx, userID)
}
