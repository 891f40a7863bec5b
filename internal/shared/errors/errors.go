// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Некорректный идентификатор (не UUID)
	ErrInvalidID = errors.New("invalid id")
	// конфликт при одновременной записи в бд
	ErrConflict = errors.New("conflict")
)

// только для пайплайна обработки резюме
var (
	// расширение файла не поддерживается (принимаем pdf/doc/docx/txt)
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// библиотека извлечения текста вернула ошибку
	ErrExtractionFailed = errors.New("text extraction failed")
	// в ответе модели нет ни одного JSON-блока {...}
	ErrNoJSONFound = errors.New("no json found in model response")
	// JSON-блок из ответа модели не парсится
	ErrMalformedJSON = errors.New("malformed json in model response")
	// сетевая/HTTP ошибка при обращении к генеративному API
	ErrUpstream = errors.New("upstream ai service error")
)
