package service

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/foliodev/go-folio/internal/server/config"
	"github.com/foliodev/go-folio/internal/server/extract"
	serr "github.com/foliodev/go-folio/internal/shared/errors"
	"github.com/foliodev/go-folio/internal/shared/models"
)

// ResumeService реализует пайплайн разбора загруженного резюме:
// временный файл -> извлечение текста -> генеративный парсер.
//
// Загруженный файл — строго временный артефакт: он удаляется после
// извлечения текста на любом исходе (удаление best-effort, ошибка
// удаления не поднимается).
type ResumeService struct {
	parser ResumeParser

	uploadDir    string
	maxFileBytes int64
}

// NewResumeService создаёт ResumeService с настройками из конфига.
func NewResumeService(parser ResumeParser, cfg *config.Config) *ResumeService {
	return &ResumeService{
		parser:       parser,
		uploadDir:    cfg.Upload.Dir,
		maxFileBytes: cfg.Upload.MaxFileBytes,
	}
}

// Parse принимает содержимое загруженного файла и возвращает
// распарсенные поля портфолио.
//
// originalName нужен для определения формата по расширению.
//
// Ошибки:
//   - ErrInvalidInput — файл больше лимита или пустой
//   - ErrUnsupportedFormat / ErrExtractionFailed — извлечение текста
//   - ErrUpstream / ErrNoJSONFound / ErrMalformedJSON — генеративный парсер
func (s *ResumeService) Parse(ctx context.Context, file io.Reader, originalName string) (models.ParsedResume, error) {
	tmpPath, err := s.saveTemp(file)
	if err != nil {
		return models.ParsedResume{}, err
	}
	text, err := extract.Text(tmpPath, originalName)
	// файл удаляется сразу после извлечения, до похода к модели и независимо
	// от исхода; на безуспешное удаление не жалуемся
	os.Remove(tmpPath)
	if err != nil {
		return models.ParsedResume{}, err
	}

	return s.parser.ParseResume(ctx, text)
}

// saveTemp копирует содержимое загрузки во временный файл в каталоге uploadDir.
//
// Чтение ограничено maxFileBytes+1: если лимит превышен — ErrInvalidInput.
func (s *ResumeService) saveTemp(file io.Reader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", serr.ErrInternal
	}

	tmp, err := os.CreateTemp(s.uploadDir, "resume-*")
	if err != nil {
		return "", serr.ErrInternal
	}

	written, err := io.Copy(tmp, io.LimitReader(file, s.maxFileBytes+1))
	closeErr := tmp.Close()

	switch {
	case err != nil || closeErr != nil:
		os.Remove(tmp.Name())
		return "", serr.ErrInternal
	case written == 0:
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: empty file", serr.ErrInvalidInput)
	case written > s.maxFileBytes:
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: file exceeds %d bytes", serr.ErrInvalidInput, s.maxFileBytes)
	}

	return tmp.Name(), nil
}
