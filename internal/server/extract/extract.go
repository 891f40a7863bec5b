// Package extract достаёт плоский текст из загруженного файла резюме.
//
// Формат определяется по расширению исходного имени файла:
//   - .pdf  — библиотека ledongthuc/pdf
//   - .docx — zip-архив с word/document.xml
//   - .doc  — устаревший бинарный формат, best-effort скан печатаемого текста
//   - .txt  — читается как есть
//
// Любое другое расширение — ErrUnsupportedFormat.
// Ошибка библиотеки извлечения заворачивается в ErrExtractionFailed.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	serr "github.com/foliodev/go-folio/internal/shared/errors"
)

// Text извлекает текст из файла path.
//
// originalName — имя файла, которое прислал клиент: временный файл на диске
// имеет случайное имя без расширения, поэтому формат определяем по
// оригинальному имени.
func Text(path, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))

	switch ext {
	case ".pdf":
		text, err := pdfText(path)
		if err != nil {
			return "", fmt.Errorf("%w: pdf: %v", serr.ErrExtractionFailed, err)
		}
		return text, nil
	case ".docx":
		text, err := docxText(path)
		if err != nil {
			return "", fmt.Errorf("%w: docx: %v", serr.ErrExtractionFailed, err)
		}
		return text, nil
	case ".doc":
		text, err := docText(path)
		if err != nil {
			return "", fmt.Errorf("%w: doc: %v", serr.ErrExtractionFailed, err)
		}
		return text, nil
	case ".txt":
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: txt: %v", serr.ErrExtractionFailed, err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", serr.ErrUnsupportedFormat, ext)
	}
}
