package extract

import (
	"errors"
	"os"
	"strings"
	"unicode"
)

// минимальная длина последовательности печатаемых символов,
// которую считаем осмысленным текстом, а не мусором из служебных структур
const docMinRun = 4

// docText извлекает текст из устаревшего бинарного .doc.
//
// Полноценного чистого Go-парсера для OLE/.doc нет, поэтому делаем
// best-effort: вытаскиваем из файла достаточно длинные последовательности
// печатаемых символов. Для типичного резюме этого хватает, чтобы модель
// разобрала поля; на совсем экзотических файлах вернётся шум, и тогда
// модель просто вернёт пустые поля.
func docText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", errors.New("empty file")
	}

	var (
		buf strings.Builder
		run []rune
	)

	flush := func() {
		if len(run) >= docMinRun {
			buf.WriteString(string(run))
			buf.WriteString("\n")
		}
		run = run[:0]
	}

	for _, b := range raw {
		r := rune(b)
		if r == '\r' || r == '\n' || r == '\t' {
			flush()
			continue
		}
		if r < 128 && (unicode.IsPrint(r)) {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()

	return buf.String(), nil
}
