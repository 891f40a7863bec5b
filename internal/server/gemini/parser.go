package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	serr "github.com/foliodev/go-folio/internal/shared/errors"
	"github.com/foliodev/go-folio/internal/shared/models"
)

// resumePromptTemplate — фиксированный промпт с целевой схемой.
//
// Модель просят вернуть строго минифицированный JSON, но гарантий нет:
// ответ может прийти с пояснениями или в markdown-заборе, поэтому из
// свободного текста вырезается первый сбалансированный блок {...}.
const resumePromptTemplate = `
You are an expert resume parser. From the following resume text, extract the following fields and return them in strict minified JSON format compatible with the following schema:

{
  "name": "Full Name",
  "email": "user@example.com",
  "phone": "1234567890",
  "summary": "Brief professional summary",
  "skills": ["Skill1", "Skill2", "Skill3"],
  "achievements": ["Achievement1", "Achievement2"],
  "projects": [
    {
      "title": "Project Title",
      "description": "Short description",
      "link": "https://link-to-project.com"
    }
  ],
  "education": [
    {
      "degree": "Degree Name",
      "institution": "University or College Name",
      "year": "Year of completion"
    }
  ],
  "experience": [
    {
      "company": "Company Name",
      "title": "Job Title",
      "duration": "Start - End",
      "description": "Role responsibilities and achievements"
    }
  ],
  "links": {
    "github": "https://github.com/username",
    "linkedin": "https://linkedin.com/in/username"
  }
}

Use empty strings or empty arrays for any missing fields.
Do NOT include any explanation, markdown, or extra formatting - just return the JSON object.

Resume Text:
"""%s"""
`

// ParseResume разбирает текст резюме в структуру ParsedResume.
//
// Последовательность:
//  1. промпт с текстом резюме уходит модели;
//  2. из свободного текста ответа вырезается первый сбалансированный {...};
//  3. блок парсится как JSON, отсутствующие поля дотягиваются до ""/[].
//
// Ошибки:
//   - ErrUpstream — модель недоступна/вернула не-2xx
//   - ErrNoJSONFound — в ответе нет ни одного блока {...}
//   - ErrMalformedJSON — блок есть, но это не валидный JSON
func (c *Client) ParseResume(ctx context.Context, resumeText string) (models.ParsedResume, error) {
	prompt := fmt.Sprintf(resumePromptTemplate, resumeText)

	raw, err := c.GenerateText(ctx, prompt)
	if err != nil {
		return models.ParsedResume{}, err
	}

	block, ok := firstJSONBlock(raw)
	if !ok {
		return models.ParsedResume{}, serr.ErrNoJSONFound
	}

	var parsed models.ParsedResume
	if err := json.Unmarshal([]byte(block), &parsed); err != nil {
		return models.ParsedResume{}, fmt.Errorf("%w: %v", serr.ErrMalformedJSON, err)
	}

	parsed.Normalize()
	return parsed, nil
}

// firstJSONBlock возвращает первый сбалансированный блок {...} из текста.
//
// Скобки внутри JSON-строк не считаются: сканер отслеживает кавычки
// и экранирование. Возвращает false, если блок не найден или не закрыт.
func firstJSONBlock(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
