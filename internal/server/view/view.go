// Package view рендерит портфолио в HTML на стороне сервера.
//
// Каждый шаблон — чистая функция от документа портфолио: никакой записи,
// никакого состояния. Секция (skills, projects, education, experience,
// achievements, summary) опускается целиком, если её данные пусты — это
// единственный инвариант представления, который стоит тестировать.
package view

import (
	"fmt"
	"html/template"
	"io"
	"sort"

	serr "github.com/foliodev/go-folio/internal/shared/errors"
	"github.com/foliodev/go-folio/internal/shared/models"
)

// DefaultTemplate — шаблон, который используется, когда клиент не выбрал свой.
const DefaultTemplate = "classic"

// Renderer хранит разобранные шаблоны и умеет рендерить портфолио.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer разбирает встроенные шаблоны.
//
// Ошибка здесь означает опечатку в самих шаблонах, поэтому паника при
// инициализации (html/template.Must) приемлема — сервер просто не стартует.
func NewRenderer() *Renderer {
	r := &Renderer{templates: make(map[string]*template.Template)}
	for name, text := range templateSources {
		r.templates[name] = template.Must(template.New(name).Parse(text))
	}
	return r
}

// Names возвращает отсортированный список доступных шаблонов.
func (r *Renderer) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render рендерит портфолио выбранным шаблоном в w.
//
// Ошибки:
//   - ErrInvalidInput — неизвестное имя шаблона
func (r *Renderer) Render(w io.Writer, templateName string, p models.Portfolio) error {
	if templateName == "" {
		templateName = DefaultTemplate
	}

	t, ok := r.templates[templateName]
	if !ok {
		return fmt.Errorf("%w: unknown template %q", serr.ErrInvalidInput, templateName)
	}

	return t.Execute(w, p)
}
