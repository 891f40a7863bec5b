package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foliodev/go-folio/internal/agent/api"
)

// NewUploadCmd создаёт CLI-команду для загрузки резюме на сервер.
//
// Команда отправляет файл резюме (pdf/docx/doc/txt) на эндпоинт /upload,
// сервер извлекает текст, разбирает его моделью и возвращает структурированные
// поля. Результат печатается в stdout как JSON — его можно сохранить в файл
// и передать в folio save.
//
// Примеры:
//
//	folio upload ./resume.pdf
//	folio upload ./resume.pdf > parsed.json
func NewUploadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Загрузить резюме и получить разобранные поля",
		Long: `Загружает файл резюме на сервер и печатает разобранные поля как JSON.

Поддерживаемые форматы: .pdf, .docx, .doc, .txt.
Разбор выполняется моделью на стороне сервера и может занять заметное время.

Примеры:
  folio upload ./resume.pdf
  folio upload ./resume.pdf > parsed.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := api.NewClient(app.ServerURL)

			resp, err := c.UploadResume(args[0])
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(resp.ParsedData, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
