package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/foliodev/go-folio/internal/agent/api"
	"github.com/foliodev/go-folio/internal/shared/models"
)

// NewSaveCmd создаёт CLI-команду для сохранения портфолио.
//
// Команда читает документ портфолио в JSON (из файла --file или из STDIN)
// и отправляет его на сервер. Сохранение — это полная замена: сервер
// перезаписывает портфолио пользователя целиком.
//
// Формат документа совпадает с тем, что печатает folio upload,
// поэтому типовой сценарий:
//
//	folio upload ./resume.pdf > parsed.json
//	(при необходимости правим parsed.json руками)
//	folio save --file parsed.json
//
// Для выполнения команды требуется логин (auth-token в локальном конфиге).
func NewSaveCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Сохранить портфолио (создать или полностью заменить)",
		Long: `Сохраняет портфолио текущего пользователя.

Документ читается из файла (--file) или из STDIN и отправляется на сервер как есть.
Сервер перезаписывает портфолио целиком.

Примеры:
  folio save --file parsed.json
  cat parsed.json | folio save
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AuthToken == "" {
				return errors.New("not logged in (run: folio login)")
			}

			var raw []byte
			var err error
			if file != "" {
				raw, err = os.ReadFile(file)
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			var doc models.Portfolio
			if err := json.Unmarshal(raw, &doc); err != nil {
				return fmt.Errorf("invalid portfolio json: %w", err)
			}

			c := api.NewClient(app.ServerURL)
			saved, err := c.SavePortfolio(doc, app.Creds.AuthToken)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(saved, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to portfolio json (reads STDIN if omitted)")

	return cmd
}
