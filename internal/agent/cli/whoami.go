package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foliodev/go-folio/internal/agent/api"
)

// NewWhoamiCmd создаёт CLI-команду для показа текущего пользователя.
//
// Команда запрашивает у сервера информацию о пользователе, привязанном
// к сохранённому auth-token, и печатает id, имя, email и дату регистрации.
//
// Пример использования:
//
//	folio whoami
func NewWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Информация о текущем пользователе",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AuthToken == "" {
				return errors.New("not logged in (run: folio login)")
			}

			c := api.NewClient(app.ServerURL)
			resp, err := c.Me(app.Creds.AuthToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"ID: %s\nName: %s\nEmail: %s\nCreatedAt: %s\n",
				resp.ID, resp.Name, resp.Email, resp.CreatedAt,
			)
			return nil
		},
	}
}
