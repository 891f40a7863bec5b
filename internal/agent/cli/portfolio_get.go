package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foliodev/go-folio/internal/agent/api"
	"github.com/foliodev/go-folio/internal/shared/models"
)

// NewGetCmd создаёт CLI-команду для чтения портфолио.
//
// Режимы работы:
//   - без флагов возвращает портфолио текущего пользователя (нужен логин);
//   - с флагом --user <uuid> возвращает публичное портфолио указанного
//     пользователя, токен не требуется.
//
// Результат печатается в stdout как JSON.
//
// Примеры:
//
//	folio get
//	folio get --user 8b33...-uuid
func NewGetCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Получить портфолио (своё или публичное по id)",
		Long: `Показывает портфолио.

Без флагов — портфолио текущего пользователя (нужен логин).
С флагом --user <uuid> — публичное портфолио указанного пользователя.

Примеры:
  folio get
  folio get --user <uuid>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := api.NewClient(app.ServerURL)

			var doc models.Portfolio
			var err error
			if userID != "" {
				doc, err = c.PublicPortfolio(userID)
			} else {
				if app.Creds == nil || app.Creds.AuthToken == "" {
					return errors.New("not logged in (run: folio login, or use --user)")
				}
				doc, err = c.MyPortfolio(app.Creds.AuthToken)
			}
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id for public portfolio lookup")

	return cmd
}
