package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foliodev/go-folio/internal/agent/api"
	"github.com/foliodev/go-folio/internal/agent/config"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере Folio
// с использованием имени, email и пароля. Флаги --name и --email обязательны;
// если --password не указан, пароль запрашивается скрытым вводом.
//
// Пример использования:
//
//	folio register --name "Test User" --email test@example.com --password StrongPass123
//
// В случае успешной регистрации полученный auth-token сохраняется
// в локальный конфигурационный файл, и пользователь сразу залогинен.
func NewRegisterCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  folio register --name "Test User" --email test@example.com --password StrongPass123
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}

			c := api.NewClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			resp, err := c.Register(name, email, pw)
			if err != nil {
				return err
			}

			// регистрация сразу возвращает токен — сохраняем его
			app.Creds.AuthToken = resp.AuthToken
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "registration successful (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name for registration")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password for registration (asked interactively if omitted)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}
