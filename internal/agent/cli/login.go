package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foliodev/go-folio/internal/agent/api"
	"github.com/foliodev/go-folio/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере Folio,
// получает auth-token и сохраняет его в локальный конфигурационный файл.
//
// Флаг --email обязателен; если --password не указан, пароль
// запрашивается скрытым вводом.
//
// Пример использования:
//
//	folio login --email test@example.com --password StrongPass123
//
// В случае успешного выполнения токен сохраняется локально, а пользователю
// выводится сообщение об успешном входе.
func NewLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить auth-token)",
		Long: `Логин пользователя.

Пример:
  folio login --email test@example.com --password StrongPass123
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := api.NewClient(app.ServerURL)
			// выполняем логин пользователя
			resp, err := c.Login(email, pw)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.AuthToken = resp.AuthToken

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().StringVar(&password, "password", "", "password for login (asked interactively if omitted)")
	cmd.MarkFlagRequired("email")

	return cmd
}
