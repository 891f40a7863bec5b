package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword возвращает пароль для register/login.
//
// Режимы:
//   - flagValue непустой: используется значение флага --password как есть;
//   - flagValue пустой: пароль читается интерактивно из терминала со скрытым вводом.
//
// Важно:
//   - если флаг не задан, а stdin не является терминалом, функция вернёт ошибку
//     "stdin is not a terminal; use --password";
//   - пустой пароль считается ошибкой.
func readPassword(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	pw := strings.TrimSpace(string(pwBytes))
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
