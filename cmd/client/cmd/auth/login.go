package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"invtrack/cmd/client/cmd/common"
)

var username string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти на сайт",
	Long: `Вход по логину и паролю. Флаг входа сохраняется локально,
повторно вводить пароль до выхода не нужно. После входа всегда
включается обычный режим.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}

		name := username
		if name == "" {
			fmt.Print("Логин: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("ошибка чтения логина: %w", err)
			}
			name = strings.TrimSpace(line)
		}

		password, err := common.ReadPassword("Пароль: ")
		if err != nil {
			return err
		}

		ctx, cancel := common.Timeout(cmd)
		defer cancel()

		if err := app.Login(ctx, name, password); err != nil {
			return fmt.Errorf("ошибка входа: %w", err)
		}

		common.Success("Вход выполнен")
		return nil
	},
}

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		if err := app.Logout(); err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}
		common.Success("Выход выполнен")
		return nil
	},
}

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Показать состояние входа и режим",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}

		p := app.View()
		if common.JSON(cmd) {
			return common.PrintJSON(common.Out(), map[string]any{
				"authenticated": p.Authenticated,
				"mode":          p.Mode.String(),
				"page":          p.Nav,
			})
		}

		if p.LoginRequired || !p.Authenticated {
			fmt.Fprintln(common.Out(), "Вход не выполнен")
			return nil
		}
		fmt.Fprintf(common.Out(), "Вход выполнен, режим: %s, раздел: %s\n", p.Mode, p.Nav)
		return nil
	},
}

var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Включить режим администратора",
	Long: `Включает режим администратора по паролю. Пароль берется из флага
--secret или запрашивается в терминале. Режим не сохраняется между
запусками.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		if err := common.RequireAdmin(cmd, app); err != nil {
			return err
		}
		common.Success("Режим администратора включен")
		return nil
	},
}

var DemoteCmd = &cobra.Command{
	Use:     "demote",
	Aliases: []string{"user"},
	Short:   "Вернуться в обычный режим",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		app.Demote()
		common.Success("Обычный режим")
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&username, "username", "u", "", "логин")
}
