package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для входа и режимов доступа
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Вход и режим администратора",
	Long:  `Вход на сайт, выход, переключение режима администратора.`,
}

func init() {
	AuthCmd.AddCommand(LoginCmd, LogoutCmd, StatusCmd, AdminCmd, DemoteCmd)
}
