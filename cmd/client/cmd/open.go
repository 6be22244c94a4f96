package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"invtrack/cmd/client/cmd/common"
)

var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Открыть карточку устройства по ссылке из QR кода",
	Long: `Открывает карточку устройства по ссылке вида
http://host/?qr_id=5. Вход для этого не нужен.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := common.Timeout(cmd)
		defer cancel()

		if err := app.Load(ctx, args[0]); err != nil {
			return fmt.Errorf("ошибка загрузки данных: %w", err)
		}

		p := app.View()
		if !p.CardMode {
			fmt.Fprintln(common.Out(), "Устройство по ссылке не найдено")
			return nil
		}
		// карточка выводится один раз, следующие команды видят обычный режим
		defer app.CloseCard()

		if common.JSON(cmd) {
			return common.PrintJSON(common.Out(), p.Card)
		}
		common.PrintCard(common.Out(), *p.Card, common.Config(cmd).Lang)
		return nil
	},
}
