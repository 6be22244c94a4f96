package devices

import (
	"fmt"

	"github.com/spf13/cobra"

	"invtrack/cmd/client/cmd/common"
	"invtrack/internal/domain/inventory"
)

var ShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Показать карточку устройства",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		if err := common.RequireLogin(app); err != nil {
			return err
		}

		id, err := common.ParseID(args[0])
		if err != nil {
			return err
		}
		if err := common.EnsureLoaded(cmd, app); err != nil {
			return err
		}

		d, ok := app.Device(id)
		if !ok {
			return fmt.Errorf("устройство %d: %w", id, inventory.ErrNotFound)
		}

		if common.JSON(cmd) {
			return common.PrintJSON(common.Out(), d)
		}
		common.PrintCard(common.Out(), d, common.Config(cmd).Lang)
		return nil
	},
}
