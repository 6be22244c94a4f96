package devices

import (
	"github.com/spf13/cobra"

	"invtrack/cmd/client/cmd/common"
)

var labelDir string

var LabelCmd = &cobra.Command{
	Use:   "label <id>",
	Short: "Сохранить PNG этикетку устройства",
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

		file, err := app.Label(id)
		if err != nil {
			return err
		}

		path, err := common.WriteFile(labelDir, file)
		if err != nil {
			return err
		}
		common.Success("Этикетка сохранена: %s", path)
		return nil
	},
}

func init() {
	LabelCmd.Flags().StringVarP(&labelDir, "out", "o", ".", "каталог для файла")
}
