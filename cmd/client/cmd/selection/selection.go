package selection

import (
	"fmt"

	"github.com/spf13/cobra"

	"invtrack/cmd/client/cmd/common"
)

// SelectCmd управляет выбором устройств для печати этикеток. Выбор живет
// в памяти процесса, поэтому полезен в интерактивной сессии.
var SelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Выбор устройств для печати",
}

var addCmd = &cobra.Command{
	Use:   "add <id...>",
	Short: "Добавить устройства в выбор",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := common.ParseIDs(args)
		if err != nil {
			return err
		}
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		app.Select(ids...)
		return printSelection(cmd)
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <id...>",
	Short: "Убрать устройства из выбора",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := common.ParseIDs(args)
		if err != nil {
			return err
		}
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		app.Deselect(ids...)
		return printSelection(cmd)
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Очистить выбор",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		app.ClearSelection()
		return printSelection(cmd)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать выбор",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printSelection(cmd)
	},
}

func printSelection(cmd *cobra.Command) error {
	app, err := common.App(cmd)
	if err != nil {
		return err
	}

	ids := app.Selection()
	if common.JSON(cmd) {
		return common.PrintJSON(common.Out(), ids)
	}
	if len(ids) == 0 {
		fmt.Fprintln(common.Out(), "Выбор пуст")
		return nil
	}
	fmt.Fprintf(common.Out(), "Выбрано: %d %v\n", len(ids), ids)
	return nil
}

func init() {
	SelectCmd.AddCommand(addCmd, removeCmd, clearCmd, listCmd)
}
