package devices

import (
	"github.com/spf13/cobra"
)

// DevicesCmd - родительская команда для работы с устройствами
var DevicesCmd = &cobra.Command{
	Use:     "devices",
	Aliases: []string{"device", "dev"},
	Short:   "Устройства",
	Long:    `Список устройств с фильтрами, карточка, изменение и этикетка.`,
}

func init() {
	DevicesCmd.AddCommand(ListCmd, ShowCmd, SaveCmd, DeleteCmd, LabelCmd)
}
