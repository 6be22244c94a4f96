package devices

import (
	"fmt"

	"github.com/spf13/cobra"

	"invtrack/cmd/client/cmd/common"
	"invtrack/internal/domain/inventory"
)

var (
	saveID    int
	saveInput inventory.DeviceInput
	saveState string
	saveOwner int
)

var SaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Создать или изменить устройство",
	Long: `Без --id создает новое устройство, с --id изменяет существующее.
При изменении незаданные флаги сохраняют текущие значения. --owner 0
открепляет устройство от сотрудника. Требуется режим администратора.`,
	Example: `  invtrack devices save --name "Ноутбук" --room 1 --inv INV-001
  invtrack devices save --id 5 --status repair --secret admin123`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		if err := common.RequireAdmin(cmd, app); err != nil {
			return err
		}
		if err := common.EnsureLoaded(cmd, app); err != nil {
			return err
		}

		var existing *inventory.Device
		in := inventory.DeviceInput{}
		if saveID > 0 {
			d, ok := app.Device(saveID)
			if !ok {
				return fmt.Errorf("устройство %d: %w", saveID, inventory.ErrNotFound)
			}
			existing = &d
			in = inventory.FromDevice(d)
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			in.Name = saveInput.Name
		}
		if flags.Changed("category") {
			in.Category = saveInput.Category
		}
		if flags.Changed("room") {
			in.RoomID = saveInput.RoomID
		}
		if flags.Changed("price") {
			in.Price = saveInput.Price
		}
		if flags.Changed("inv") {
			in.InventoryNumber = saveInput.InventoryNumber
		}
		if flags.Changed("details") {
			in.Details = saveInput.Details
		}
		if flags.Changed("status") {
			st, err := inventory.ParseStatus(saveState)
			if err != nil {
				return fmt.Errorf("неизвестный статус: %q", saveState)
			}
			in.Status = st
		}
		if flags.Changed("owner") {
			if saveOwner > 0 {
				owner := saveOwner
				in.EmployeeID = &owner
			} else {
				in.EmployeeID = nil
			}
		}

		ctx, cancel := common.Timeout(cmd)
		defer cancel()

		if err := app.SaveDevice(ctx, in, existing); err != nil {
			return err
		}

		if existing != nil {
			common.Success("Устройство %d обновлено", existing.ID)
		} else {
			common.Success("Устройство создано")
		}
		return nil
	},
}

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить устройство",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		id, err := common.ParseID(args[0])
		if err != nil {
			return err
		}
		if err := common.RequireAdmin(cmd, app); err != nil {
			return err
		}

		ctx, cancel := common.Timeout(cmd)
		defer cancel()

		if err := app.DeleteDevice(ctx, id); err != nil {
			return err
		}
		common.Success("Устройство %d удалено", id)
		return nil
	},
}

func init() {
	f := SaveCmd.Flags()
	f.IntVar(&saveID, "id", 0, "ID изменяемого устройства")
	f.StringVar(&saveInput.Name, "name", "", "название")
	f.StringVar(&saveInput.Category, "category", "", "категория")
	f.IntVar(&saveInput.RoomID, "room", 0, "ID комнаты")
	f.StringVar(&saveInput.Price, "price", "", "цена")
	f.StringVar(&saveInput.InventoryNumber, "inv", "", "инвентарный номер")
	f.StringVar(&saveInput.Details, "details", "", "детали")
	f.StringVar(&saveState, "status", "", "статус")
	f.IntVar(&saveOwner, "owner", 0, "ID сотрудника, 0 - открепить")
}
