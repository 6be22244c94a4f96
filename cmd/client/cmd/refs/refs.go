package refs

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"invtrack/cmd/client/cmd/common"
	"invtrack/internal/app/client"
	"invtrack/internal/domain/inventory"
)

// RoomsCmd, CategoriesCmd и EmployeesCmd - справочники, раздел доступен
// только в режиме администратора
var (
	RoomsCmd = &cobra.Command{
		Use:     "rooms",
		Aliases: []string{"room"},
		Short:   "Справочник комнат",
	}
	CategoriesCmd = &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Справочник категорий",
	}
	EmployeesCmd = &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee"},
		Short:   "Справочник сотрудников",
	}
)

// references включает режим администратора, открывает раздел справочников
// и загружает снимок
func references(cmd *cobra.Command) (*client.App, error) {
	app, err := common.App(cmd)
	if err != nil {
		return nil, err
	}
	if err := common.RequireAdmin(cmd, app); err != nil {
		return nil, err
	}
	if err := app.Navigate(client.PageReferences); err != nil {
		return nil, err
	}
	if err := common.EnsureLoaded(cmd, app); err != nil {
		return nil, err
	}
	return app, nil
}

func deleteCmd(what string, del func(app *client.App, cmd *cobra.Command, id int) error) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить: " + what,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := common.ParseID(args[0])
			if err != nil {
				return err
			}
			app, err := references(cmd)
			if err != nil {
				return err
			}
			if err := del(app, cmd, id); err != nil {
				return err
			}
			common.Success("Удалено: %s %d", what, id)
			return nil
		},
	}
}

// ==================== Rooms ====================

var (
	roomID    int
	roomName  string
	roomFloor int
)

var roomsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать комнаты",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := references(cmd)
		if err != nil {
			return err
		}

		rooms := app.Snapshot().Rooms
		if common.JSON(cmd) {
			return common.PrintJSON(common.Out(), rooms)
		}

		tw := tabwriter.NewWriter(common.Out(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tКомната\tЭтаж\tУстройств\t")
		for _, r := range rooms {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t\n", r.ID, r.DisplayName(), floorText(r.Floor), len(r.Devices))
		}
		return tw.Flush()
	},
}

var roomsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Создать или переименовать комнату",
	Long: `Без --id создает комнату, с --id изменяет существующую.
Удаление комнаты удаляет и все ее устройства.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := references(cmd)
		if err != nil {
			return err
		}

		var existing *inventory.Room
		in := inventory.RoomInput{RoomName: roomName, Floor: roomFloor}
		if roomID > 0 {
			r, ok := findRoom(app.Snapshot().Rooms, roomID)
			if !ok {
				return fmt.Errorf("комната %d: %w", roomID, inventory.ErrNotFound)
			}
			existing = &r
			if !cmd.Flags().Changed("name") {
				in.RoomName = r.DisplayName()
			}
			if !cmd.Flags().Changed("floor") {
				in.Floor = r.Floor
			}
		}

		ctx, cancel := common.Timeout(cmd)
		defer cancel()

		if err := app.SaveRoom(ctx, in, existing); err != nil {
			return err
		}
		common.Success("Комната сохранена")
		return nil
	},
}

func findRoom(rooms []inventory.Room, id int) (inventory.Room, bool) {
	for _, r := range rooms {
		if r.ID == id {
			return r, true
		}
	}
	return inventory.Room{}, false
}

func floorText(floor int) string {
	if floor == 0 {
		return "-"
	}
	return strconv.Itoa(floor)
}

// ==================== Categories ====================

var (
	categoryID   int
	categoryName string
)

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать категории",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := references(cmd)
		if err != nil {
			return err
		}

		categories := app.Snapshot().Categories
		if common.JSON(cmd) {
			return common.PrintJSON(common.Out(), categories)
		}

		tw := tabwriter.NewWriter(common.Out(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tКатегория\t")
		for _, c := range categories {
			fmt.Fprintf(tw, "%d\t%s\t\n", c.ID, c.Name)
		}
		return tw.Flush()
	},
}

var categoriesSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Создать или переименовать категорию",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := references(cmd)
		if err != nil {
			return err
		}

		var existing *inventory.Category
		if categoryID > 0 {
			for _, c := range app.Snapshot().Categories {
				if c.ID == categoryID {
					existing = &c
					break
				}
			}
			if existing == nil {
				return fmt.Errorf("категория %d: %w", categoryID, inventory.ErrNotFound)
			}
		}

		ctx, cancel := common.Timeout(cmd)
		defer cancel()

		if err := app.SaveCategory(ctx, inventory.CategoryInput{Name: categoryName}, existing); err != nil {
			return err
		}
		common.Success("Категория сохранена")
		return nil
	},
}

// ==================== Employees ====================

var (
	employeeID       int
	employeeName     string
	employeePosition string
	employeeSearch   string
)

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать сотрудников",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := references(cmd)
		if err != nil {
			return err
		}

		employees := app.Employees(employeeSearch)
		if common.JSON(cmd) {
			return common.PrintJSON(common.Out(), employees)
		}

		snap := app.Snapshot()
		tw := tabwriter.NewWriter(common.Out(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tФИО\tДолжность\tУстройств\t")
		for _, e := range employees {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t\n", e.ID, e.FullName, e.Position, len(snap.DevicesOf(e.ID)))
		}
		return tw.Flush()
	},
}

var employeesSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Создать или изменить сотрудника",
	Long: `Без --id создает сотрудника, с --id изменяет существующего.
При удалении сотрудника его устройства открепляются.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := references(cmd)
		if err != nil {
			return err
		}

		var existing *inventory.Employee
		in := inventory.EmployeeInput{FullName: employeeName, Position: employeePosition}
		if employeeID > 0 {
			for _, e := range app.Snapshot().Employees {
				if e.ID == employeeID {
					existing = &e
					break
				}
			}
			if existing == nil {
				return fmt.Errorf("сотрудник %d: %w", employeeID, inventory.ErrNotFound)
			}
			if !cmd.Flags().Changed("name") {
				in.FullName = existing.FullName
			}
			if !cmd.Flags().Changed("position") {
				in.Position = existing.Position
			}
		}

		ctx, cancel := common.Timeout(cmd)
		defer cancel()

		if err := app.SaveEmployee(ctx, in, existing); err != nil {
			return err
		}
		common.Success("Сотрудник сохранен")
		return nil
	},
}

func init() {
	roomsSaveCmd.Flags().IntVar(&roomID, "id", 0, "ID изменяемой комнаты")
	roomsSaveCmd.Flags().StringVar(&roomName, "name", "", "название комнаты")
	roomsSaveCmd.Flags().IntVar(&roomFloor, "floor", 0, "этаж")
	RoomsCmd.AddCommand(roomsListCmd, roomsSaveCmd, deleteCmd("комната", func(app *client.App, cmd *cobra.Command, id int) error {
		ctx, cancel := common.Timeout(cmd)
		defer cancel()
		return app.DeleteRoom(ctx, id)
	}))

	categoriesSaveCmd.Flags().IntVar(&categoryID, "id", 0, "ID изменяемой категории")
	categoriesSaveCmd.Flags().StringVar(&categoryName, "name", "", "название категории")
	CategoriesCmd.AddCommand(categoriesListCmd, categoriesSaveCmd, deleteCmd("категория", func(app *client.App, cmd *cobra.Command, id int) error {
		ctx, cancel := common.Timeout(cmd)
		defer cancel()
		return app.DeleteCategory(ctx, id)
	}))

	employeesListCmd.Flags().StringVarP(&employeeSearch, "search", "s", "", "поиск по ФИО")
	employeesSaveCmd.Flags().IntVar(&employeeID, "id", 0, "ID изменяемого сотрудника")
	employeesSaveCmd.Flags().StringVar(&employeeName, "name", "", "ФИО")
	employeesSaveCmd.Flags().StringVar(&employeePosition, "position", "", "должность")
	EmployeesCmd.AddCommand(employeesListCmd, employeesSaveCmd, deleteCmd("сотрудник", func(app *client.App, cmd *cobra.Command, id int) error {
		ctx, cancel := common.Timeout(cmd)
		defer cancel()
		return app.DeleteEmployee(ctx, id)
	}))
}
