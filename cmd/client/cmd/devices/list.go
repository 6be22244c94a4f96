package devices

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"invtrack/cmd/client/cmd/common"
	"invtrack/internal/app/client"
	"invtrack/internal/app/client/view"
	"invtrack/internal/domain/inventory"
)

var (
	search   string
	roomID   int
	category string
	status   string
	page     string
	pageSize string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать устройства",
	Long: `Показывает страницу устройств. Поиск идет по названию, инвентарному
номеру и владельцу. Фильтры складываются.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		if err := app.Navigate(client.PageDashboard); err != nil {
			return err
		}
		if err := common.EnsureLoaded(cmd, app); err != nil {
			return err
		}

		if cmd.Flags().Changed("search") {
			app.SetSearch(search)
		}
		if cmd.Flags().Changed("room") {
			if roomID > 0 {
				id := roomID
				app.SetRoomFilter(&id)
			} else {
				app.SetRoomFilter(nil)
			}
		}
		if cmd.Flags().Changed("category") {
			app.SetCategoryFilter(category)
		}
		if cmd.Flags().Changed("status") {
			st, err := parseStatusFilter(status)
			if err != nil {
				return err
			}
			app.SetStatusFilter(st)
		}
		if cmd.Flags().Changed("page") || cmd.Flags().Changed("page-size") {
			cur := app.View().Page.Cursor
			p, size := strconv.Itoa(cur.Page), strconv.Itoa(cur.PageSize)
			if cmd.Flags().Changed("page") {
				p = page
			}
			if cmd.Flags().Changed("page-size") {
				size = pageSize
			}
			// нечисловые и меньше 1 значения заменяются на 1 и 10
			app.SetCursor(view.ParseCursor(p, size))
		}

		p := app.View()
		if p.LoginRequired {
			return client.ErrNotAuthenticated
		}
		if common.JSON(cmd) {
			return common.PrintJSON(common.Out(), p.Page.Items)
		}

		// отметки выбора видны только администратору, он печатает этикетки
		var selected map[int]bool
		if p.AdminControls {
			selected = make(map[int]bool, len(p.Selected))
			for _, id := range p.Selected {
				selected[id] = true
			}
		}

		common.PrintStats(common.Out(), p.Stats)
		if !p.Filter.IsZero() {
			common.PrintFilter(common.Out(), p.Filter, common.Config(cmd).Lang)
		}
		fmt.Fprintln(common.Out())
		common.PrintPage(common.Out(), p.Page, common.Config(cmd).Lang, selected)
		return nil
	},
}

// parseStatusFilter принимает код статуса или подпись, "all" снимает фильтр
func parseStatusFilter(s string) (inventory.Status, error) {
	if s == "" || s == "all" {
		return "", nil
	}
	st, err := inventory.ParseStatus(s)
	if err != nil {
		return "", fmt.Errorf("неизвестный статус: %q", s)
	}
	return st, nil
}

func init() {
	ListCmd.Flags().StringVarP(&search, "search", "s", "", "поиск по названию, номеру и владельцу")
	ListCmd.Flags().IntVar(&roomID, "room", 0, "ID комнаты, 0 - все")
	ListCmd.Flags().StringVar(&category, "category", "", "категория")
	ListCmd.Flags().StringVar(&status, "status", "", "статус: working, in_stock, repair, broken, decommissioned")
	ListCmd.Flags().StringVarP(&page, "page", "p", "1", "номер страницы")
	ListCmd.Flags().StringVar(&pageSize, "page-size", "10", "размер страницы: 10, 20 или 50")
}
