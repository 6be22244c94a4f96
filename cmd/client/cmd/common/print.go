package common

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"invtrack/internal/app/client/view"
	"invtrack/internal/domain/inventory"
)

// JSON сообщает, запрошен ли вывод в формате JSON
func JSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func StatusText(s inventory.Status, lang string) string {
	label := s.Label(lang)
	switch s {
	case inventory.StatusWorking:
		return color.GreenString(label)
	case inventory.StatusBroken:
		return color.RedString(label)
	case inventory.StatusRepair:
		return color.YellowString(label)
	case inventory.StatusDecommissioned:
		return color.HiBlackString(label)
	default:
		return color.CyanString(label)
	}
}

// PrintPage выводит страницу устройств таблицей
func PrintPage(w io.Writer, page view.Page, lang string, selected map[int]bool) {
	if page.Total == 0 {
		fmt.Fprintln(w, "Устройства не найдены")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, " \tID\tИнв. номер\tНазвание\tКатегория\tКомната\tВладелец\tСтатус\t\n")
	for _, d := range page.Items {
		mark := " "
		if selected[d.ID] {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			mark, d.ID, dash(d.InventoryNumber), d.Name, dash(d.Category),
			dash(d.RoomName), dash(d.OwnerName), StatusText(d.Status, lang))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%s, страница %d из %d\n", page.RangeText(), page.Cursor.Page, page.Pages())
}

// PrintCard выводит карточку одного устройства
func PrintCard(w io.Writer, d inventory.Device, lang string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"ID", strconv.Itoa(d.ID)},
		{"Инв. номер", dash(d.InventoryNumber)},
		{"Название", d.Name},
		{"Категория", dash(d.Category)},
		{"Цена", dash(d.Price)},
		{"Статус", StatusText(d.Status, lang)},
		{"Комната", dash(d.RoomName)},
		{"Владелец", dash(d.OwnerName)},
		{"Детали", dash(d.Details)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	tw.Flush()
}

// PrintFilter выводит заданные условия отбора одной строкой
func PrintFilter(w io.Writer, f view.Filter, lang string) {
	var parts []string
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("поиск %q", f.Search))
	}
	if f.RoomID != nil {
		parts = append(parts, fmt.Sprintf("комната %d", *f.RoomID))
	}
	if f.Category != "" {
		parts = append(parts, "категория "+f.Category)
	}
	if f.Status != "" {
		parts = append(parts, "статус "+f.Status.Label(lang))
	}
	fmt.Fprintf(w, "Фильтры: %s\n", strings.Join(parts, ", "))
}

func PrintStats(w io.Writer, s view.Stats) {
	fmt.Fprintf(w, "Всего: %d  Закреплено: %d  Сломано: %d  Комнат: %d\n",
		s.Total, s.Assigned, s.Broken, s.Rooms)
}

func Out() io.Writer {
	return color.Output
}

func Success(format string, args ...any) {
	fmt.Fprintln(os.Stdout, color.GreenString("✓ "+format, args...))
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
