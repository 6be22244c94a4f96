package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"invtrack/internal/domain/inventory"
)

const (
	sheetName = "Inventory"
	XLSXType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type column int

const (
	colID column = iota
	colInv
	colName
	colCategory
	colPrice
	colStatus
	colRoom
	colOwner
	colDetails
	columnCount
)

var headers = map[string][columnCount]string{
	inventory.LangRU: {"ID", "Инв. номер", "Название", "Категория", "Прайс", "Статус", "Комната", "Владелец", "Детали"},
	inventory.LangUZ: {"ID", "Inv. raqam", "Nomi", "Toifa", "Narxi", "Holati", "Xona", "Egasining ismi", "Tafsilotlar"},
}

// importAliases - заголовки, которые понимает импорт, кроме локализованных
var importAliases = map[column][]string{
	colInv:      {"Inv", "Inventory number"},
	colName:     {"Name"},
	colCategory: {"Category", "Type"},
	colPrice:    {"Price"},
	colStatus:   {"Status"},
	colRoom:     {"Room"},
	colDetails:  {"Details"},
}

var columnWidths = [columnCount]float64{6, 16, 30, 16, 10, 16, 16, 24, 40}

// NormalizeLang сводит язык к ru или uz
func NormalizeLang(lang string) string {
	if lang == inventory.LangUZ {
		return inventory.LangUZ
	}
	return inventory.LangRU
}

// ExcelFileName возвращает inventory_<lang>_<yyyymmdd_hhmm>.xlsx
func ExcelFileName(lang string, now time.Time) string {
	return fmt.Sprintf("inventory_%s_%s.xlsx", lang, now.Format("20060102_1504"))
}

// BuildInventoryXLSX пишет устройства в таблицу с заголовками и статусами на
// языке lang. Пустые комната и владелец выводятся как "-".
func BuildInventoryXLSX(devices []inventory.Device, lang string) ([]byte, error) {
	lang = NormalizeLang(lang)
	h := headers[lang]

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, columnCount)
	for i, title := range h {
		header[i] = title
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE6F1"}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	lastCol, _ := excelize.CoordinatesToCellName(int(columnCount), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastCol, bold)

	for i, w := range columnWidths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, name, name, w)
	}
	_ = f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	for i, d := range devices {
		row := []any{
			d.ID,
			d.InventoryNumber,
			d.Name,
			d.Category,
			d.Price,
			d.Status.Label(lang),
			orDash(d.RoomName),
			orDash(d.OwnerName),
			d.Details,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseInventoryXLSX читает первый лист. Колонки ищутся по заголовкам на
// русском, узбекском или английском, порядок колонок не важен. Пустые строки
// пропускаются.
func ParseInventoryXLSX(r io.Reader) ([]inventory.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", inventory.ErrInvalidInput)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return []inventory.ImportRow{}, nil
	}

	index := headerIndex(rows[0])
	out := make([]inventory.ImportRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		get := func(c column) string {
			i, ok := index[c]
			if !ok || i >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[i])
		}

		row := inventory.ImportRow{
			InventoryNumber: get(colInv),
			Name:            get(colName),
			Category:        get(colCategory),
			Price:           get(colPrice),
			RoomName:        get(colRoom),
			Details:         get(colDetails),
		}
		if raw := get(colStatus); raw != "" {
			if st, err := inventory.ParseStatus(raw); err == nil {
				row.Status = st
			} else {
				row.Status = inventory.Status(raw)
			}
		}

		if row == (inventory.ImportRow{}) {
			continue
		}
		out = append(out, row)
	}

	return out, nil
}

func headerIndex(header []string) map[column]int {
	lookup := make(map[string]column)
	for _, h := range headers {
		for c, title := range h {
			lookup[strings.ToLower(title)] = column(c)
		}
	}
	for c, aliases := range importAliases {
		for _, a := range aliases {
			lookup[strings.ToLower(a)] = c
		}
	}

	index := make(map[column]int)
	for i, title := range header {
		c, ok := lookup[strings.ToLower(strings.TrimSpace(title))]
		if !ok {
			continue
		}
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}
	return index
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// ImportMessage - ответ импорта
func ImportMessage(count int) string {
	return "Imported " + strconv.Itoa(count) + " items"
}
