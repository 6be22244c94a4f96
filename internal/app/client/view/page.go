package view

import (
	"fmt"

	"invtrack/internal/domain/inventory"
)

// Page - видимая страница отфильтрованного списка. Start и End - границы
// среза [Start, End), 0 <= Start <= End <= Total.
type Page struct {
	Items  []inventory.Device
	Total  int
	Start  int
	End    int
	Cursor Cursor
}

// Paginate вырезает страницу по курсору. Курсор предварительно ограничивается.
func Paginate(devices []inventory.Device, c Cursor) Page {
	c = c.Clamp()
	total := len(devices)

	start := clampIndex(int64(c.Page-1)*int64(c.PageSize), total)
	end := clampIndex(int64(start)+int64(c.PageSize), total)

	return Page{
		Items:  devices[start:end],
		Total:  total,
		Start:  start,
		End:    end,
		Cursor: c,
	}
}

// Apply выполняет оба шага: фильтрацию и пагинацию
func Apply(devices []inventory.Device, f Filter, c Cursor) Page {
	return Paginate(FilterDevices(devices, f), c)
}

// Range возвращает отображаемый диапазон "с X по Y". Для пустого списка 0 и 0.
func (p Page) Range() (from, to int) {
	if p.Total == 0 || p.Start == p.End {
		return 0, 0
	}
	return p.Start + 1, p.End
}

// RangeText форматирует диапазон как "X–Y of Z"
func (p Page) RangeText() string {
	from, to := p.Range()
	return fmt.Sprintf("%d–%d of %d", from, to, p.Total)
}

// Pages возвращает число страниц, минимум одну
func (p Page) Pages() int {
	size := p.Cursor.Clamp().PageSize
	if p.Total == 0 {
		return 1
	}
	return (p.Total + size - 1) / size
}

func clampIndex(v int64, total int) int {
	if v < 0 {
		return 0
	}
	if v > int64(total) {
		return total
	}
	return int(v)
}
