package view

import (
	"strconv"
	"strings"

	"invtrack/internal/domain/inventory"
)

// Filter - условия отбора устройств. Пустое значение поля означает
// отсутствие ограничения.
type Filter struct {
	Search   string
	RoomID   *int
	Category string
	Status   inventory.Status
}

// IsZero сообщает, что ни одно условие не задано
func (f Filter) IsZero() bool {
	return f.Search == "" && f.RoomID == nil && f.Category == "" && f.Status == ""
}

// Match проверяет устройство по всем условиям сразу
func (f Filter) Match(d inventory.Device) bool {
	if f.Search != "" && !matchSearch(d, strings.ToLower(f.Search)) {
		return false
	}
	if f.RoomID != nil && d.RoomID != *f.RoomID {
		return false
	}
	if f.Category != "" && d.Category != f.Category {
		return false
	}
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	return true
}

func matchSearch(d inventory.Device, needle string) bool {
	fields := [...]string{
		strconv.Itoa(d.ID),
		d.Name,
		d.Price,
		d.InventoryNumber,
		d.OwnerName,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// FilterDevices возвращает подходящие устройства в исходном порядке
func FilterDevices(devices []inventory.Device, f Filter) []inventory.Device {
	out := make([]inventory.Device, 0, len(devices))
	for _, d := range devices {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

// FilterEmployees ищет сотрудников по подстроке ФИО без учета регистра
func FilterEmployees(employees []inventory.Employee, search string) []inventory.Employee {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]inventory.Employee, 0, len(employees))
	for _, e := range employees {
		if needle == "" || strings.Contains(strings.ToLower(e.FullName), needle) {
			out = append(out, e)
		}
	}
	return out
}
