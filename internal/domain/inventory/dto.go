package inventory

import "strings"

// DeviceInput - поля устройства для создания и обновления
type DeviceInput struct {
	Name            string `json:"name"`
	Category        string `json:"type"`
	RoomID          int    `json:"room_id"`
	Price           string `json:"price"`
	Status          Status `json:"status,omitempty"`
	InventoryNumber string `json:"inventory_number"`
	Details         string `json:"details"`
	EmployeeID      *int   `json:"employee_id"`
}

// FromDevice строит форму редактирования из существующего устройства
func FromDevice(d Device) DeviceInput {
	return DeviceInput{
		Name:            d.Name,
		Category:        d.Category,
		RoomID:          d.RoomID,
		Price:           d.Price,
		Status:          d.Status,
		InventoryNumber: d.InventoryNumber,
		Details:         d.Details,
		EmployeeID:      d.EmployeeID,
	}
}

// Normalize убирает пробелы по краям и подставляет статус по умолчанию
func (in DeviceInput) Normalize() DeviceInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.InventoryNumber = strings.TrimSpace(in.InventoryNumber)
	if in.Status == "" {
		in.Status = StatusWorking
	}
	return in
}

type RoomInput struct {
	RoomName string `json:"room_name"`
	Floor    int    `json:"floor,omitempty"`
}

type CategoryInput struct {
	Name string `json:"name"`
}

type EmployeeInput struct {
	FullName string `json:"full_name"`
	Position string `json:"position"`
}

// ImportRow - строка таблицы Excel, уже приведенная к внутренним кодам
type ImportRow struct {
	InventoryNumber string
	Name            string
	Category        string
	Price           string
	Status          Status
	RoomName        string
	Details         string
}
