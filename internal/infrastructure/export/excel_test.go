package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"invtrack/internal/domain/inventory"
)

func testDevices() []inventory.Device {
	owner := 7
	return []inventory.Device{
		{
			ID: 1, Name: "Laptop", Category: "PC", InventoryNumber: "INV-001", Price: "1200",
			Status: inventory.StatusWorking, EmployeeID: &owner, OwnerName: "Иванов И.И.",
			RoomID: 1, RoomName: "101", Details: "16GB",
		},
		{ID: 2, Name: "Printer", Category: "Office", Price: "300", Status: inventory.StatusBroken},
	}
}

func TestBuildInventoryXLSX(t *testing.T) {
	tests := []struct {
		name       string
		lang       string
		wantHeader []string
		wantStatus string
	}{
		{
			name:       "russian",
			lang:       "ru",
			wantHeader: []string{"ID", "Инв. номер", "Название", "Категория", "Прайс", "Статус", "Комната", "Владелец", "Детали"},
			wantStatus: "В работе",
		},
		{
			name:       "uzbek",
			lang:       "uz",
			wantHeader: []string{"ID", "Inv. raqam", "Nomi", "Toifa", "Narxi", "Holati", "Xona", "Egasining ismi", "Tafsilotlar"},
			wantStatus: "Ishlayapti",
		},
		{
			name:       "unknown language falls back to russian",
			lang:       "en",
			wantHeader: []string{"ID", "Инв. номер", "Название", "Категория", "Прайс", "Статус", "Комната", "Владелец", "Детали"},
			wantStatus: "В работе",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := BuildInventoryXLSX(testDevices(), tt.lang)
			require.NoError(t, err)

			f, err := excelize.OpenReader(bytes.NewReader(data))
			require.NoError(t, err)
			defer f.Close()

			rows, err := f.GetRows(sheetName)
			require.NoError(t, err)
			require.Len(t, rows, 3)

			assert.Equal(t, tt.wantHeader, rows[0])
			assert.Equal(t, []string{"1", "INV-001", "Laptop", "PC", "1200", tt.wantStatus, "101", "Иванов И.И.", "16GB"}, rows[1])
			// пустые комната и владелец
			assert.Equal(t, "-", rows[2][6])
			assert.Equal(t, "-", rows[2][7])
		})
	}
}

func TestParseInventoryXLSX_RoundTrip(t *testing.T) {
	data, err := BuildInventoryXLSX(testDevices(), "uz")
	require.NoError(t, err)

	rows, err := ParseInventoryXLSX(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, inventory.ImportRow{
		InventoryNumber: "INV-001",
		Name:            "Laptop",
		Category:        "PC",
		Price:           "1200",
		Status:          inventory.StatusWorking,
		RoomName:        "101",
		Details:         "16GB",
	}, rows[0])
	assert.Equal(t, inventory.StatusBroken, rows[1].Status)
	assert.Equal(t, "-", rows[1].RoomName)
}

func TestParseInventoryXLSX_EnglishHeaders(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Room", "Name", "Inv", "Status", "Unused"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"202", "Router", "INV-9", "repair", "x"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"", "Switch", "", "unknown"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, err := ParseInventoryXLSX(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, inventory.ImportRow{
		InventoryNumber: "INV-9",
		Name:            "Router",
		Status:          inventory.StatusRepair,
		RoomName:        "202",
	}, rows[0])
	assert.Equal(t, "Switch", rows[1].Name)
	assert.Equal(t, inventory.Status("unknown"), rows[1].Status)
}

func TestParseInventoryXLSX_NotAWorkbook(t *testing.T) {
	_, err := ParseInventoryXLSX(bytes.NewReader([]byte("not a zip")))
	assert.Error(t, err)
}

func TestExcelFileName(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "inventory_uz_20240309_1405.xlsx", ExcelFileName("uz", now))
}

func TestImportMessage(t *testing.T) {
	assert.Equal(t, "Imported 3 items", ImportMessage(3))
}
