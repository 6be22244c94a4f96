package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invtrack/internal/domain/inventory"
)

func TestBuildBackupJSON(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	report := inventory.Report{
		Rooms:      []inventory.Room{{ID: 1, RoomName: "101", DevicesCount: 2, Devices: testDevices()}},
		Employees:  []inventory.Employee{{ID: 7, FullName: "Иванов И.И."}},
		Categories: []inventory.Category{{ID: 1, Name: "PC"}},
	}

	data, err := BuildBackupJSON(report, now)
	require.NoError(t, err)

	var got Backup
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, now.Equal(got.CreatedAt))
	require.Len(t, got.Report.Rooms, 1)
	assert.Len(t, got.Report.Rooms[0].Devices, 2)
	assert.Equal(t, "INV-001", got.Report.Rooms[0].Devices[0].InventoryNumber)
	assert.Equal(t, "Иванов И.И.", got.Report.Employees[0].FullName)
}

func TestBackupFileName(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	assert.Equal(t, "backup_20240309_140507.json", BackupFileName(now))
}
