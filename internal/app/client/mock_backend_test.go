package client

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"invtrack/internal/domain/inventory"
)

const (
	timeoutShort = 2 * time.Second
	tick         = 10 * time.Millisecond
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Report(ctx context.Context) (inventory.Report, error) {
	args := m.Called(ctx)
	return args.Get(0).(inventory.Report), args.Error(1)
}

func (m *MockBackend) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) Create(ctx context.Context, kind Kind, body any) error {
	args := m.Called(ctx, kind, body)
	return args.Error(0)
}

func (m *MockBackend) Update(ctx context.Context, kind Kind, id int, body any) error {
	args := m.Called(ctx, kind, id, body)
	return args.Error(0)
}

func (m *MockBackend) Delete(ctx context.Context, kind Kind, id int) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockBackend) ImportExcel(ctx context.Context, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, filename, r)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) ExportExcel(ctx context.Context, lang string) (File, error) {
	args := m.Called(ctx, lang)
	return args.Get(0).(File), args.Error(1)
}

func (m *MockBackend) ExportQRPDF(ctx context.Context, ids []int) (File, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(File), args.Error(1)
}

func (m *MockBackend) Backup(ctx context.Context) (File, error) {
	args := m.Called(ctx)
	return args.Get(0).(File), args.Error(1)
}

func (m *MockBackend) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int {
	return &v
}

// testReport - две комнаты, четыре устройства, один сотрудник
func testReport() inventory.Report {
	return inventory.Report{
		Rooms: []inventory.Room{
			{
				ID: 1, Name: "101", RoomName: "101", Floor: 1,
				Devices: []inventory.Device{
					{ID: 1, Name: "Dell Latitude", Category: "Laptop", InventoryNumber: "INV-001", Price: "1200", Status: inventory.StatusWorking, RoomID: 1, EmployeeID: intPtr(7), OwnerName: "Иванов И.И."},
					{ID: 2, Name: "HP LaserJet", Category: "Printer", InventoryNumber: "INV-002", Price: "300", Status: inventory.StatusBroken, RoomID: 1},
				},
			},
			{
				ID: 2, Name: "202", RoomName: "202", Floor: 2,
				Devices: []inventory.Device{
					{ID: 3, Name: "Cisco Switch", Category: "Network", InventoryNumber: "INV-003", Price: "900", Status: inventory.StatusInStock, RoomID: 2},
					{ID: 4, Name: "Lenovo ThinkPad", Category: "Laptop", InventoryNumber: "", Price: "1100", Status: inventory.StatusRepair, RoomID: 2},
				},
			},
		},
		Employees: []inventory.Employee{
			{ID: 7, FullName: "Иванов И.И.", Position: "Инженер", DevicesList: []string{"Dell Latitude (#INV-001)"}},
		},
		Categories: []inventory.Category{{ID: 1, Name: "Laptop"}, {ID: 2, Name: "Printer"}, {ID: 3, Name: "Network"}},
	}
}
