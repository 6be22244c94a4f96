package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invtrack/internal/domain/inventory"
)

func seeded(t *testing.T) (*InventoryRepository, inventory.Room, inventory.Employee) {
	t.Helper()
	ctx := context.Background()

	repo := NewInventoryRepository()
	room, err := repo.CreateRoom(ctx, inventory.RoomInput{RoomName: "101", Floor: 1})
	require.NoError(t, err)
	emp, err := repo.CreateEmployee(ctx, inventory.EmployeeInput{FullName: "Иванов И.И.", Position: "Инженер"})
	require.NoError(t, err)

	return repo, room, emp
}

func TestInventoryRepository_Rooms(t *testing.T) {
	ctx := context.Background()
	repo, room, _ := seeded(t)

	assert.Equal(t, "101", room.Name)
	assert.Equal(t, "101", room.RoomName)

	_, err := repo.CreateRoom(ctx, inventory.RoomInput{RoomName: "101"})
	assert.ErrorIs(t, err, inventory.ErrInvalidInput)

	updated, err := repo.UpdateRoom(ctx, room.ID, inventory.RoomInput{RoomName: "101a", Floor: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Floor)

	found, err := repo.FindRoomByName(ctx, "101a")
	require.NoError(t, err)
	assert.Equal(t, room.ID, found.ID)

	_, err = repo.UpdateRoom(ctx, 999, inventory.RoomInput{RoomName: "x"})
	assert.ErrorIs(t, err, inventory.ErrNotFound)
}

func TestInventoryRepository_DeleteRoomCascades(t *testing.T) {
	ctx := context.Background()
	repo, room, _ := seeded(t)
	other, err := repo.CreateRoom(ctx, inventory.RoomInput{RoomName: "202"})
	require.NoError(t, err)

	_, err = repo.CreateDevice(ctx, inventory.DeviceInput{Name: "a", RoomID: room.ID, Status: inventory.StatusWorking})
	require.NoError(t, err)
	kept, err := repo.CreateDevice(ctx, inventory.DeviceInput{Name: "b", RoomID: other.ID, Status: inventory.StatusWorking})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRoom(ctx, room.ID))

	devices, err := repo.ListDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, kept.ID, devices[0].ID)

	assert.ErrorIs(t, repo.DeleteRoom(ctx, room.ID), inventory.ErrNotFound)
}

func TestInventoryRepository_DeleteEmployeeDetaches(t *testing.T) {
	ctx := context.Background()
	repo, room, emp := seeded(t)

	d, err := repo.CreateDevice(ctx, inventory.DeviceInput{Name: "a", RoomID: room.ID, EmployeeID: &emp.ID, Status: inventory.StatusWorking})
	require.NoError(t, err)
	require.NotNil(t, d.EmployeeID)

	require.NoError(t, repo.DeleteEmployee(ctx, emp.ID))

	devices, err := repo.ListDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Nil(t, devices[0].EmployeeID)
}

func TestInventoryRepository_DeviceRefs(t *testing.T) {
	ctx := context.Background()
	repo, room, _ := seeded(t)
	missing := 404

	tests := []struct {
		name string
		in   inventory.DeviceInput
	}{
		{name: "unknown room", in: inventory.DeviceInput{Name: "a", RoomID: 999}},
		{name: "unknown employee", in: inventory.DeviceInput{Name: "a", RoomID: room.ID, EmployeeID: &missing}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.CreateDevice(ctx, tt.in)
			assert.ErrorIs(t, err, inventory.ErrInvalidInput)
		})
	}
}

func TestInventoryRepository_Devices(t *testing.T) {
	ctx := context.Background()
	repo, room, _ := seeded(t)

	first, err := repo.CreateDevice(ctx, inventory.DeviceInput{Name: "a", RoomID: room.ID, InventoryNumber: "INV-1", Status: inventory.StatusWorking})
	require.NoError(t, err)
	second, err := repo.CreateDevice(ctx, inventory.DeviceInput{Name: "b", RoomID: room.ID, InventoryNumber: "INV-2", Status: inventory.StatusBroken})
	require.NoError(t, err)

	got, err := repo.DevicesByIDs(ctx, []int{second.ID, 999, first.ID, second.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)

	found, err := repo.FindDeviceByInventory(ctx, "INV-2")
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)

	_, err = repo.FindDeviceByInventory(ctx, "INV-9")
	assert.ErrorIs(t, err, inventory.ErrNotFound)

	updated, err := repo.UpdateDevice(ctx, first.ID, inventory.DeviceInput{Name: "a2", RoomID: room.ID, Status: inventory.StatusRepair})
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusRepair, updated.Status)

	require.NoError(t, repo.DeleteDevice(ctx, first.ID))
	assert.ErrorIs(t, repo.DeleteDevice(ctx, first.ID), inventory.ErrNotFound)
}

func TestInventoryRepository_Categories(t *testing.T) {
	ctx := context.Background()
	repo := NewInventoryRepository()

	c, err := repo.CreateCategory(ctx, inventory.CategoryInput{Name: "Laptop"})
	require.NoError(t, err)

	_, err = repo.CreateCategory(ctx, inventory.CategoryInput{Name: "Laptop"})
	assert.ErrorIs(t, err, inventory.ErrInvalidInput)

	found, err := repo.FindCategoryByName(ctx, "Laptop")
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)

	_, err = repo.UpdateCategory(ctx, c.ID, inventory.CategoryInput{Name: "Notebook"})
	require.NoError(t, err)

	list, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []inventory.Category{{ID: c.ID, Name: "Notebook"}}, list)

	require.NoError(t, repo.DeleteCategory(ctx, c.ID))
	assert.ErrorIs(t, repo.DeleteCategory(ctx, c.ID), inventory.ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	id, err := repo.Save(ctx, "admin", "hash1", "admin")
	require.NoError(t, err)

	again, err := repo.Save(ctx, "admin", "hash2", "admin")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	u, err := repo.FindByLogin(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "hash2", u.Password)

	_, err = repo.FindByLogin(ctx, "ghost")
	assert.Error(t, err)
}
