package inventory

import "context"

// Repository - хранилище справочников и устройств. Списки возвращаются
// упорядоченными по id. Not found сообщается через ErrNotFound.
type Repository interface {
	ListRooms(ctx context.Context) ([]Room, error)
	FindRoomByName(ctx context.Context, name string) (Room, error)
	CreateRoom(ctx context.Context, in RoomInput) (Room, error)
	UpdateRoom(ctx context.Context, id int, in RoomInput) (Room, error)
	// DeleteRoom удаляет комнату вместе с ее устройствами
	DeleteRoom(ctx context.Context, id int) error

	ListCategories(ctx context.Context) ([]Category, error)
	FindCategoryByName(ctx context.Context, name string) (Category, error)
	CreateCategory(ctx context.Context, in CategoryInput) (Category, error)
	UpdateCategory(ctx context.Context, id int, in CategoryInput) (Category, error)
	DeleteCategory(ctx context.Context, id int) error

	ListEmployees(ctx context.Context) ([]Employee, error)
	CreateEmployee(ctx context.Context, in EmployeeInput) (Employee, error)
	UpdateEmployee(ctx context.Context, id int, in EmployeeInput) (Employee, error)
	// DeleteEmployee удаляет сотрудника и открепляет его устройства
	DeleteEmployee(ctx context.Context, id int) error

	ListDevices(ctx context.Context) ([]Device, error)
	DevicesByIDs(ctx context.Context, ids []int) ([]Device, error)
	FindDeviceByInventory(ctx context.Context, inventoryNumber string) (Device, error)
	CreateDevice(ctx context.Context, in DeviceInput) (Device, error)
	UpdateDevice(ctx context.Context, id int, in DeviceInput) (Device, error)
	DeleteDevice(ctx context.Context, id int) error
}
