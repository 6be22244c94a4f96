package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"invtrack/internal/domain/inventory"
)

// InventoryRepository is an in-memory inventory store for tests and
// STORAGE=memory runs. Constraints mirror the postgres schema: unique room
// and category names, device room and owner must exist.
type InventoryRepository struct {
	mu         sync.RWMutex
	seq        int
	rooms      map[int]inventory.Room
	categories map[int]inventory.Category
	employees  map[int]inventory.Employee
	devices    map[int]inventory.Device
}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		rooms:      make(map[int]inventory.Room),
		categories: make(map[int]inventory.Category),
		employees:  make(map[int]inventory.Employee),
		devices:    make(map[int]inventory.Device),
	}
}

func (r *InventoryRepository) nextID() int {
	r.seq++
	return r.seq
}

// ==================== Rooms ====================

func (r *InventoryRepository) ListRooms(ctx context.Context) ([]inventory.Room, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedValues(r.rooms, func(v inventory.Room) int { return v.ID }), nil
}

func (r *InventoryRepository) FindRoomByName(ctx context.Context, name string) (inventory.Room, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, room := range r.rooms {
		if room.Name == name {
			return room, nil
		}
	}
	return inventory.Room{}, inventory.ErrNotFound
}

func (r *InventoryRepository) CreateRoom(ctx context.Context, in inventory.RoomInput) (inventory.Room, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.roomNameTaken(in.RoomName, 0) {
		return inventory.Room{}, fmt.Errorf("%w: room %q already exists", inventory.ErrInvalidInput, in.RoomName)
	}

	room := inventory.Room{ID: r.nextID(), Name: in.RoomName, RoomName: in.RoomName, Floor: in.Floor}
	r.rooms[room.ID] = room
	return room, nil
}

func (r *InventoryRepository) UpdateRoom(ctx context.Context, id int, in inventory.RoomInput) (inventory.Room, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[id]
	if !ok {
		return inventory.Room{}, inventory.ErrNotFound
	}
	if r.roomNameTaken(in.RoomName, id) {
		return inventory.Room{}, fmt.Errorf("%w: room %q already exists", inventory.ErrInvalidInput, in.RoomName)
	}

	room.Name, room.RoomName, room.Floor = in.RoomName, in.RoomName, in.Floor
	r.rooms[id] = room
	return room, nil
}

func (r *InventoryRepository) DeleteRoom(ctx context.Context, id int) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[id]; !ok {
		return inventory.ErrNotFound
	}
	for devID, d := range r.devices {
		if d.RoomID == id {
			delete(r.devices, devID)
		}
	}
	delete(r.rooms, id)
	return nil
}

func (r *InventoryRepository) roomNameTaken(name string, exceptID int) bool {
	for _, room := range r.rooms {
		if room.Name == name && room.ID != exceptID {
			return true
		}
	}
	return false
}

// ==================== Categories ====================

func (r *InventoryRepository) ListCategories(ctx context.Context) ([]inventory.Category, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedValues(r.categories, func(v inventory.Category) int { return v.ID }), nil
}

func (r *InventoryRepository) FindCategoryByName(ctx context.Context, name string) (inventory.Category, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return inventory.Category{}, inventory.ErrNotFound
}

func (r *InventoryRepository) CreateCategory(ctx context.Context, in inventory.CategoryInput) (inventory.Category, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.categoryNameTaken(in.Name, 0) {
		return inventory.Category{}, fmt.Errorf("%w: category %q already exists", inventory.ErrInvalidInput, in.Name)
	}

	c := inventory.Category{ID: r.nextID(), Name: in.Name}
	r.categories[c.ID] = c
	return c, nil
}

func (r *InventoryRepository) UpdateCategory(ctx context.Context, id int, in inventory.CategoryInput) (inventory.Category, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.categories[id]
	if !ok {
		return inventory.Category{}, inventory.ErrNotFound
	}
	if r.categoryNameTaken(in.Name, id) {
		return inventory.Category{}, fmt.Errorf("%w: category %q already exists", inventory.ErrInvalidInput, in.Name)
	}

	c.Name = in.Name
	r.categories[id] = c
	return c, nil
}

func (r *InventoryRepository) DeleteCategory(ctx context.Context, id int) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return inventory.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *InventoryRepository) categoryNameTaken(name string, exceptID int) bool {
	for _, c := range r.categories {
		if c.Name == name && c.ID != exceptID {
			return true
		}
	}
	return false
}

// ==================== Employees ====================

func (r *InventoryRepository) ListEmployees(ctx context.Context) ([]inventory.Employee, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedValues(r.employees, func(v inventory.Employee) int { return v.ID }), nil
}

func (r *InventoryRepository) CreateEmployee(ctx context.Context, in inventory.EmployeeInput) (inventory.Employee, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	e := inventory.Employee{ID: r.nextID(), FullName: in.FullName, Position: in.Position}
	r.employees[e.ID] = e
	return e, nil
}

func (r *InventoryRepository) UpdateEmployee(ctx context.Context, id int, in inventory.EmployeeInput) (inventory.Employee, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return inventory.Employee{}, inventory.ErrNotFound
	}
	e.FullName, e.Position = in.FullName, in.Position
	r.employees[id] = e
	return e, nil
}

func (r *InventoryRepository) DeleteEmployee(ctx context.Context, id int) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return inventory.ErrNotFound
	}
	for devID, d := range r.devices {
		if d.EmployeeID != nil && *d.EmployeeID == id {
			d.EmployeeID = nil
			r.devices[devID] = d
		}
	}
	delete(r.employees, id)
	return nil
}

// ==================== Devices ====================

func (r *InventoryRepository) ListDevices(ctx context.Context) ([]inventory.Device, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedValues(r.devices, func(v inventory.Device) int { return v.ID }), nil
}

func (r *InventoryRepository) DevicesByIDs(ctx context.Context, ids []int) ([]inventory.Device, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inventory.Device, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if d, ok := r.devices[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *InventoryRepository) FindDeviceByInventory(ctx context.Context, inventoryNumber string) (inventory.Device, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range sortedValues(r.devices, func(v inventory.Device) int { return v.ID }) {
		if d.InventoryNumber == inventoryNumber {
			return d, nil
		}
	}
	return inventory.Device{}, inventory.ErrNotFound
}

func (r *InventoryRepository) CreateDevice(ctx context.Context, in inventory.DeviceInput) (inventory.Device, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkRefs(in); err != nil {
		return inventory.Device{}, err
	}

	d := deviceFromInput(r.nextID(), in)
	r.devices[d.ID] = d
	return d, nil
}

func (r *InventoryRepository) UpdateDevice(ctx context.Context, id int, in inventory.DeviceInput) (inventory.Device, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.devices[id]; !ok {
		return inventory.Device{}, inventory.ErrNotFound
	}
	if err := r.checkRefs(in); err != nil {
		return inventory.Device{}, err
	}

	d := deviceFromInput(id, in)
	r.devices[id] = d
	return d, nil
}

func (r *InventoryRepository) DeleteDevice(ctx context.Context, id int) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.devices[id]; !ok {
		return inventory.ErrNotFound
	}
	delete(r.devices, id)
	return nil
}

func (r *InventoryRepository) checkRefs(in inventory.DeviceInput) error {
	if _, ok := r.rooms[in.RoomID]; !ok {
		return fmt.Errorf("%w: room %d does not exist", inventory.ErrInvalidInput, in.RoomID)
	}
	if in.EmployeeID != nil {
		if _, ok := r.employees[*in.EmployeeID]; !ok {
			return fmt.Errorf("%w: employee %d does not exist", inventory.ErrInvalidInput, *in.EmployeeID)
		}
	}
	return nil
}

func deviceFromInput(id int, in inventory.DeviceInput) inventory.Device {
	var owner *int
	if in.EmployeeID != nil {
		v := *in.EmployeeID
		owner = &v
	}
	return inventory.Device{
		ID:              id,
		Name:            in.Name,
		Category:        in.Category,
		InventoryNumber: in.InventoryNumber,
		Price:           in.Price,
		Status:          in.Status,
		Details:         in.Details,
		EmployeeID:      owner,
		RoomID:          in.RoomID,
	}
}

func sortedValues[T any](m map[int]T, id func(T) int) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}
