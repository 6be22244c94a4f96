package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Report(ctx context.Context) (Report, error)

	CreateRoom(ctx context.Context, in RoomInput) (Room, error)
	UpdateRoom(ctx context.Context, id int, in RoomInput) (Room, error)
	DeleteRoom(ctx context.Context, id int) error

	CreateCategory(ctx context.Context, in CategoryInput) (Category, error)
	UpdateCategory(ctx context.Context, id int, in CategoryInput) (Category, error)
	DeleteCategory(ctx context.Context, id int) error

	CreateEmployee(ctx context.Context, in EmployeeInput) (Employee, error)
	UpdateEmployee(ctx context.Context, id int, in EmployeeInput) (Employee, error)
	DeleteEmployee(ctx context.Context, id int) error

	CreateDevice(ctx context.Context, in DeviceInput) (Device, error)
	UpdateDevice(ctx context.Context, id int, in DeviceInput) (Device, error)
	DeleteDevice(ctx context.Context, id int) error

	ExportDevices(ctx context.Context) ([]Device, error)
	LabelDevices(ctx context.Context, ids []int) ([]Device, error)
	Import(ctx context.Context, rows []ImportRow) (int, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "inventory_service")),
	}
}

// Report собирает иерархический снимок: комнаты с вложенными устройствами,
// сотрудники со списком закрепленных устройств и категории.
func (s *Service) Report(ctx context.Context) (Report, error) {
	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list rooms: %w", err)
	}
	devices, err := s.repo.ListDevices(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list devices: %w", err)
	}
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list employees: %w", err)
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list categories: %w", err)
	}

	owners := make(map[int]string, len(employees))
	for _, e := range employees {
		owners[e.ID] = e.FullName
	}

	byRoom := make(map[int][]Device, len(rooms))
	byOwner := make(map[int][]string, len(employees))
	for _, d := range devices {
		if d.EmployeeID != nil {
			d.OwnerName = owners[*d.EmployeeID]
			byOwner[*d.EmployeeID] = append(byOwner[*d.EmployeeID],
				fmt.Sprintf("%s (#%s)", d.Name, d.InventoryNumber))
		}
		byRoom[d.RoomID] = append(byRoom[d.RoomID], d)
	}

	out := Report{
		Rooms:      make([]Room, 0, len(rooms)),
		Employees:  make([]Employee, 0, len(employees)),
		Categories: categories,
	}
	if out.Categories == nil {
		out.Categories = []Category{}
	}

	for _, r := range rooms {
		if r.RoomName == "" {
			r.RoomName = r.Name
		}
		r.Devices = byRoom[r.ID]
		for i := range r.Devices {
			r.Devices[i].RoomName = r.RoomName
			r.Devices[i].Floor = r.Floor
		}
		if r.Devices == nil {
			r.Devices = []Device{}
		}
		r.DevicesCount = len(r.Devices)
		out.Rooms = append(out.Rooms, r)
	}

	for _, e := range employees {
		e.DevicesList = byOwner[e.ID]
		out.Employees = append(out.Employees, e)
	}

	return out, nil
}

func (s *Service) CreateRoom(ctx context.Context, in RoomInput) (Room, error) {
	in.RoomName = strings.TrimSpace(in.RoomName)
	if in.RoomName == "" {
		return Room{}, fmt.Errorf("%w: room_name is required", ErrInvalidInput)
	}
	return s.repo.CreateRoom(ctx, in)
}

func (s *Service) UpdateRoom(ctx context.Context, id int, in RoomInput) (Room, error) {
	in.RoomName = strings.TrimSpace(in.RoomName)
	if in.RoomName == "" {
		return Room{}, fmt.Errorf("%w: room_name is required", ErrInvalidInput)
	}
	return s.repo.UpdateRoom(ctx, id, in)
}

func (s *Service) DeleteRoom(ctx context.Context, id int) error {
	return s.repo.DeleteRoom(ctx, id)
}

// CreateCategory возвращает уже существующую категорию с таким же именем
func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return Category{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	existing, err := s.repo.FindCategoryByName(ctx, in.Name)
	if err == nil {
		s.log.Debug("category already exists", slog.Int("id", existing.ID))
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Category{}, fmt.Errorf("find category: %w", err)
	}

	return s.repo.CreateCategory(ctx, in)
}

func (s *Service) UpdateCategory(ctx context.Context, id int, in CategoryInput) (Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return Category{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return s.repo.UpdateCategory(ctx, id, in)
}

func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *Service) CreateEmployee(ctx context.Context, in EmployeeInput) (Employee, error) {
	if err := validateEmployee(&in); err != nil {
		return Employee{}, err
	}
	return s.repo.CreateEmployee(ctx, in)
}

func (s *Service) UpdateEmployee(ctx context.Context, id int, in EmployeeInput) (Employee, error) {
	if err := validateEmployee(&in); err != nil {
		return Employee{}, err
	}
	return s.repo.UpdateEmployee(ctx, id, in)
}

func (s *Service) DeleteEmployee(ctx context.Context, id int) error {
	return s.repo.DeleteEmployee(ctx, id)
}

func (s *Service) CreateDevice(ctx context.Context, in DeviceInput) (Device, error) {
	in, err := validateDevice(in)
	if err != nil {
		return Device{}, err
	}
	return s.repo.CreateDevice(ctx, in)
}

func (s *Service) UpdateDevice(ctx context.Context, id int, in DeviceInput) (Device, error) {
	in, err := validateDevice(in)
	if err != nil {
		return Device{}, err
	}
	return s.repo.UpdateDevice(ctx, id, in)
}

func (s *Service) DeleteDevice(ctx context.Context, id int) error {
	return s.repo.DeleteDevice(ctx, id)
}

// ExportDevices возвращает все устройства с именами комнат и владельцев
func (s *Service) ExportDevices(ctx context.Context) ([]Device, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	return Flatten(report).Devices, nil
}

// LabelDevices возвращает устройства для печати этикеток в порядке ids.
// Неизвестные id пропускаются.
func (s *Service) LabelDevices(ctx context.Context, ids []int) ([]Device, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no device ids provided", ErrInvalidInput)
	}

	devices, err := s.repo.DevicesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("devices by ids: %w", err)
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: no devices found", ErrNotFound)
	}

	return devices, nil
}

// Import добавляет строки таблицы. Строки с уже известным инвентарным номером
// пропускаются, неизвестная комната заменяется первой комнатой.
func (s *Service) Import(ctx context.Context, rows []ImportRow) (int, error) {
	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return 0, fmt.Errorf("list rooms: %w", err)
	}
	if len(rooms) == 0 {
		return 0, fmt.Errorf("%w: no rooms to import into", ErrInvalidInput)
	}

	roomIDs := make(map[string]int, len(rooms))
	for _, r := range rooms {
		roomIDs[r.Name] = r.ID
		if r.RoomName != "" {
			roomIDs[r.RoomName] = r.ID
		}
	}

	seen := make(map[string]struct{}, len(rows))
	count := 0
	for _, row := range rows {
		inv := strings.TrimSpace(row.InventoryNumber)
		if inv != "" {
			if _, ok := seen[inv]; ok {
				continue
			}
			_, err := s.repo.FindDeviceByInventory(ctx, inv)
			if err == nil {
				s.log.Debug("skip known inventory number", slog.String("inventory_number", inv))
				continue
			}
			if !errors.Is(err, ErrNotFound) {
				return count, fmt.Errorf("find device: %w", err)
			}
			seen[inv] = struct{}{}
		}

		roomID, ok := roomIDs[strings.TrimSpace(row.RoomName)]
		if !ok {
			roomID = rooms[0].ID
		}

		in := DeviceInput{
			Name:            orDefault(row.Name, "Device"),
			Category:        orDefault(row.Category, "General"),
			RoomID:          roomID,
			Price:           orDefault(row.Price, "0"),
			Status:          row.Status,
			InventoryNumber: inv,
			Details:         row.Details,
		}
		if !in.Status.Valid() {
			in.Status = StatusInStock
		}

		if _, err := s.repo.CreateDevice(ctx, in); err != nil {
			return count, fmt.Errorf("create device: %w", err)
		}
		count++
	}

	s.log.Info("import finished", slog.Int("imported", count), slog.Int("rows", len(rows)))
	return count, nil
}

func validateDevice(in DeviceInput) (DeviceInput, error) {
	in = in.Normalize()
	if in.Name == "" {
		return in, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.RoomID <= 0 {
		return in, fmt.Errorf("%w: room_id is required", ErrInvalidInput)
	}
	if !in.Status.Valid() {
		return in, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}
	return in, nil
}

func validateEmployee(in *EmployeeInput) error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Position = strings.TrimSpace(in.Position)
	if in.FullName == "" {
		return fmt.Errorf("%w: full_name is required", ErrInvalidInput)
	}
	return nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
