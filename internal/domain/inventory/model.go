package inventory

// Room - помещение, владеющее устройствами
type Room struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	RoomName     string   `json:"room_name"`
	Floor        int      `json:"floor,omitempty"`
	DevicesCount int      `json:"devices_count"`
	Devices      []Device `json:"devices"`
}

// DisplayName возвращает отображаемое имя комнаты
func (r Room) DisplayName() string {
	if r.RoomName != "" {
		return r.RoomName
	}
	return r.Name
}

// Device - учитываемый актив. RoomName и Floor копируются из комнаты при
// разворачивании отчета, OwnerName вычисляется сервером.
type Device struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"type"`
	InventoryNumber string `json:"inventory_number"`
	Price           string `json:"price"`
	Status          Status `json:"status"`
	Details         string `json:"details"`
	EmployeeID      *int   `json:"employee_id"`
	OwnerName       string `json:"owner_name,omitempty"`
	RoomID          int    `json:"room_id"`
	RoomName        string `json:"room_name"`
	Floor           int    `json:"floor,omitempty"`
}

// HasOwner сообщает, закреплено ли устройство за сотрудником
func (d Device) HasOwner() bool {
	return d.EmployeeID != nil || d.OwnerName != ""
}

type Employee struct {
	ID          int      `json:"id"`
	FullName    string   `json:"full_name"`
	Position    string   `json:"position"`
	DevicesList []string `json:"devices_list,omitempty"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Report - иерархический снимок, который отдает GET /report
type Report struct {
	Rooms      []Room     `json:"rooms"`
	Employees  []Employee `json:"employees"`
	Categories []Category `json:"categories"`
}

// Snapshot - развернутая форма отчета. Снимок неизменяем: при каждой
// успешной загрузке он заменяется целиком.
type Snapshot struct {
	Rooms      []Room
	Employees  []Employee
	Categories []Category
	Devices    []Device
}

// Device ищет устройство по идентификатору
func (s Snapshot) Device(id int) (Device, bool) {
	for _, d := range s.Devices {
		if d.ID == id {
			return d, true
		}
	}
	return Device{}, false
}

// DevicesOf возвращает устройства, закрепленные за сотрудником
func (s Snapshot) DevicesOf(employeeID int) []Device {
	var out []Device
	for _, d := range s.Devices {
		if d.EmployeeID != nil && *d.EmployeeID == employeeID {
			out = append(out, d)
		}
	}
	return out
}
