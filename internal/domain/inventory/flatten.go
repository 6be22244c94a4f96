package inventory

// Flatten разворачивает отчет в плоский список устройств. Порядок сохраняется:
// комнаты снаружи, устройства комнаты внутри. Каждое устройство получает
// room_id, room_name и floor своей комнаты. Устройства вне комнат в снимок
// не попадают.
func Flatten(r Report) Snapshot {
	total := 0
	for _, room := range r.Rooms {
		total += len(room.Devices)
	}

	devices := make([]Device, 0, total)
	for _, room := range r.Rooms {
		for _, d := range room.Devices {
			d.RoomID = room.ID
			d.RoomName = room.DisplayName()
			d.Floor = room.Floor
			devices = append(devices, d)
		}
	}

	return Snapshot{
		Rooms:      r.Rooms,
		Employees:  r.Employees,
		Categories: r.Categories,
		Devices:    devices,
	}
}
