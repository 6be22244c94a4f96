package view

import "invtrack/internal/domain/inventory"

// Stats - сводка для главной страницы
type Stats struct {
	Total    int
	Assigned int
	Broken   int
	Rooms    int
}

func NewStats(s inventory.Snapshot) Stats {
	st := Stats{Total: len(s.Devices), Rooms: len(s.Rooms)}
	for _, d := range s.Devices {
		if d.HasOwner() {
			st.Assigned++
		}
		if d.Status == inventory.StatusBroken {
			st.Broken++
		}
	}
	return st
}
