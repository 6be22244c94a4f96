package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invtrack/internal/domain/inventory"
)

func intPtr(v int) *int { return &v }

func fixture() []inventory.Device {
	return []inventory.Device{
		{ID: 1, Name: "Dell Optiplex", Category: "PC", Status: inventory.StatusWorking, RoomID: 1, InventoryNumber: "INV-001", Price: "1200"},
		{ID: 2, Name: "HP LaserJet", Category: "Printer", Status: inventory.StatusBroken, RoomID: 2, InventoryNumber: "INV-002", OwnerName: "Петров"},
		{ID: 3, Name: "Cisco", Category: "Network", Status: inventory.StatusRepair, RoomID: 1, InventoryNumber: "NET-3"},
		{ID: 12, Name: "Lenovo", Category: "PC", Status: inventory.StatusInStock, RoomID: 2, InventoryNumber: "INV-012", OwnerName: "Иванова"},
		{ID: 21, Name: "Dell Monitor", Category: "Monitor", Status: inventory.StatusWorking, RoomID: 3, Price: "300"},
	}
}

func ids(devices []inventory.Device) []int {
	out := make([]int, 0, len(devices))
	for _, d := range devices {
		out = append(out, d.ID)
	}
	return out
}

func TestFilterDevices(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{name: "zero filter keeps all", filter: Filter{}, want: []int{1, 2, 3, 12, 21}},
		{name: "search by name case insensitive", filter: Filter{Search: "dELL"}, want: []int{1, 21}},
		{name: "search across id and price", filter: Filter{Search: "2"}, want: []int{1, 2, 12, 21}},
		{name: "search by price", filter: Filter{Search: "300"}, want: []int{21}},
		{name: "search by inventory number", filter: Filter{Search: "net-"}, want: []int{3}},
		{name: "search by owner", filter: Filter{Search: "иванова"}, want: []int{12}},
		{name: "room", filter: Filter{RoomID: intPtr(2)}, want: []int{2, 12}},
		{name: "category", filter: Filter{Category: "PC"}, want: []int{1, 12}},
		{name: "status", filter: Filter{Status: inventory.StatusWorking}, want: []int{1, 21}},
		{name: "all conditions", filter: Filter{Search: "inv", RoomID: intPtr(2), Category: "PC", Status: inventory.StatusInStock}, want: []int{12}},
		{name: "no match", filter: Filter{Category: "Phone"}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDevices(fixture(), tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterDevices_SubsetPreservesOrder(t *testing.T) {
	all := fixture()
	filters := []Filter{
		{Search: "d"},
		{RoomID: intPtr(1)},
		{Status: inventory.StatusBroken},
		{Search: "inv", Category: "PC"},
	}

	for _, f := range filters {
		got := FilterDevices(all, f)
		pos := -1
		for _, d := range got {
			idx := indexOf(all, d.ID)
			require.GreaterOrEqual(t, idx, 0, "filtered item must come from the source")
			assert.Greater(t, idx, pos, "relative order must be kept")
			pos = idx
		}
	}
}

func indexOf(devices []inventory.Device, id int) int {
	for i, d := range devices {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func TestNewCursor(t *testing.T) {
	tests := []struct {
		name     string
		page     float64
		size     float64
		wantPage int
		wantSize int
	}{
		{name: "valid", page: 3, size: 25, wantPage: 3, wantSize: 25},
		{name: "nan", page: math.NaN(), size: math.NaN(), wantPage: 1, wantSize: 10},
		{name: "infinite", page: math.Inf(1), size: math.Inf(-1), wantPage: 1, wantSize: 10},
		{name: "zero", page: 0, size: 0, wantPage: 1, wantSize: 10},
		{name: "negative", page: -4, size: -1, wantPage: 1, wantSize: 10},
		{name: "fraction truncated", page: 2.7, size: 5.2, wantPage: 2, wantSize: 5},
		{name: "below one", page: 0.5, size: 0.9, wantPage: 1, wantSize: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, c.Page)
			assert.Equal(t, tt.wantSize, c.PageSize)
		})
	}
}

func TestParseCursor(t *testing.T) {
	assert.Equal(t, Cursor{Page: 2, PageSize: 20}, ParseCursor("2", " 20 "))
	assert.Equal(t, Cursor{Page: 1, PageSize: 10}, ParseCursor("abc", ""))
	assert.Equal(t, Cursor{Page: 1, PageSize: 10}, ParseCursor("NaN", "-3"))
}

func TestPaginate_Safety(t *testing.T) {
	pages := []float64{math.NaN(), math.Inf(1), -10, 0, 1, 2, 3, 100, 1e12}
	sizes := []float64{math.NaN(), -1, 0, 1, 2, 3, 10, 1e12}
	totals := []int{0, 1, 5, 10, 11}

	for _, total := range totals {
		devices := make([]inventory.Device, total)
		for i := range devices {
			devices[i].ID = i + 1
		}
		for _, p := range pages {
			for _, s := range sizes {
				page := Paginate(devices, NewCursor(p, s))
				assert.True(t, 0 <= page.Start && page.Start <= page.End && page.End <= total,
					"total=%d page=%v size=%v start=%d end=%d", total, p, s, page.Start, page.End)
				from, to := page.Range()
				assert.LessOrEqual(t, from, total)
				assert.LessOrEqual(t, to, total)
				assert.Len(t, page.Items, page.End-page.Start)
			}
		}
	}
}

func TestPaginate_HugeCursor(t *testing.T) {
	devices := make([]inventory.Device, 25)
	for i := range devices {
		devices[i].ID = i + 1
	}

	tests := []struct {
		name   string
		cursor Cursor
	}{
		{name: "max page", cursor: Cursor{Page: math.MaxInt, PageSize: 10}},
		{name: "max size and page", cursor: Cursor{Page: math.MaxInt, PageSize: math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(devices, tt.cursor)
			assert.Empty(t, page.Items)
			assert.Equal(t, 25, page.Start)
			assert.Equal(t, 25, page.End)
			assert.Equal(t, "0–0 of 25", page.RangeText())
		})
	}

	s := NewState(10)
	s.SetPage(math.MaxInt)
	assert.Equal(t, math.MaxInt32, s.Cursor().Page)
	assert.Empty(t, s.Apply(devices).Items)
}

func TestFilter_IsZero(t *testing.T) {
	room := 1
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Search: "a"}.IsZero())
	assert.False(t, Filter{RoomID: &room}.IsZero())
	assert.False(t, Filter{Category: "PC"}.IsZero())
	assert.False(t, Filter{Status: inventory.StatusBroken}.IsZero())
}

func TestPaginate(t *testing.T) {
	devices := fixture()

	page := Paginate(devices, Cursor{Page: 2, PageSize: 2})
	assert.Equal(t, []int{3, 12}, ids(page.Items))
	assert.Equal(t, "3–4 of 5", page.RangeText())
	assert.Equal(t, 3, page.Pages())

	last := Paginate(devices, Cursor{Page: 3, PageSize: 2})
	assert.Equal(t, []int{21}, ids(last.Items))
	assert.Equal(t, "5–5 of 5", last.RangeText())

	beyond := Paginate(devices, Cursor{Page: 9, PageSize: 2})
	assert.Empty(t, beyond.Items)
	assert.Equal(t, "0–0 of 5", beyond.RangeText())

	empty := Paginate(nil, Cursor{Page: 1, PageSize: 10})
	assert.Equal(t, "0–0 of 0", empty.RangeText())
	assert.Equal(t, 1, empty.Pages())
}

func TestState_FilterChangeResetsPage(t *testing.T) {
	changes := []struct {
		name  string
		apply func(s *State)
	}{
		{name: "search", apply: func(s *State) { s.SetSearch("dell") }},
		{name: "room", apply: func(s *State) { s.SetRoom(intPtr(2)) }},
		{name: "category", apply: func(s *State) { s.SetCategory("PC") }},
		{name: "status", apply: func(s *State) { s.SetStatus(inventory.StatusBroken) }},
		{name: "whole filter", apply: func(s *State) { s.SetFilter(Filter{Search: "x"}) }},
		{name: "reset", apply: func(s *State) { s.ResetFilters() }},
		{name: "page size", apply: func(s *State) { s.SetPageSize(5) }},
	}

	for _, tt := range changes {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(2)
			s.SetPage(3)
			require.Equal(t, 3, s.Cursor().Page)

			tt.apply(s)
			assert.Equal(t, 1, s.Cursor().Page)
		})
	}
}

func TestState_SameValueKeepsPage(t *testing.T) {
	s := NewState(2)
	s.SetCategory("PC")
	s.SetRoom(intPtr(1))
	s.SetPage(2)

	s.SetCategory("PC")
	s.SetRoom(intPtr(1))
	assert.Equal(t, 2, s.Cursor().Page)

	s.SetRoom(nil)
	assert.Equal(t, 1, s.Cursor().Page)
	assert.Nil(t, s.Filter().RoomID)
}

func TestState_Apply(t *testing.T) {
	s := NewState(0)
	assert.Equal(t, DefaultPageSize, s.Cursor().PageSize)

	s.SetCategory("PC")
	page := s.Apply(fixture())
	assert.Equal(t, []int{1, 12}, ids(page.Items))
	assert.Equal(t, 2, page.Total)

	s.SetPage(-3)
	assert.Equal(t, 1, s.Cursor().Page)
}

func TestFilterEmployees(t *testing.T) {
	employees := []inventory.Employee{
		{ID: 1, FullName: "Иванов Иван"},
		{ID: 2, FullName: "Петрова Анна"},
		{ID: 3, FullName: "Иваненко Ольга"},
	}

	assert.Len(t, FilterEmployees(employees, ""), 3)
	got := FilterEmployees(employees, " иван ")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestNewStats(t *testing.T) {
	snap := inventory.Snapshot{
		Rooms: []inventory.Room{{ID: 1}, {ID: 2}},
		Devices: []inventory.Device{
			{ID: 1, EmployeeID: intPtr(1)},
			{ID: 2, Status: inventory.StatusBroken},
			{ID: 3, OwnerName: "Петров", Status: inventory.StatusBroken},
		},
	}

	assert.Equal(t, Stats{Total: 3, Assigned: 2, Broken: 2, Rooms: 2}, NewStats(snap))
}
