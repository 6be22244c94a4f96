package view

import "invtrack/internal/domain/inventory"

// State - состояние фильтров и курсора. Любое изменение фильтра сбрасывает
// страницу на первую.
type State struct {
	filter Filter
	cursor Cursor
}

func NewState(pageSize int) *State {
	return &State{cursor: Cursor{Page: DefaultPage, PageSize: pageSize}.Clamp()}
}

func (s *State) Filter() Filter { return s.filter }

func (s *State) Cursor() Cursor { return s.cursor }

func (s *State) SetSearch(search string) {
	if s.filter.Search != search {
		s.filter.Search = search
		s.resetPage()
	}
}

func (s *State) SetRoom(roomID *int) {
	if !sameInt(s.filter.RoomID, roomID) {
		if roomID != nil {
			v := *roomID
			roomID = &v
		}
		s.filter.RoomID = roomID
		s.resetPage()
	}
}

func (s *State) SetCategory(category string) {
	if s.filter.Category != category {
		s.filter.Category = category
		s.resetPage()
	}
}

func (s *State) SetStatus(status inventory.Status) {
	if s.filter.Status != status {
		s.filter.Status = status
		s.resetPage()
	}
}

// SetFilter заменяет фильтр целиком
func (s *State) SetFilter(f Filter) {
	s.SetSearch(f.Search)
	s.SetRoom(f.RoomID)
	s.SetCategory(f.Category)
	s.SetStatus(f.Status)
}

// ResetFilters очищает все условия и возвращает на первую страницу
func (s *State) ResetFilters() {
	s.filter = Filter{}
	s.resetPage()
}

func (s *State) SetPage(page int) {
	s.cursor = Cursor{Page: page, PageSize: s.cursor.PageSize}.Clamp()
}

// SetPageSize меняет размер страницы и возвращает на первую страницу
func (s *State) SetPageSize(size int) {
	s.cursor = Cursor{Page: DefaultPage, PageSize: size}.Clamp()
}

func (s *State) SetCursor(c Cursor) {
	s.cursor = c.Clamp()
}

// Apply строит страницу для текущего состояния
func (s *State) Apply(devices []inventory.Device) Page {
	return Apply(devices, s.filter, s.cursor)
}

func (s *State) resetPage() {
	s.cursor.Page = DefaultPage
	s.cursor = s.cursor.Clamp()
}

func sameInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
