package client

// Selection - упорядоченное множество id устройств для пакетной печати.
// Не зависит от фильтров, страниц и загрузок.
type Selection struct {
	ids   []int
	index map[int]struct{}
}

func NewSelection() *Selection {
	return &Selection{index: make(map[int]struct{})}
}

func (s *Selection) Add(ids ...int) {
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			continue
		}
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
}

func (s *Selection) Remove(ids ...int) {
	for _, id := range ids {
		if _, ok := s.index[id]; !ok {
			continue
		}
		delete(s.index, id)
		for i, v := range s.ids {
			if v == id {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
	}
}

// Toggle переключает id и возвращает новое состояние
func (s *Selection) Toggle(id int) bool {
	if s.Contains(id) {
		s.Remove(id)
		return false
	}
	s.Add(id)
	return true
}

func (s *Selection) Contains(id int) bool {
	_, ok := s.index[id]
	return ok
}

// IDs возвращает копию в порядке добавления
func (s *Selection) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) Clear() {
	s.ids = nil
	s.index = make(map[int]struct{})
}
