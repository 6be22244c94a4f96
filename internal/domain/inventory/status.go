package inventory

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusWorking        Status = "working"
	StatusInStock        Status = "in_stock"
	StatusRepair         Status = "repair"
	StatusBroken         Status = "broken"
	StatusDecommissioned Status = "decommissioned"
)

const (
	LangRU = "ru"
	LangUZ = "uz"
)

// Statuses перечисляет статусы в порядке отображения
var Statuses = []Status{
	StatusWorking,
	StatusInStock,
	StatusRepair,
	StatusBroken,
	StatusDecommissioned,
}

var statusLabels = map[string]map[Status]string{
	LangRU: {
		StatusWorking:        "В работе",
		StatusInStock:        "На складе",
		StatusRepair:         "В ремонте",
		StatusBroken:         "Сломано",
		StatusDecommissioned: "Списано",
	},
	LangUZ: {
		StatusWorking:        "Ishlayapti",
		StatusInStock:        "Omborda",
		StatusRepair:         "Ta'mirda",
		StatusBroken:         "Buzilgan",
		StatusDecommissioned: "Hisobdan chiqarilgan",
	},
}

func (s Status) Valid() bool {
	switch s {
	case StatusWorking, StatusInStock, StatusRepair, StatusBroken, StatusDecommissioned:
		return true
	}
	return false
}

// Label возвращает локализованную подпись статуса, по умолчанию на русском.
// Неизвестный статус возвращается как есть.
func (s Status) Label(lang string) string {
	labels, ok := statusLabels[lang]
	if !ok {
		labels = statusLabels[LangRU]
	}
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// ParseStatus принимает как код статуса, так и его локализованную подпись
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	if st := Status(s); st.Valid() {
		return st, nil
	}
	for _, labels := range statusLabels {
		for st, l := range labels {
			if strings.EqualFold(l, s) {
				return st, nil
			}
		}
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
}
