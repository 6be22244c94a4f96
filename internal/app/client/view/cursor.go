package view

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10

	maxCursorValue = math.MaxInt32
)

// Cursor - позиция пагинации. Page и PageSize всегда не меньше 1.
type Cursor struct {
	Page     int
	PageSize int
}

func DefaultCursor() Cursor {
	return Cursor{Page: DefaultPage, PageSize: DefaultPageSize}
}

// NewCursor строит курсор из произвольных чисел: NaN, бесконечность и
// значения меньше 1 заменяются на 1 и 10 соответственно.
func NewCursor(page, pageSize float64) Cursor {
	return Cursor{
		Page:     sanitize(page, DefaultPage),
		PageSize: sanitize(pageSize, DefaultPageSize),
	}
}

// ParseCursor разбирает значения из командной строки или query
func ParseCursor(page, pageSize string) Cursor {
	return NewCursor(parseNumber(page), parseNumber(pageSize))
}

// Clamp приводит курсор к допустимым границам: [1, MaxInt32] для обоих полей
func (c Cursor) Clamp() Cursor {
	if c.Page < 1 {
		c.Page = DefaultPage
	}
	if c.Page > maxCursorValue {
		c.Page = maxCursorValue
	}
	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}
	if c.PageSize > maxCursorValue {
		c.PageSize = maxCursorValue
	}
	return c
}

func sanitize(v float64, fallback int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
		return fallback
	}
	if v > maxCursorValue {
		return maxCursorValue
	}
	return int(v)
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
