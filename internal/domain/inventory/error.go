package inventory

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateInventory = errors.New("inventory number already in use")
)

// DuplicateInventoryError - инвентарный номер уже занят другим устройством.
// Проверка выполняется до сетевого вызова.
type DuplicateInventoryError struct {
	InventoryNumber string
	ConflictID      int
}

func (e *DuplicateInventoryError) Error() string {
	return fmt.Sprintf("inventory number %q already used by device %d", e.InventoryNumber, e.ConflictID)
}

func (e *DuplicateInventoryError) Is(target error) bool {
	return target == ErrDuplicateInventory
}
