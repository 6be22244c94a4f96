package inventory

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) reportOp() huma.Operation {
	return huma.Operation{
		OperationID: "report",
		Method:      http.MethodGet,
		Path:        "/report",
		Summary:     "Полный отчет",
		Description: "Комнаты с вложенными устройствами, сотрудники со списком устройств и категории.",
		Tags:        []string{"report"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) op(id, method, path, summary, tag string, errs ...int) huma.Operation {
	return huma.Operation{
		OperationID: id,
		Method:      method,
		Path:        path,
		Summary:     summary,
		Tags:        []string{tag},
		Errors:      errs,
		Middlewares: h.middleware,
	}
}

// ==================== Rooms ====================

func (h *Handler) listRoomsOp() huma.Operation {
	return h.op("rooms-list", http.MethodGet, "/rooms/", "Список комнат", "rooms")
}

func (h *Handler) createRoomOp() huma.Operation {
	return h.op("rooms-create", http.MethodPost, "/rooms/", "Создать комнату", "rooms",
		http.StatusBadRequest)
}

func (h *Handler) updateRoomOp() huma.Operation {
	return h.op("rooms-update", http.MethodPut, "/rooms/{id}", "Обновить комнату", "rooms",
		http.StatusBadRequest, http.StatusNotFound)
}

func (h *Handler) deleteRoomOp() huma.Operation {
	op := h.op("rooms-delete", http.MethodDelete, "/rooms/{id}", "Удалить комнату", "rooms",
		http.StatusNotFound)
	op.Description = "Удаляет комнату вместе со всеми ее устройствами."
	return op
}

// ==================== Categories ====================

func (h *Handler) listCategoriesOp() huma.Operation {
	return h.op("categories-list", http.MethodGet, "/categories/", "Список категорий", "categories")
}

func (h *Handler) createCategoryOp() huma.Operation {
	op := h.op("categories-create", http.MethodPost, "/categories/", "Создать категорию", "categories",
		http.StatusBadRequest)
	op.Description = "Если категория с таким именем уже есть, возвращает ее."
	return op
}

func (h *Handler) updateCategoryOp() huma.Operation {
	return h.op("categories-update", http.MethodPut, "/categories/{id}", "Обновить категорию", "categories",
		http.StatusBadRequest, http.StatusNotFound)
}

func (h *Handler) deleteCategoryOp() huma.Operation {
	return h.op("categories-delete", http.MethodDelete, "/categories/{id}", "Удалить категорию", "categories",
		http.StatusNotFound)
}

// ==================== Employees ====================

func (h *Handler) createEmployeeOp() huma.Operation {
	return h.op("employees-create", http.MethodPost, "/employees/", "Создать сотрудника", "employees",
		http.StatusBadRequest)
}

func (h *Handler) updateEmployeeOp() huma.Operation {
	return h.op("employees-update", http.MethodPut, "/employees/{id}", "Обновить сотрудника", "employees",
		http.StatusBadRequest, http.StatusNotFound)
}

func (h *Handler) deleteEmployeeOp() huma.Operation {
	op := h.op("employees-delete", http.MethodDelete, "/employees/{id}", "Удалить сотрудника", "employees",
		http.StatusNotFound)
	op.Description = "Устройства сотрудника остаются без владельца."
	return op
}

// ==================== Devices ====================

func (h *Handler) createDeviceOp() huma.Operation {
	return h.op("devices-create", http.MethodPost, "/devices/", "Создать устройство", "devices",
		http.StatusBadRequest)
}

func (h *Handler) updateDeviceOp() huma.Operation {
	return h.op("devices-update", http.MethodPut, "/devices/{id}", "Обновить устройство", "devices",
		http.StatusBadRequest, http.StatusNotFound)
}

func (h *Handler) deleteDeviceOp() huma.Operation {
	return h.op("devices-delete", http.MethodDelete, "/devices/{id}", "Удалить устройство", "devices",
		http.StatusNotFound)
}
