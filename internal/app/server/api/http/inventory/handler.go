package inventory

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"invtrack/internal/app/server/api/http/apierr"
	"invtrack/internal/domain/inventory"
)

type Handler struct {
	service    inventory.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service inventory.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With(slog.String("component", "inventory_handler")),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.reportOp(), h.report)

	huma.Register(api, h.listRoomsOp(), h.listRooms)
	huma.Register(api, h.createRoomOp(), h.createRoom)
	huma.Register(api, h.updateRoomOp(), h.updateRoom)
	huma.Register(api, h.deleteRoomOp(), h.deleteRoom)

	huma.Register(api, h.listCategoriesOp(), h.listCategories)
	huma.Register(api, h.createCategoryOp(), h.createCategory)
	huma.Register(api, h.updateCategoryOp(), h.updateCategory)
	huma.Register(api, h.deleteCategoryOp(), h.deleteCategory)

	huma.Register(api, h.createEmployeeOp(), h.createEmployee)
	huma.Register(api, h.updateEmployeeOp(), h.updateEmployee)
	huma.Register(api, h.deleteEmployeeOp(), h.deleteEmployee)

	huma.Register(api, h.createDeviceOp(), h.createDevice)
	huma.Register(api, h.updateDeviceOp(), h.updateDevice)
	huma.Register(api, h.deleteDeviceOp(), h.deleteDevice)
}

func (h *Handler) report(ctx context.Context, _ *struct{}) (*reportOutput, error) {
	report, err := h.service.Report(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &reportOutput{Body: report}, nil
}

// ==================== Rooms ====================

func (h *Handler) listRooms(ctx context.Context, _ *struct{}) (*roomsOutput, error) {
	report, err := h.service.Report(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &roomsOutput{Body: report.Rooms}, nil
}

func (h *Handler) createRoom(ctx context.Context, input *createRoomInput) (*roomOutput, error) {
	room, err := h.service.CreateRoom(ctx, input.Body.input())
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	h.log.Info("room created", slog.Int("id", room.ID))
	return &roomOutput{Body: room}, nil
}

func (h *Handler) updateRoom(ctx context.Context, input *updateRoomInput) (*roomOutput, error) {
	room, err := h.service.UpdateRoom(ctx, input.ID, input.Body.input())
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &roomOutput{Body: room}, nil
}

func (h *Handler) deleteRoom(ctx context.Context, input *idInput) (*messageOutput, error) {
	if err := h.service.DeleteRoom(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	h.log.Info("room deleted", slog.Int("id", input.ID))
	return deleted, nil
}

// ==================== Categories ====================

func (h *Handler) listCategories(ctx context.Context, _ *struct{}) (*categoriesOutput, error) {
	report, err := h.service.Report(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &categoriesOutput{Body: report.Categories}, nil
}

func (h *Handler) createCategory(ctx context.Context, input *createCategoryInput) (*categoryOutput, error) {
	c, err := h.service.CreateCategory(ctx, inventory.CategoryInput{Name: input.Body.Name})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &categoryOutput{Body: c}, nil
}

func (h *Handler) updateCategory(ctx context.Context, input *updateCategoryInput) (*categoryOutput, error) {
	c, err := h.service.UpdateCategory(ctx, input.ID, inventory.CategoryInput{Name: input.Body.Name})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &categoryOutput{Body: c}, nil
}

func (h *Handler) deleteCategory(ctx context.Context, input *idInput) (*messageOutput, error) {
	if err := h.service.DeleteCategory(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return deleted, nil
}

// ==================== Employees ====================

func (h *Handler) createEmployee(ctx context.Context, input *createEmployeeInput) (*employeeOutput, error) {
	e, err := h.service.CreateEmployee(ctx, inventory.EmployeeInput{
		FullName: input.Body.FullName,
		Position: input.Body.Position,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &employeeOutput{Body: e}, nil
}

func (h *Handler) updateEmployee(ctx context.Context, input *updateEmployeeInput) (*employeeOutput, error) {
	e, err := h.service.UpdateEmployee(ctx, input.ID, inventory.EmployeeInput{
		FullName: input.Body.FullName,
		Position: input.Body.Position,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &employeeOutput{Body: e}, nil
}

func (h *Handler) deleteEmployee(ctx context.Context, input *idInput) (*messageOutput, error) {
	if err := h.service.DeleteEmployee(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return deleted, nil
}

// ==================== Devices ====================

func (h *Handler) createDevice(ctx context.Context, input *createDeviceInput) (*deviceOutput, error) {
	d, err := h.service.CreateDevice(ctx, input.Body.input())
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	h.log.Info("device created", slog.Int("id", d.ID), slog.Int("room_id", d.RoomID))
	return &deviceOutput{Body: d}, nil
}

func (h *Handler) updateDevice(ctx context.Context, input *updateDeviceInput) (*deviceOutput, error) {
	d, err := h.service.UpdateDevice(ctx, input.ID, input.Body.input())
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &deviceOutput{Body: d}, nil
}

func (h *Handler) deleteDevice(ctx context.Context, input *idInput) (*messageOutput, error) {
	if err := h.service.DeleteDevice(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	h.log.Info("device deleted", slog.Int("id", input.ID))
	return deleted, nil
}
