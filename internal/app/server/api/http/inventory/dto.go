package inventory

import (
	"strings"

	"invtrack/internal/domain/inventory"
)

type idInput struct {
	ID int `path:"id" example:"1" doc:"ID записи"`
}

type messageOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message" example:"deleted"`
}

var deleted = &messageOutput{Body: messageResponse{Message: "deleted"}}

type reportOutput struct {
	Body inventory.Report
}

// ==================== Rooms ====================

// roomRequest принимает имя комнаты как room_name или name
type roomRequest struct {
	Name     string `json:"name,omitempty" required:"false" doc:"Имя комнаты"`
	RoomName string `json:"room_name,omitempty" required:"false" doc:"Имя комнаты"`
	Floor    int    `json:"floor,omitempty" required:"false" minimum:"0" doc:"Этаж"`
}

func (r roomRequest) input() inventory.RoomInput {
	name := r.RoomName
	if strings.TrimSpace(name) == "" {
		name = r.Name
	}
	return inventory.RoomInput{RoomName: name, Floor: r.Floor}
}

type createRoomInput struct {
	Body roomRequest
}

type updateRoomInput struct {
	ID   int `path:"id" example:"1" doc:"ID комнаты"`
	Body roomRequest
}

type roomOutput struct {
	Body inventory.Room
}

type roomsOutput struct {
	Body []inventory.Room
}

// ==================== Categories ====================

type categoryRequest struct {
	Name string `json:"name" minLength:"1" doc:"Название категории"`
}

type createCategoryInput struct {
	Body categoryRequest
}

type updateCategoryInput struct {
	ID   int `path:"id" example:"1" doc:"ID категории"`
	Body categoryRequest
}

type categoryOutput struct {
	Body inventory.Category
}

type categoriesOutput struct {
	Body []inventory.Category
}

// ==================== Employees ====================

type employeeRequest struct {
	FullName string `json:"full_name" minLength:"1" doc:"ФИО"`
	Position string `json:"position,omitempty" required:"false" doc:"Должность"`
}

type createEmployeeInput struct {
	Body employeeRequest
}

type updateEmployeeInput struct {
	ID   int `path:"id" example:"1" doc:"ID сотрудника"`
	Body employeeRequest
}

type employeeOutput struct {
	Body inventory.Employee
}

// ==================== Devices ====================

type deviceRequest struct {
	Name            string `json:"name" minLength:"1" doc:"Название"`
	Category        string `json:"type" doc:"Категория"`
	RoomID          int    `json:"room_id" minimum:"1" doc:"ID комнаты"`
	Price           string `json:"price,omitempty" required:"false" doc:"Цена"`
	Status          string `json:"status,omitempty" required:"false" enum:"working,in_stock,repair,broken,decommissioned" doc:"Статус, по умолчанию working"`
	InventoryNumber string `json:"inventory_number,omitempty" required:"false" doc:"Инвентарный номер"`
	Details         string `json:"details,omitempty" required:"false" doc:"Детали"`
	EmployeeID      *int   `json:"employee_id,omitempty" required:"false" nullable:"true" doc:"ID владельца"`
}

func (r deviceRequest) input() inventory.DeviceInput {
	return inventory.DeviceInput{
		Name:            r.Name,
		Category:        r.Category,
		RoomID:          r.RoomID,
		Price:           r.Price,
		Status:          inventory.Status(r.Status),
		InventoryNumber: r.InventoryNumber,
		Details:         r.Details,
		EmployeeID:      r.EmployeeID,
	}
}

type createDeviceInput struct {
	Body deviceRequest
}

type updateDeviceInput struct {
	ID   int `path:"id" example:"1" doc:"ID устройства"`
	Body deviceRequest
}

type deviceOutput struct {
	Body inventory.Device
}
