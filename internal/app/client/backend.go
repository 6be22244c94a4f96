package client

import (
	"context"
	"io"

	"invtrack/internal/domain/inventory"
)

// Kind - вид сущности, он же сегмент пути REST API
type Kind string

const (
	KindDevice   Kind = "devices"
	KindRoom     Kind = "rooms"
	KindCategory Kind = "categories"
	KindEmployee Kind = "employees"
)

type ReportFetcher interface {
	Report(ctx context.Context) (inventory.Report, error)
}

type Authenticator interface {
	// Login возвращает роль пользователя, выданную сервисом
	Login(ctx context.Context, username, password string) (string, error)
}

type Mutator interface {
	Create(ctx context.Context, kind Kind, body any) error
	Update(ctx context.Context, kind Kind, id int, body any) error
	Delete(ctx context.Context, kind Kind, id int) error
	ImportExcel(ctx context.Context, filename string, r io.Reader) (string, error)
}

// File - файл, сформированный сервисом данных
type File struct {
	Name string
	Data []byte
}

type Exporter interface {
	ExportExcel(ctx context.Context, lang string) (File, error)
	ExportQRPDF(ctx context.Context, ids []int) (File, error)
	Backup(ctx context.Context) (File, error)
}

// Backend - все операции сервиса данных, которые использует клиент
type Backend interface {
	ReportFetcher
	Authenticator
	Mutator
	Exporter
	HealthCheck(ctx context.Context) error
}
