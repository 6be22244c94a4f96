package transfer

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) exportExcelOp() huma.Operation {
	return huma.Operation{
		OperationID: "export-excel",
		Method:      http.MethodGet,
		Path:        "/export_excel",
		Summary:     "Выгрузка в Excel",
		Description: "Все устройства с локализованными заголовками и статусами.",
		Tags:        []string{"transfer"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) importExcelOp() huma.Operation {
	return huma.Operation{
		OperationID: "import-excel",
		Method:      http.MethodPost,
		Path:        "/import_excel",
		Summary:     "Загрузка из Excel",
		Description: "Добавляет устройства из таблицы в поле file. Известные инвентарные номера пропускаются.",
		Tags:        []string{"transfer"},
		Errors:      []int{http.StatusBadRequest},
		Middlewares: h.middleware,
	}
}

func (h *Handler) exportQROp() huma.Operation {
	return huma.Operation{
		OperationID: "export-qr-pdf",
		Method:      http.MethodPost,
		Path:        "/export_qr_pdf",
		Summary:     "Лист QR этикеток",
		Description: "PDF формата A4 с этикетками 48x22 мм для выбранных устройств.",
		Tags:        []string{"transfer"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) backupOp() huma.Operation {
	return huma.Operation{
		OperationID: "backup-database",
		Method:      http.MethodGet,
		Path:        "/backup_database",
		Summary:     "Резервная копия",
		Description: "JSON со всеми комнатами, устройствами, сотрудниками и категориями.",
		Tags:        []string{"transfer"},
		Middlewares: h.middleware,
	}
}
