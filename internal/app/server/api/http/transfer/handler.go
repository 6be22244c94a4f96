package transfer

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"invtrack/internal/app/server/api/http/apierr"
	"invtrack/internal/domain/inventory"
	"invtrack/internal/infrastructure/export"
	"invtrack/internal/observability/metrics"
)

type Handler struct {
	service    inventory.Servicer
	publicURL  string
	now        func() time.Time
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service inventory.Servicer, publicURL string, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		publicURL:  publicURL,
		now:        time.Now,
		log:        log.With(slog.String("component", "transfer_handler")),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.exportExcelOp(), h.exportExcel)
	huma.Register(api, h.importExcelOp(), h.importExcel)
	huma.Register(api, h.exportQROp(), h.exportQR)
	huma.Register(api, h.backupOp(), h.backup)
}

func (h *Handler) exportExcel(ctx context.Context, input *exportExcelInput) (*fileOutput, error) {
	start := time.Now()
	lang := export.NormalizeLang(input.Lang)

	devices, err := h.service.ExportDevices(ctx)
	if err != nil {
		metrics.ObserveExport("xlsx", metrics.ResultError, time.Since(start))
		return nil, apierr.From(h.log, err)
	}

	data, err := export.BuildInventoryXLSX(devices, lang)
	if err != nil {
		metrics.ObserveExport("xlsx", metrics.ResultError, time.Since(start))
		return nil, apierr.From(h.log, err)
	}

	metrics.ObserveExport("xlsx", metrics.ResultSuccess, time.Since(start))
	h.log.Info("excel exported", slog.String("lang", lang), slog.Int("devices", len(devices)))
	return newFileOutput(export.XLSXType, export.ExcelFileName(lang, h.now()), data), nil
}

func (h *Handler) importExcel(ctx context.Context, input *importExcelInput) (*importOutput, error) {
	files := input.RawBody.File["file"]
	if len(files) == 0 {
		return nil, huma.Error400BadRequest("file is required")
	}

	f, err := files[0].Open()
	if err != nil {
		return nil, huma.Error400BadRequest("cannot read uploaded file")
	}
	defer f.Close()

	rows, err := export.ParseInventoryXLSX(f)
	if err != nil {
		h.log.Info("import rejected", slog.String("file", files[0].Filename), slog.String("error", err.Error()))
		return nil, huma.Error400BadRequest("invalid Excel file")
	}

	count, err := h.service.Import(ctx, rows)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	metrics.AddImported(count)
	return &importOutput{Body: importResponse{Message: export.ImportMessage(count)}}, nil
}

func (h *Handler) exportQR(ctx context.Context, input *exportQRInput) (*fileOutput, error) {
	start := time.Now()
	ids := input.Body.DeviceIDs
	if len(ids) == 0 {
		return nil, huma.Error400BadRequest("No device IDs provided")
	}

	devices, err := h.service.LabelDevices(ctx, ids)
	if err != nil {
		metrics.ObserveExport("pdf", metrics.ResultError, time.Since(start))
		if errors.Is(err, inventory.ErrNotFound) {
			return nil, huma.Error404NotFound("No devices found")
		}
		return nil, apierr.From(h.log, err)
	}

	data, err := export.BuildQRLabelsPDF(devices, h.publicURL)
	if err != nil {
		metrics.ObserveExport("pdf", metrics.ResultError, time.Since(start))
		return nil, apierr.From(h.log, err)
	}

	metrics.ObserveExport("pdf", metrics.ResultSuccess, time.Since(start))
	h.log.Info("qr labels exported", slog.Int("requested", len(ids)), slog.Int("printed", len(devices)))
	return newFileOutput(export.PDFType, export.QRFileName(len(devices)), data), nil
}

func (h *Handler) backup(ctx context.Context, _ *struct{}) (*fileOutput, error) {
	start := time.Now()

	report, err := h.service.Report(ctx)
	if err != nil {
		metrics.ObserveExport("json", metrics.ResultError, time.Since(start))
		return nil, apierr.From(h.log, err)
	}

	now := h.now()
	data, err := export.BuildBackupJSON(report, now)
	if err != nil {
		metrics.ObserveExport("json", metrics.ResultError, time.Since(start))
		return nil, apierr.From(h.log, err)
	}

	name := export.BackupFileName(now)
	metrics.ObserveExport("json", metrics.ResultSuccess, time.Since(start))
	h.log.Info("backup created", slog.String("file", name), slog.Int("rooms", len(report.Rooms)))
	return newFileOutput(export.JSONType, name, data), nil
}
