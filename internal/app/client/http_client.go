package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"invtrack/internal/app/client/config"
	"invtrack/internal/domain/inventory"
)

const requestIDHeader = "X-Request-ID"

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	baseURL := cfg.ServerAddress
	if !strings.Contains(baseURL, "://") {
		scheme := "http://"
		if cfg.EnableTLS {
			scheme = "https://"
		}
		baseURL = scheme + baseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("некорректный адрес сервера: %w", err)
	}

	return &httpClient{
		client:    client,
		log:       log.With(slog.String("component", "http_client")),
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "Invtrack-Client/1.0",
	}, nil
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) Login(ctx context.Context, username, password string) (string, error) {
	req := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{
		Username: username,
		Password: password,
	}

	resp, err := h.doRequest(ctx, http.MethodPost, "/login", req)
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Success bool   `json:"success"`
		Role    string `json:"role"`
	}
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}
	if !loginResp.Success {
		return "", errors.New("неверные учетные данные")
	}

	return loginResp.Role, nil
}

// Report загружает полный иерархический отчет
func (h *httpClient) Report(ctx context.Context) (inventory.Report, error) {
	var report inventory.Report

	resp, err := h.doRequest(ctx, http.MethodGet, "/report", nil)
	if err != nil {
		return report, err
	}

	if err := h.parseResponse(resp, &report); err != nil {
		return report, err
	}

	return report, nil
}

func (h *httpClient) Create(ctx context.Context, kind Kind, body any) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/"+string(kind)+"/", body)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) Update(ctx context.Context, kind Kind, id int, body any) error {
	resp, err := h.doRequest(ctx, http.MethodPut, fmt.Sprintf("/%s/%d", kind, id), body)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) Delete(ctx context.Context, kind Kind, id int) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/%s/%d", kind, id), nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

// ImportExcel отправляет таблицу в поле file multipart формы
func (h *httpClient) ImportExcel(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("ошибка создания формы: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("ошибка чтения файла: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("ошибка создания формы: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/import_excel", &buf)
	if err != nil {
		return "", fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := h.do(req)
	if err != nil {
		return "", err
	}

	var importResp struct {
		Message string `json:"message"`
	}
	if err := h.parseResponse(resp, &importResp); err != nil {
		return "", err
	}

	return importResp.Message, nil
}

func (h *httpClient) ExportExcel(ctx context.Context, lang string) (File, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/export_excel?lang="+url.QueryEscape(lang), nil)
	if err != nil {
		return File{}, err
	}

	return h.readFile(resp, "inventory_"+lang+".xlsx")
}

func (h *httpClient) ExportQRPDF(ctx context.Context, ids []int) (File, error) {
	req := struct {
		DeviceIDs []int `json:"device_ids"`
	}{
		DeviceIDs: ids,
	}

	resp, err := h.doRequest(ctx, http.MethodPost, "/export_qr_pdf", req)
	if err != nil {
		return File{}, err
	}

	return h.readFile(resp, fmt.Sprintf("qr_labels_%d.pdf", len(ids)))
}

func (h *httpClient) Backup(ctx context.Context) (File, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/backup_database", nil)
	if err != nil {
		return File{}, err
	}

	return h.readFile(resp, "backup.json")
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return h.do(req)
}

func (h *httpClient) do(req *http.Request) (*http.Response, error) {
	requestID := uuid.New().String()
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set(requestIDHeader, requestID)

	h.log.Debug("Отправка запроса",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("request_id", requestID),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		slog.Int("status", resp.StatusCode),
		slog.Int("size", len(body)),
	)

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, body)
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

// readFile читает бинарный ответ, имя берется из Content-Disposition
func (h *httpClient) readFile(resp *http.Response, fallbackName string) (File, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return File{}, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode >= 400 {
		return File{}, statusError(resp.StatusCode, body)
	}

	name := fallbackName
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			name = params["filename"]
		}
	}

	h.log.Debug("Получен файл", slog.String("name", name), slog.Int("size", len(body)))
	return File{Name: name, Data: body}, nil
}

func statusError(code int, body []byte) error {
	var errResp struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return &StatusError{Code: code, Message: errResp.Error}
		}
		if errResp.Detail != "" {
			return &StatusError{Code: code, Message: errResp.Detail}
		}
	}
	return &StatusError{Code: code}
}
