package client

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"

	"invtrack/internal/domain/inventory"
)

// QRParam - параметр ссылки, открывающий карточку устройства
const QRParam = "qr_id"

// Navigation - состояние навигации при запуске
type Navigation struct {
	QRID  string
	HasQR bool
}

// ParseNavigation принимает полный URL, строку запроса с "?" или без него
func ParseNavigation(raw string) (Navigation, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Navigation{}, nil
	}

	query := raw
	if strings.Contains(raw, "://") || strings.HasPrefix(raw, "/") {
		u, err := url.Parse(raw)
		if err != nil {
			return Navigation{}, fmt.Errorf("ошибка разбора ссылки: %w", err)
		}
		query = u.RawQuery
	}
	query = strings.TrimPrefix(query, "?")

	values, err := url.ParseQuery(query)
	if err != nil {
		return Navigation{}, fmt.Errorf("ошибка разбора параметров: %w", err)
	}
	if !values.Has(QRParam) {
		return Navigation{}, nil
	}

	return Navigation{QRID: values.Get(QRParam), HasQR: true}, nil
}

// DeepLinkResolver сопоставляет qr_id с загруженными устройствами. Параметр
// используется один раз за загрузку: после первой непустой коллекции
// повторного разбора не будет.
type DeepLinkResolver struct {
	nav      Navigation
	consumed bool
	log      *slog.Logger
}

func NewDeepLinkResolver(nav Navigation, log *slog.Logger) *DeepLinkResolver {
	return &DeepLinkResolver{
		nav:      nav,
		consumed: !nav.HasQR,
		log:      log,
	}
}

// Pending сообщает, что параметр еще не использован
func (r *DeepLinkResolver) Pending() bool {
	return !r.consumed
}

// Resolve ищет устройство по qr_id. До первой непустой коллекции ничего не
// делает. Промах не является ошибкой.
func (r *DeepLinkResolver) Resolve(devices []inventory.Device) (inventory.Device, bool) {
	if r.consumed || len(devices) == 0 {
		return inventory.Device{}, false
	}
	r.consumed = true

	id, err := parseQRID(r.nav.QRID)
	if err != nil {
		r.log.Debug("qr_id не является числом", slog.String("qr_id", r.nav.QRID))
		return inventory.Device{}, false
	}

	for _, d := range devices {
		if d.ID == id {
			r.log.Debug("Открыта карточка устройства", slog.Int("id", id))
			return d, true
		}
	}

	r.log.Debug("Устройство по qr_id не найдено", slog.Int("id", id))
	return inventory.Device{}, false
}

// parseQRID берет цифры после пробелов и необязательного знака до первого
// другого символа: "5abc" и "5.0" дают 5, "abc" - ошибку
func parseQRID(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("qr_id %q: %w", raw, strconv.ErrSyntax)
	}
	return strconv.Atoi(s[:end])
}
