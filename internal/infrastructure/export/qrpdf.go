package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"

	"invtrack/internal/app/client/label"
	"invtrack/internal/domain/inventory"
)

const PDFType = "application/pdf"

// Сетка листа A4 в миллиметрах
const (
	sheetCols    = 3
	sheetRows    = 11
	labelWidth   = 48.0
	labelHeight  = 22.0
	sheetMargin  = 10.0
	spacingX     = 5.0
	spacingY     = 3.0
	cornerRadius = 2.0
	qrSide       = 16.0
	qrPadding    = 2.0
	qrTop        = 3.0
	qrPixels     = 256
	// 0.5pt
	frameLine = 0.5 * 25.4 / 72
)

// QRFileName возвращает qr_labels_<n>.pdf
func QRFileName(n int) string {
	return fmt.Sprintf("qr_labels_%d.pdf", n)
}

// BuildQRLabelsPDF раскладывает этикетки по листам A4: 3 колонки на 11 рядов,
// сверху вниз и слева направо. На этикетке QR код ссылки на карточку
// устройства, подпись INNO и инвентарный номер (или id, если номера нет).
func BuildQRLabelsPDF(devices []inventory.Device, baseURL string) ([]byte, error) {
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: no devices found", inventory.ErrNotFound)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	perPage := sheetCols * sheetRows
	for i, d := range devices {
		if i%perPage == 0 {
			pdf.AddPage()
		}
		pos := i % perPage
		x := sheetMargin + float64(pos%sheetCols)*(labelWidth+spacingX)
		y := sheetMargin + float64(pos/sheetCols)*(labelHeight+spacingY)

		if err := drawLabel(pdf, tr, d, baseURL, x, y); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawLabel(pdf *gofpdf.Fpdf, tr func(string) string, d inventory.Device, baseURL string, x, y float64) error {
	pdf.SetDrawColor(179, 179, 179)
	pdf.SetFillColor(255, 255, 255)
	pdf.SetLineWidth(frameLine)
	pdf.RoundedRect(x, y, labelWidth, labelHeight, cornerRadius, "1234", "FD")

	qr, err := qrcode.New(label.DeepLinkURL(baseURL, d.ID), qrcode.Medium)
	if err != nil {
		return fmt.Errorf("qr for device %d: %w", d.ID, err)
	}
	qr.DisableBorder = true
	png, err := qr.PNG(qrPixels)
	if err != nil {
		return fmt.Errorf("qr png for device %d: %w", d.ID, err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	name := fmt.Sprintf("qr_%d", d.ID)
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, x+qrPadding, y+qrTop, qrSide, qrSide, false, opts, 0, "")

	contentX := x + qrPadding + qrSide + qrPadding

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.Text(contentX, y+8, "INNO")

	caption := label.Caption(d)
	size := 13.0
	if len(caption) > 10 {
		size = 11
	}
	pdf.SetTextColor(31, 46, 97)
	pdf.SetFont("Helvetica", "B", size)
	pdf.Text(contentX, y+18, tr(caption))

	return pdf.Error()
}
