package label

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"invtrack/internal/domain/inventory"
)

const (
	qrSize     = 150
	textHeight = 40
)

// DeepLinkURL строит ссылку, которая открывает карточку устройства
func DeepLinkURL(baseURL string, id int) string {
	return strings.TrimRight(baseURL, "/") + "/?qr_id=" + strconv.Itoa(id)
}

// Caption - подпись под кодом: инвентарный номер или id
func Caption(d inventory.Device) string {
	if inv := strings.TrimSpace(d.InventoryNumber); inv != "" {
		return inv
	}
	return strconv.Itoa(d.ID)
}

// FileName - имя файла вида qr_<инвентарный номер>.png
func FileName(d inventory.Device) string {
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(Caption(d))
	return "qr_" + name + ".png"
}

// Render рисует PNG: QR код ссылки на устройство и подпись под ним
func Render(d inventory.Device, baseURL string) ([]byte, error) {
	qr, err := qrcode.New(DeepLinkURL(baseURL, d.ID), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации QR кода: %w", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, qrSize, qrSize+textHeight))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, qrSize, qrSize), qr.Image(qrSize), image.Point{}, draw.Over)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}
	text := Caption(d)
	x := (fixed.I(qrSize) - drawer.MeasureString(text)) / 2
	if x < 0 {
		x = 0
	}
	drawer.Dot = fixed.Point26_6{X: x, Y: fixed.I(qrSize + textHeight/2 + 5)}
	drawer.DrawString(text)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("ошибка кодирования PNG: %w", err)
	}

	return buf.Bytes(), nil
}
