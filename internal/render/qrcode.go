package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// Resolução do QR Code em pixels antes de ser posicionado na página
const qrPixels = 256

// qrPNG gera o QR Code (correção de erro L) como PNG em tons de cinza de 8 bits.
// O fpdf não aceita PNG com 16 bits por canal, que é o modelo do barcode.
func qrPNG(payload string) ([]byte, error) {
	code, err := qr.Encode(payload, qr.L, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("erro ao codificar QR Code: %w", err)
	}

	scaled, err := barcode.Scale(code, qrPixels, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("erro ao redimensionar QR Code: %w", err)
	}

	gray := image.NewGray(scaled.Bounds())
	draw.Draw(gray, gray.Bounds(), scaled, scaled.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("erro ao gerar PNG do QR Code: %w", err)
	}
	return buf.Bytes(), nil
}
