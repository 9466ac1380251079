package render

import (
	"github.com/go-pdf/fpdf"

	"github.com/fabyo/go-nfse-danfse/internal/layout"
)

// Measurer calcula quebras de linha com as métricas das fontes do fpdf.
// Não é seguro para uso concorrente; crie um por documento.
type Measurer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func NewMeasurer() *Measurer {
	pdf := fpdf.New("P", "mm", "A4", "")
	return &Measurer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// Lines implementa layout.Measurer
func (m *Measurer) Lines(text string, width float64, font layout.Font) int {
	if text == "" {
		return 0
	}
	m.pdf.SetFont(font.Family, font.Style, font.Size)
	// SplitLines mede byte a byte, como o MultiCell faz com o texto já em cp1252
	return len(m.pdf.SplitLines([]byte(m.tr(text)), width))
}
