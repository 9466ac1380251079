package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/fabyo/go-nfse-danfse/internal/layout"
)

// Options configura o documento PDF gerado
type Options struct {
	Geometry layout.Geometry

	// Data gravada como criação/modificação do PDF. Zero usa a época Unix,
	// para que a mesma entrada gere sempre os mesmos bytes.
	Timestamp time.Time

	Logger *zap.Logger
}

// Renderer reproduz as instruções do layout num documento fpdf
type Renderer struct {
	opts Options
	log  *zap.Logger
}

func New(opts Options) *Renderer {
	if opts.Geometry.PageWidth == 0 {
		opts.Geometry = layout.DefaultGeometry
	}
	if opts.Timestamp.IsZero() {
		opts.Timestamp = time.Unix(0, 0).UTC()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{opts: opts, log: log}
}

// WriteTo desenha as instruções e grava o PDF em w (modo "stream").
func (r *Renderer) WriteTo(w io.Writer, instrs []layout.Instruction) error {
	pdf, err := r.build(instrs)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("erro ao gravar PDF: %w", err)
	}
	return nil
}

// WriteFile grava o PDF em path. O arquivo só aparece no destino quando
// o documento foi gerado por completo.
func (r *Renderer) WriteFile(path string, instrs []layout.Instruction) error {
	pdf, err := r.build(instrs)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".danfse-*.pdf")
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := pdf.Output(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("erro ao gravar PDF: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("erro ao fechar PDF: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("erro ao ajustar permissões do PDF: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("erro ao mover PDF para %s: %w", path, err)
	}

	r.log.Info("PDF gravado", zap.String("arquivo", path))
	return nil
}

func (r *Renderer) build(instrs []layout.Instruction) (*fpdf.Fpdf, error) {
	g := r.opts.Geometry

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetCreator("NFS-e PDF Generator", true)
	pdf.SetAuthor("NFS-e System", true)
	pdf.SetTitle("DANFSe", true)
	pdf.SetSubject("Documento Auxiliar da NFS-e", true)
	pdf.SetCreationDate(r.opts.Timestamp)
	pdf.SetModificationDate(r.opts.Timestamp)
	pdf.SetCatalogSort(true)
	pdf.SetMargins(g.Margin, g.Margin, g.Margin)
	pdf.SetAutoPageBreak(false, g.Margin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, in := range instrs {
		switch in.Kind {
		case layout.KindText:
			pdf.SetFont(in.Font.Family, in.Font.Style, in.Font.Size)
			pdf.SetXY(in.X, in.Y)
			pdf.CellFormat(in.W, in.H, tr(in.Text), "", 0, in.Align, false, 0, "")

		case layout.KindMultiText:
			pdf.SetFont(in.Font.Family, in.Font.Style, in.Font.Size)
			pdf.SetXY(in.X, in.Y)
			pdf.MultiCell(in.W, in.H, tr(in.Text), "", in.Align, false)

		case layout.KindLine:
			pdf.SetLineWidth(in.LineWidth)
			pdf.Line(in.X, in.Y, in.X2, in.Y2)

		case layout.KindRect:
			pdf.SetLineWidth(in.LineWidth)
			pdf.Rect(in.X, in.Y, in.W, in.H, in.Style)

		case layout.KindImage:
			if _, err := os.Stat(in.Text); err != nil {
				r.log.Warn("Imagem não encontrada, ignorando", zap.String("arquivo", in.Text), zap.Error(err))
				continue
			}
			pdf.ImageOptions(in.Text, in.X, in.Y, in.W, in.H, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")

		case layout.KindQRCode:
			img, err := qrPNG(in.Text)
			if err != nil {
				return nil, err
			}
			name := fmt.Sprintf("qrcode-%d", i)
			opt := fpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(img))
			pdf.ImageOptions(name, in.X, in.Y, in.W, in.H, false, opt, 0, "")

		default:
			r.log.Warn("Instrução desconhecida", zap.Stringer("kind", in.Kind))
		}

		if pdf.Err() {
			return nil, fmt.Errorf("erro ao desenhar DANFSe (%s): %w", in.Kind, pdf.Error())
		}
	}

	return pdf, nil
}
