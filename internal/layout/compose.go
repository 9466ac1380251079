package layout

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/fabyo/go-nfse-danfse/internal/format"
	"github.com/fabyo/go-nfse-danfse/internal/invoice"
)

// DefaultQRBaseURL é a consulta pública do portal nacional da NFS-e
const DefaultQRBaseURL = "https://www.nfse.gov.br/ConsultaPublica?tpc=1&chave="

const authenticityMessage = "A autenticidade desta NFS-e pode ser verificada pela leitura deste código QR ou pela consulta da chave de acesso no portal nacional da NFS-e"

// Measurer informa quantas linhas um texto ocupa numa largura e fonte.
// O renderizador fornece a implementação com as métricas reais da fonte.
type Measurer interface {
	Lines(text string, width float64, font Font) int
}

// Municipality são os dados da prefeitura exibidos no cabeçalho
type Municipality struct {
	Department string
	Phone      string
	Email      string
}

// Options configura a composição. Campos zerados usam os padrões.
type Options struct {
	Geometry     Geometry
	LogoPath     string
	QRBaseURL    string
	Municipality Municipality
	Measurer     Measurer
}

func (o Options) withDefaults() Options {
	if o.Geometry.PageWidth == 0 {
		o.Geometry = DefaultGeometry
	}
	if o.QRBaseURL == "" {
		o.QRBaseURL = DefaultQRBaseURL
	}
	if o.Municipality.Department == "" {
		o.Municipality.Department = "Secretaria Municipal da Fazenda"
	}
	if o.Measurer == nil {
		o.Measurer = ApproxMeasurer{}
	}
	return o
}

// Cursor é a posição vertical corrente. Cada seção recebe um cursor e
// devolve o cursor logo abaixo do que desenhou.
type Cursor struct {
	Y float64
}

// Down avança o cursor h milímetros
func (c Cursor) Down(h float64) Cursor {
	return Cursor{Y: c.Y + h}
}

// QRPayload monta a URL de consulta pública codificada no QR Code
func QRPayload(baseURL, accessKey string) string {
	if baseURL == "" {
		baseURL = DefaultQRBaseURL
	}
	return baseURL + accessKey
}

// Compose gera a sequência de desenho do DANFSe para o registro.
// É determinística: o mesmo registro com as mesmas opções gera sempre a
// mesma sequência.
func Compose(rec invoice.Record, opts Options) []Instruction {
	opts = opts.withDefaults()
	b := &builder{g: opts.Geometry, opts: opts}

	cur := Cursor{Y: b.g.Margin}
	cur = b.header(rec, cur)
	cur = b.divider(cur)
	cur = b.accessKey(rec, cur)
	cur = b.divider(cur)
	cur = b.issuer(rec, cur)
	cur = b.divider(cur)
	cur = b.recipient(rec, cur)
	cur = b.divider(cur)
	cur = b.service(rec, cur)
	cur = b.divider(cur)
	cur = b.taxation(rec, cur)
	cur = b.divider(cur)
	cur = b.totals(rec, cur)
	cur = b.divider(cur)
	cur = b.approximateTaxes(rec, cur)
	b.additionalInfo(rec, cur)

	// A borda vem por último para envolver tudo o que foi desenhado
	b.border()

	return b.out
}

// builder só acumula instruções; a posição é sempre passada explicitamente.
type builder struct {
	g    Geometry
	opts Options
	out  []Instruction
}

func (b *builder) text(x, y, w, h float64, txt string, font Font, align string) {
	if txt == "" {
		return
	}
	b.out = append(b.out, Instruction{
		Kind: KindText, X: x, Y: y, W: w, H: h,
		Text: txt, Font: font, Align: align,
	})
}

// multiText desenha texto com quebra e devolve a altura ocupada
func (b *builder) multiText(x, y, w, lineHeight float64, txt string, font Font) float64 {
	if txt == "" {
		return 0
	}
	b.out = append(b.out, Instruction{
		Kind: KindMultiText, X: x, Y: y, W: w, H: lineHeight,
		Text: txt, Font: font, Align: AlignLeft,
	})
	n := b.opts.Measurer.Lines(txt, w, font)
	if n < 1 {
		n = 1
	}
	return float64(n) * lineHeight
}

// fit corta txt (com "...") até caber em maxLines linhas de largura w.
// Devolve "" quando nem o início do texto cabe.
func (b *builder) fit(txt string, w float64, font Font, maxLines int) string {
	if txt == "" || maxLines <= 0 {
		return ""
	}
	m := b.opts.Measurer
	if m.Lines(txt, w, font) <= maxLines {
		return txt
	}

	// maior prefixo que ainda cabe
	lo, hi := 0, utf8.RuneCountInString(txt)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if m.Lines(format.Truncate(txt, mid), w, font) <= maxLines {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 {
		return ""
	}
	return format.Truncate(txt, lo)
}

func (b *builder) line(x1, y1, x2, y2 float64) {
	b.out = append(b.out, Instruction{
		Kind: KindLine, X: x1, Y: y1, X2: x2, Y2: y2,
		LineWidth: b.g.LineWidth,
	})
}

// sectionTitle: título em negrito ocupando toda a largura útil
func (b *builder) sectionTitle(cur Cursor, title string) Cursor {
	b.text(b.g.Margin, cur.Y, b.g.PrintableWidth(), b.g.RowHeight, title, b.g.SectionFont, AlignLeft)
	return cur.Down(b.g.RowHeight)
}

// divider: linha horizontal entre seções
func (b *builder) divider(cur Cursor) Cursor {
	b.line(b.g.Margin, cur.Y, b.g.PageWidth-b.g.Margin, cur.Y)
	return cur.Down(2)
}

// Slot é uma célula rotulada: rótulo na primeira linha, valor logo abaixo.
type Slot struct {
	Label string
	Value string
}

// slots desenha um par de linhas (rótulos/valores) nas colunas dadas
func (b *builder) slots(cur Cursor, cols []Column, slots ...Slot) Cursor {
	h := b.g.RowHeight
	for i, s := range slots {
		c := cols[i]
		b.text(c.X, cur.Y, c.W, h, s.Label, b.g.LabelFont, AlignLeft)
		b.text(c.X, cur.Y+h, c.W, h, s.Value, b.g.ValueFont, AlignLeft)
	}
	return cur.Down(2 * h)
}

// row4 usa as quatro colunas padrão
func (b *builder) row4(cur Cursor, a, c, d, e Slot) Cursor {
	return b.slots(cur, b.g.Columns[:], a, c, d, e)
}

func (b *builder) border() {
	m := b.g.Margin
	b.out = append(b.out, Instruction{
		Kind: KindRect,
		X:    m - 3,
		Y:    m - 3,
		// Geometria herdada do leiaute de referência, não simplificar.
		W:         b.g.PageWidth - (2*m - 5),
		H:         b.g.PageHeight - (2*m - 5),
		LineWidth: b.g.BorderWidth,
		Style:     "D",
	})
}

// joinNonEmpty junta apenas as partes não vazias
func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// ApproxMeasurer estima a quebra de linha pela largura média da Helvetica.
// Serve quando não há renderizador à mão (ex: testes).
type ApproxMeasurer struct{}

func (ApproxMeasurer) Lines(text string, width float64, font Font) int {
	if text == "" || width <= 0 {
		return 0
	}
	// meio em por caractere, convertido de pt para mm
	charW := font.Size * 0.5 * 25.4 / 72
	perLine := math.Floor(width / charW)
	if perLine < 1 {
		perLine = 1
	}
	return int(math.Ceil(float64(utf8.RuneCountInString(text)) / perLine))
}
