package layout

// Font descreve família, estilo ("", "B") e tamanho em pontos.
type Font struct {
	Family string
	Style  string
	Size   float64
}

// Column é uma faixa horizontal da página (em mm)
type Column struct {
	X float64
	W float64
}

// Geometry é a tabela única de posições do DANFSe. Todas as seções leem
// daqui em vez de declarar suas próprias colunas.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	// Colunas das seções de 4 colunas (rótulo/valor)
	Columns [4]Column
	// Colunas da seção de totais aproximados
	Thirds [3]Column

	RowHeight float64
	LineWidth float64 // divisórias
	// Espessura da borda da página
	BorderWidth float64

	LabelFont   Font
	ValueFont   Font
	TitleFont   Font
	SectionFont Font
	SmallFont   Font

	// Cabeçalho
	LogoWidth        float64
	TitleX           float64
	TitleW           float64
	MunicipalityX    float64
	MunicipalityW    float64
	MunicipalityFont Font
	HeaderHeight     float64

	// Bloco da chave de acesso
	QRSize            float64
	QROffset          float64 // distância acima da primeira linha de dados
	MessageLineHeight float64

	// Textos livres: a descrição tem limite de linhas e as informações
	// complementares ocupam só o que sobra até a margem inferior
	MaxDescriptionLines int
	InfoLineHeight      float64
}

// DefaultGeometry: A4 retrato, unidades em mm, margem de 5mm.
var DefaultGeometry = Geometry{
	PageWidth:  210,
	PageHeight: 297,
	Margin:     5,

	Columns: [4]Column{{X: 5, W: 45}, {X: 47, W: 50}, {X: 97, W: 50}, {X: 147, W: 45}},
	Thirds:  [3]Column{{X: 5, W: 60}, {X: 62, W: 60}, {X: 122, W: 60}},

	RowHeight:   4,
	LineWidth:   0.2,
	BorderWidth: 0.1,

	LabelFont:   Font{Family: "Helvetica", Style: "B", Size: 7},
	ValueFont:   Font{Family: "Helvetica", Style: "", Size: 8},
	TitleFont:   Font{Family: "Helvetica", Style: "B", Size: 9},
	SectionFont: Font{Family: "Helvetica", Style: "B", Size: 7},
	SmallFont:   Font{Family: "Helvetica", Style: "", Size: 6},

	LogoWidth:        50,
	TitleX:           62,
	TitleW:           50,
	MunicipalityX:    137,
	MunicipalityW:    55,
	MunicipalityFont: Font{Family: "Helvetica", Style: "B", Size: 8},
	HeaderHeight:     12,

	QRSize:            18,
	QROffset:          6,
	MessageLineHeight: 2.5,

	MaxDescriptionLines: 5,
	InfoLineHeight:      3.5,
}

// PrintableWidth é a largura entre as margens
func (g Geometry) PrintableWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// Bottom é o limite inferior da área útil
func (g Geometry) Bottom() float64 {
	return g.PageHeight - g.Margin
}

// Span junta as colunas from..to (inclusive) em uma só
func (g Geometry) Span(from, to int) Column {
	c := g.Columns[from]
	for i := from + 1; i <= to; i++ {
		c.W += g.Columns[i].W
	}
	return c
}
