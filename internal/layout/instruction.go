package layout

// Kind identifica a operação de desenho
type Kind int

const (
	KindText      Kind = iota // célula de uma linha
	KindMultiText             // texto com quebra de linha
	KindLine
	KindRect
	KindImage
	KindQRCode
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMultiText:
		return "multitext"
	case KindLine:
		return "line"
	case KindRect:
		return "rect"
	case KindImage:
		return "image"
	case KindQRCode:
		return "qrcode"
	}
	return "unknown"
}

// Alinhamentos aceitos pelo renderizador
const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

// Instruction é uma operação de desenho em coordenadas absolutas (mm).
//
// Text guarda o texto da célula, o caminho da imagem ou o conteúdo do QR Code,
// conforme Kind. Para KindLine, (X, Y) é o início e (X2, Y2) o fim.
// Para KindImage, H == 0 mantém a proporção da imagem.
type Instruction struct {
	Kind Kind

	X, Y   float64
	W, H   float64
	X2, Y2 float64

	Text  string
	Font  Font
	Align string

	LineWidth float64
	Style     string // "D" contorno, "F" preenchido
}
