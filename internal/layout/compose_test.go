package layout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fabyo/go-nfse-danfse/internal/invoice"
)

func sampleRecord() invoice.Record {
	return invoice.Record{
		AccessKey:                 "42045072210987654000123000000000001524061234567890",
		NFSeNumber:                "15",
		ProcessingTimestamp:       "10/06/2024 14:32:07",
		IssuancePlace:             "Criciúma",
		ServicePlace:              "Criciúma",
		TaxIncidencePlace:         "Criciúma",
		NationalTaxClassification: "Análise e desenvolvimento de sistemas, inclusive manutenção de software.",
		Issuer: invoice.Party{
			TaxID: "10.987.654/0001-23",
			Name:  "EMPRESA DE SOFTWARE LTDA",
			Address: invoice.Address{
				Street: "Rua Henrique Lage", Number: "123", District: "Centro",
				State: "SC", PostalCode: "88801-010",
			},
			Phone: "(48) 99988-7766",
			Email: "contato@empresa.com.br",
		},
		Recipient: invoice.Party{
			TaxID: "123.456.789-09",
			Name:  "FULANO DE TAL",
			Address: invoice.Address{
				Street: "Rua A", Number: "10", District: "Centro", PostalCode: "88802-000",
			},
		},
		Service: invoice.Service{
			NationalCode: "01.01.01",
			Description:  "Desenvolvimento de sistema",
		},
		Amounts: invoice.Amounts{
			ServiceValue:  decimal.RequireFromString("1500"),
			NetValue:      decimal.RequireFromString("1455.5"),
			TotalWithheld: decimal.RequireFromString("44.5"),
		},
		DPS: invoice.DPS{Number: "15", Series: "1", Competence: "10/06/2024", IssuedAt: "10/06/2024 14:30:00"},
		Taxation: invoice.Taxation{
			ISSQNTaxation:  "1",
			ISSQNRetention: "1",
			FederalPercent: decimal.RequireFromString("4.5"),
		},
	}
}

// fixedMeasurer devolve sempre o mesmo número de linhas
type fixedMeasurer int

func (m fixedMeasurer) Lines(string, float64, Font) int { return int(m) }

func texts(instrs []Instruction) []string {
	var out []string
	for _, in := range instrs {
		if in.Kind == KindText || in.Kind == KindMultiText {
			out = append(out, in.Text)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestComposeIsDeterministic(t *testing.T) {
	rec := sampleRecord()
	a := Compose(rec, Options{})
	b := Compose(rec, Options{})

	if len(a) == 0 {
		t.Fatal("nenhuma instrução gerada")
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Compose gerou sequências diferentes para o mesmo registro")
	}
}

func TestComposeBorderIsLast(t *testing.T) {
	instrs := Compose(sampleRecord(), Options{})
	last := instrs[len(instrs)-1]

	want := Instruction{Kind: KindRect, X: 2, Y: 2, W: 205, H: 292, LineWidth: 0.1, Style: "D"}
	if last != want {
		t.Fatalf("última instrução = %+v, want %+v", last, want)
	}
}

func TestComposeQRCode(t *testing.T) {
	rec := sampleRecord()
	instrs := Compose(rec, Options{})

	var qr *Instruction
	for i := range instrs {
		if instrs[i].Kind == KindQRCode {
			qr = &instrs[i]
		}
	}
	if qr == nil {
		t.Fatal("QR Code não encontrado")
	}

	if want := DefaultQRBaseURL + rec.AccessKey; qr.Text != want {
		t.Errorf("payload = %q, want %q", qr.Text, want)
	}
	if qr.W != 18 || qr.H != 18 {
		t.Errorf("tamanho = %vx%v", qr.W, qr.H)
	}

	c4 := DefaultGeometry.Columns[3]
	if qr.X != c4.X+(c4.W-18)/2 {
		t.Errorf("QR não centralizado na 4ª coluna: x=%v", qr.X)
	}

	// Nenhum texto das colunas 1-3 pode invadir a área do QR
	for _, in := range instrs {
		if in.Kind != KindText || in.Y < qr.Y || in.Y > qr.Y+qr.H {
			continue
		}
		if in.X >= c4.X {
			continue
		}
		if in.W < 100 && in.X+in.W > qr.X {
			t.Errorf("texto %q sobrepõe o QR Code", in.Text)
		}
	}
}

func TestComposeQRBaseURLOverride(t *testing.T) {
	instrs := Compose(sampleRecord(), Options{QRBaseURL: "https://homolog.example/?chave="})
	for _, in := range instrs {
		if in.Kind == KindQRCode && !strings.HasPrefix(in.Text, "https://homolog.example/?chave=") {
			t.Errorf("payload = %q", in.Text)
		}
	}
}

func TestComposeValues(t *testing.T) {
	got := texts(Compose(sampleRecord(), Options{}))

	want := []string{
		"DANFSe v1.0",
		"Prefeitura Municipal de Criciúma",
		"Secretaria Municipal da Fazenda",
		"42045072210987654000123000000000001524061234567890",
		"10.987.654/0001-23",
		"Rua Henrique Lage, 123, Centro",
		"Criciúma - SC",
		"Rua A, 10, Centro",
		"01.01.01 - Análise e desenvolvimento de sistemas, i...",
		"Operação Tributável",
		"Não Retido",
		"Nenhum",
		"R$ 1.500,00",
		"R$ 1.455,50",
		"R$ 44,50",
		"4,50 %",
		"0,00 %",
		"INFORMAÇÕES COMPLEMENTARES",
	}
	for _, w := range want {
		if !contains(got, w) {
			t.Errorf("texto %q não encontrado", w)
		}
	}

	for _, s := range got {
		if strings.Contains(s, ", ,") {
			t.Errorf("endereço com segmento vazio: %q", s)
		}
	}
}

// Campos sem dado no leiaute aparecem como "-"
func TestComposeDashPlaceholders(t *testing.T) {
	instrs := Compose(sampleRecord(), Options{})

	var labelY float64
	var labelX float64
	for _, in := range instrs {
		if in.Text == "Inscrição Municipal" {
			labelX, labelY = in.X, in.Y
			break
		}
	}
	found := false
	for _, in := range instrs {
		if in.Kind == KindText && in.X == labelX && in.Y == labelY+DefaultGeometry.RowHeight && in.Text == "-" {
			found = true
		}
	}
	if !found {
		t.Error("valor \"-\" não encontrado abaixo de Inscrição Municipal")
	}
}

func TestComposeDividers(t *testing.T) {
	var lines []Instruction
	for _, in := range Compose(sampleRecord(), Options{}) {
		if in.Kind == KindLine {
			lines = append(lines, in)
		}
	}

	if len(lines) != 7 {
		t.Fatalf("divisórias = %d, want 7", len(lines))
	}
	for i, l := range lines {
		if l.X != 5 || l.X2 != 205 || l.Y != l.Y2 {
			t.Errorf("divisória %d = %+v", i, l)
		}
		if i > 0 && l.Y <= lines[i-1].Y {
			t.Errorf("divisória %d fora de ordem", i)
		}
	}
}

// A altura da mensagem ao lado do QR Code empurra as seções seguintes
func TestComposeUsesMeasurer(t *testing.T) {
	secondDivider := func(m Measurer) float64 {
		n := 0
		for _, in := range Compose(sampleRecord(), Options{Measurer: m}) {
			if in.Kind == KindLine {
				n++
				if n == 2 {
					return in.Y
				}
			}
		}
		return 0
	}

	short := secondDivider(fixedMeasurer(1))
	long := secondDivider(fixedMeasurer(10))
	if diff := long - short; diff != 19 {
		t.Errorf("diferença = %v, want 19", diff)
	}
}

func TestComposeFitsOnePage(t *testing.T) {
	rec := sampleRecord()
	rec.Service.AdditionalInfo = "Pagamento via PIX."

	g := DefaultGeometry
	for _, in := range Compose(rec, Options{LogoPath: "logo.png"}) {
		if in.Kind == KindRect {
			continue
		}
		if in.X < 0 || in.Y < 0 || in.Y+in.H > g.PageHeight-g.Margin {
			t.Errorf("instrução fora da página: %+v", in)
		}
	}
}

func TestComposeLongTextStaysOnPage(t *testing.T) {
	rec := sampleRecord()
	rec.Service.Description = strings.Repeat("Manutenção corretiva e evolutiva do sistema de gestão. ", 80)
	rec.Service.AdditionalInfo = strings.Repeat("Pagamento via PIX em três parcelas conforme contrato. ", 120)

	g := DefaultGeometry
	m := ApproxMeasurer{}
	multi := 0
	for _, in := range Compose(rec, Options{}) {
		if in.Kind != KindMultiText {
			continue
		}
		multi++
		lines := m.Lines(in.Text, in.W, in.Font)
		if bottom := in.Y + float64(lines)*in.H; bottom > g.Bottom() {
			t.Errorf("texto termina em %.2f, abaixo de %.2f: %.30q", bottom, g.Bottom(), in.Text)
		}
		if in.Text == authenticityMessage {
			continue
		}
		if !strings.HasSuffix(in.Text, "...") {
			t.Errorf("texto longo não foi cortado: %.30q", in.Text)
		}
		if in.Font == g.ValueFont && in.H == g.RowHeight && lines > g.MaxDescriptionLines {
			t.Errorf("descrição com %d linhas, máximo %d", lines, g.MaxDescriptionLines)
		}
	}
	if multi != 3 {
		t.Errorf("textos com quebra = %d, want 3", multi)
	}
}

func TestComposeAdditionalInfoWithoutRoom(t *testing.T) {
	rec := sampleRecord()
	rec.Service.AdditionalInfo = "Observação"

	// Mensagem do QR Code enorme empurra tudo para o fim da página
	for _, in := range Compose(rec, Options{Measurer: fixedMeasurer(80)}) {
		if in.Kind == KindMultiText && in.Text == "Observação" {
			t.Fatalf("informação complementar desenhada sem espaço: %+v", in)
		}
	}
}

func TestComposeLogo(t *testing.T) {
	instrs := Compose(sampleRecord(), Options{LogoPath: "assets/logo.png"})
	if instrs[0].Kind != KindImage || instrs[0].Text != "assets/logo.png" {
		t.Fatalf("primeira instrução = %+v", instrs[0])
	}

	for _, in := range Compose(sampleRecord(), Options{}) {
		if in.Kind == KindImage {
			t.Fatal("logo desenhado sem caminho configurado")
		}
	}
}

func TestAddressLineWithComplement(t *testing.T) {
	rec := sampleRecord()
	rec.Recipient.Address.Complement = "Sala 3"

	if !contains(texts(Compose(rec, Options{})), "Rua A, 10, Sala 3, Centro") {
		t.Error("complemento não aparece no endereço")
	}
}

func TestApproxMeasurer(t *testing.T) {
	m := ApproxMeasurer{}
	if n := m.Lines("", 40, DefaultGeometry.SmallFont); n != 0 {
		t.Errorf("texto vazio = %d linhas", n)
	}
	if n := m.Lines(authenticityMessage, 43, DefaultGeometry.SmallFont); n < 2 {
		t.Errorf("mensagem = %d linhas, esperava quebra", n)
	}
}
