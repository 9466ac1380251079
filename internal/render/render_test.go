package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fabyo/go-nfse-danfse/internal/invoice"
	"github.com/fabyo/go-nfse-danfse/internal/layout"
)

func sampleInstructions(t *testing.T, opts layout.Options) []layout.Instruction {
	t.Helper()
	rec := invoice.Record{
		AccessKey:     "42045072210987654000123000000000001524061234567890",
		NFSeNumber:    "15",
		IssuancePlace: "Criciúma",
		Issuer:        invoice.Party{Name: "EMPRESA DE SOFTWARE LTDA", TaxID: "10.987.654/0001-23"},
		Service:       invoice.Service{Description: "Desenvolvimento de sistema de gestão"},
	}
	if opts.Measurer == nil {
		opts.Measurer = NewMeasurer()
	}
	return layout.Compose(rec, opts)
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	if err := New(Options{}).WriteTo(&buf, sampleInstructions(t, layout.Options{})); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("saída não começa com %PDF")
	}
}

func TestWriteToIsDeterministic(t *testing.T) {
	instrs := sampleInstructions(t, layout.Options{})

	var a, b bytes.Buffer
	if err := New(Options{}).WriteTo(&a, instrs); err != nil {
		t.Fatal(err)
	}
	if err := New(Options{}).WriteTo(&b, instrs); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("a mesma entrada gerou PDFs diferentes")
	}
}

func TestMissingLogoIsSkipped(t *testing.T) {
	instrs := sampleInstructions(t, layout.Options{LogoPath: filepath.Join(t.TempDir(), "nao-existe.png")})

	var buf bytes.Buffer
	if err := New(Options{}).WriteTo(&buf, instrs); err != nil {
		t.Fatalf("logo ausente não deveria falhar: %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "danfse.pdf")

	if err := New(Options{}).WriteFile(path, sampleInstructions(t, layout.Options{})); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("lendo PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("arquivo não é PDF")
	}

	// Nenhum temporário deve sobrar no diretório
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("arquivos no diretório = %d, want 1", len(entries))
	}
}

func TestWriteFileInvalidDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nao", "existe", "danfse.pdf")

	if err := New(Options{}).WriteFile(path, sampleInstructions(t, layout.Options{})); err == nil {
		t.Fatal("esperava erro para diretório inexistente")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("arquivo não deveria existir")
	}
}

func TestQRPNG(t *testing.T) {
	img, err := qrPNG(layout.QRPayload("", "123"))
	if err != nil {
		t.Fatalf("qrPNG: %v", err)
	}
	if !bytes.HasPrefix(img, []byte("\x89PNG")) {
		t.Fatal("não é PNG")
	}
}

func TestMeasurer(t *testing.T) {
	m := NewMeasurer()
	font := layout.DefaultGeometry.SmallFont

	if n := m.Lines("", 43, font); n != 0 {
		t.Errorf("vazio = %d", n)
	}
	if n := m.Lines("curto", 43, font); n != 1 {
		t.Errorf("curto = %d", n)
	}
	long := "A autenticidade desta NFS-e pode ser verificada pela leitura deste código QR ou pela consulta da chave de acesso no portal nacional da NFS-e"
	if n := m.Lines(long, 43, font); n < 2 {
		t.Errorf("mensagem longa = %d linhas", n)
	}
}

func TestMeasurerAccentedText(t *testing.T) {
	m := NewMeasurer()
	font := layout.DefaultGeometry.ValueFont

	tests := []struct {
		text    string
		width   float64
		minimum int
	}{
		{"código", 43, 1},
		{"Análise e manutenção de software", 190, 1},
		{"ÁÉÍÓÚ ÂÊÔ ÃÕ Ç à ü", 43, 1},
		{strings.Repeat("ção ", 60), 43, 3},
	}

	for _, tt := range tests {
		if n := m.Lines(tt.text, tt.width, font); n < tt.minimum {
			t.Errorf("Lines(%q) = %d, want >= %d", tt.text, n, tt.minimum)
		}
	}
}
