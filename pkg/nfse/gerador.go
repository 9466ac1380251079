package nfse

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/fabyo/go-nfse-danfse/internal/config"
	"github.com/fabyo/go-nfse-danfse/internal/extract"
	"github.com/fabyo/go-nfse-danfse/internal/invoice"
	"github.com/fabyo/go-nfse-danfse/internal/layout"
	"github.com/fabyo/go-nfse-danfse/internal/render"
)

// Instrucao é uma operação de desenho do DANFSe (texto, linha, imagem, QR Code)
type Instrucao = layout.Instruction

// Gerador gera o DANFSe em PDF a partir do XML da NFS-e.
// Guarda apenas configuração e pode ser usado por várias goroutines.
type Gerador struct {
	cfg Config
	log *zap.Logger
}

// Config representa as configurações do gerador
type Config struct {
	// Caminho do logotipo do cabeçalho (opcional, ignorado se não existir)
	LogoPath string
	// URL base do QR Code (opcional, usa a consulta pública nacional se vazio)
	QRBaseURL string

	// Dados da prefeitura exibidos no cabeçalho
	Secretaria string
	Fone       string
	Email      string

	// Logger (opcional, nil desativa os logs)
	Logger *zap.Logger
}

// NewGerador cria um novo gerador de DANFSe
//
// Exemplo:
//
//	gerador := nfse.NewGerador(nfse.Config{
//	    LogoPath:   "assets/logo.png",
//	    Secretaria: "Secretaria Municipal da Fazenda",
//	    Fone:       "(48)3431-0074",
//	})
func NewGerador(cfg Config) *Gerador {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Gerador{cfg: cfg, log: log}
}

// NewGeradorFromEnv cria um gerador usando variáveis de ambiente
// Lê de .env.production ou .env.<NFSE_ENV> automaticamente
//
// Variáveis usadas:
//   - NFSE_LOGO_PATH
//   - NFSE_QR_BASE_URL
//   - NFSE_MUNICIPIO_SECRETARIA
//   - NFSE_MUNICIPIO_FONE
//   - NFSE_MUNICIPIO_EMAIL
//
// Exemplo:
//
//	gerador := nfse.NewGeradorFromEnv()
func NewGeradorFromEnv() *Gerador {
	return NewGerador(configFromEnv(config.Load()))
}

// configFromEnv converte a configuração carregada do ambiente
func configFromEnv(c *config.Config) Config {
	return Config{
		LogoPath:   c.LogoPath,
		QRBaseURL:  c.QRBaseURL,
		Secretaria: c.Secretaria,
		Fone:       c.Fone,
		Email:      c.Email,
	}
}

// Compor extrai os dados do XML e monta a sequência de instruções de desenho
// do DANFSe, sem gerar o PDF.
//
// Exemplo:
//
//	instrucoes, err := gerador.Compor(xmlData)
//	fmt.Println(len(instrucoes))
func (g *Gerador) Compor(xmlData []byte) ([]Instrucao, error) {
	_, instrs, err := g.compose(xmlData)
	return instrs, err
}

// GerarPDF gera o DANFSe e grava o PDF em w
//
// Nada é escrito em w se o XML for inválido.
//
// Exemplo:
//
//	var buf bytes.Buffer
//	if err := gerador.GerarPDF(xmlData, &buf); err != nil {
//	    log.Fatal(err)
//	}
func (g *Gerador) GerarPDF(xmlData []byte, w io.Writer) error {
	rec, instrs, err := g.compose(xmlData)
	if err != nil {
		return err
	}
	return g.renderer(rec).WriteTo(w, instrs)
}

// GerarPDFFile lê o XML de xmlPath e grava o DANFSe em pdfPath
//
// O arquivo PDF só é criado quando o documento foi gerado por completo.
//
// Exemplo:
//
//	err := gerador.GerarPDFFile("nfe-15.xml", "nfe-15.pdf")
func (g *Gerador) GerarPDFFile(xmlPath, pdfPath string) error {
	xmlData, err := os.ReadFile(xmlPath)
	if err != nil {
		return fmt.Errorf("erro ao ler arquivo XML: %w", err)
	}

	rec, instrs, err := g.compose(xmlData)
	if err != nil {
		return err
	}
	return g.renderer(rec).WriteFile(pdfPath, instrs)
}

func (g *Gerador) compose(xmlData []byte) (invoice.Record, []layout.Instruction, error) {
	rec, err := extract.Parse(xmlData, g.log)
	if err != nil {
		g.log.Warn("XML de NFS-e rejeitado", zap.Error(err))
		return invoice.Record{}, nil, err
	}

	instrs := layout.Compose(rec, layout.Options{
		LogoPath:  g.cfg.LogoPath,
		QRBaseURL: g.cfg.QRBaseURL,
		Municipality: layout.Municipality{
			Department: g.cfg.Secretaria,
			Phone:      g.cfg.Fone,
			Email:      g.cfg.Email,
		},
		Measurer: render.NewMeasurer(),
	})

	g.log.Debug("DANFSe composto",
		zap.String("chave", rec.AccessKey),
		zap.Int("instrucoes", len(instrs)))

	return rec, instrs, nil
}

func (g *Gerador) renderer(rec invoice.Record) *render.Renderer {
	return render.New(render.Options{
		Timestamp: processedAt(rec.ProcessingTimestamp),
		Logger:    g.log,
	})
}

// processedAt converte dhProc já formatado; zero quando não reconhecido
func processedAt(s string) time.Time {
	t, err := time.Parse("02/01/2006 15:04:05", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
