package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Env     string
	WorkDir string
	XMLFile string
	PDFFile string

	LogoPath  string
	QRBaseURL string

	// Dados da prefeitura no cabeçalho do DANFSe
	Secretaria string
	Fone       string
	Email      string

	LogLevel string
}

// Load carrega a configuração com base na variável NFSE_ENV ou padroniza para 'production'.
func Load() *Config {
	// Pega NFSE_ENV do ambiente global para decidir qual arquivo carregar
	env := getenv("NFSE_ENV", "production")

	// Cria o nome do arquivo (ex: .env.production)
	envFile := fmt.Sprintf(".env.%s", env)

	// Variáveis já definidas no ambiente têm prioridade sobre o arquivo
	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Aviso: Arquivo de ambiente '%s' não encontrado. Usando variáveis de ambiente do sistema.", envFile)
		} else {
			log.Printf("Aviso: Falha ao carregar arquivo de ambiente %s: %v", envFile, err)
		}
	}

	return &Config{
		Env:        env,
		WorkDir:    getenv("NFSE_WORKDIR", "."),
		XMLFile:    getenv("NFSE_XML_FILE", "nfe-15.xml"),
		PDFFile:    getenv("NFSE_PDF_FILE", "nfe-15.pdf"),
		LogoPath:   os.Getenv("NFSE_LOGO_PATH"),
		QRBaseURL:  os.Getenv("NFSE_QR_BASE_URL"),
		Secretaria: getenv("NFSE_MUNICIPIO_SECRETARIA", "Secretaria Municipal da Fazenda"),
		Fone:       os.Getenv("NFSE_MUNICIPIO_FONE"),
		Email:      os.Getenv("NFSE_MUNICIPIO_EMAIL"),
		LogLevel:   getenv("NFSE_LOG_LEVEL", "warn"),
	}
}

// XMLPath é o caminho do XML de entrada relativo ao diretório de trabalho
func (c *Config) XMLPath() string {
	return c.resolve(c.XMLFile)
}

// PDFPath é o caminho do PDF de saída relativo ao diretório de trabalho
func (c *Config) PDFPath() string {
	return c.resolve(c.PDFFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.WorkDir, name)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
