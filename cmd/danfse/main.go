package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/fabyo/go-nfse-danfse/internal/config"
	"github.com/fabyo/go-nfse-danfse/pkg/nfse"
)

// exitWithError imprime a mensagem em uma única linha no stdout e encerra
func exitWithError(err error) {
	fmt.Printf("Erro: %v\n", err)
	os.Exit(1)
}

func newLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		zcfg.Level = lvl
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	// Avisos do carregamento do .env vão para o stderr sem prefixo
	log.SetFlags(0)

	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	xmlPath := cfg.XMLPath()
	pdfPath := cfg.PDFPath()

	logger.Info("Gerando DANFSe",
		zap.String("env", cfg.Env),
		zap.String("xml", xmlPath),
		zap.String("pdf", pdfPath))

	gerador := nfse.NewGerador(nfse.Config{
		LogoPath:   cfg.LogoPath,
		QRBaseURL:  cfg.QRBaseURL,
		Secretaria: cfg.Secretaria,
		Fone:       cfg.Fone,
		Email:      cfg.Email,
		Logger:     logger,
	})

	if err := gerador.GerarPDFFile(xmlPath, pdfPath); err != nil {
		logger.Sync()
		exitWithError(err)
	}

	fmt.Printf("PDF gerado com sucesso: %s\n", pdfPath)
}
