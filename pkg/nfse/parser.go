package nfse

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fabyo/go-nfse-danfse/internal/extract"
)

// ParsearXML faz o parse de um XML de NFS-e e retorna os dados formatados
//
// Não gera PDF. Apenas extrai e normaliza os campos exibidos no DANFSe.
//
// Retorna ErrParse para XML mal formado ou sem NFSe/infNFSe e
// ErrCampoObrigatorio quando falta o atributo Id.
//
// Exemplo:
//
//	xmlData, _ := os.ReadFile("nota.xml")
//	dados, err := nfse.ParsearXML(xmlData)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Prestador: %s\n", dados.Emitente.Nome)
//	fmt.Printf("Valor: %s\n", dados.ValorServico)
func ParsearXML(xmlData []byte) (*DadosNFSe, error) {
	rec, err := extract.Parse(xmlData, zap.NewNop())
	if err != nil {
		return nil, err
	}

	return convertRecord(rec), nil
}

// ParsearXMLFile faz o parse de um arquivo XML
//
// Exemplo:
//
//	dados, err := nfse.ParsearXMLFile("nota.xml")
func ParsearXMLFile(xmlPath string) (*DadosNFSe, error) {
	xmlData, err := os.ReadFile(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo XML: %w", err)
	}

	return ParsearXML(xmlData)
}

// ExtrairChave extrai a chave de acesso do atributo Id do infNFSe
//
// O prefixo "NFS" é removido.
//
// Exemplo:
//
//	chave, err := nfse.ExtrairChave(xmlData)
//	fmt.Println(chave) // 42045072210987654000123000000000001524061234567890
func ExtrairChave(xmlData []byte) (string, error) {
	rec, err := extract.Parse(xmlData, zap.NewNop())
	if err != nil {
		return "", err
	}
	return rec.AccessKey, nil
}
