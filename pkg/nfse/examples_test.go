package nfse_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/fabyo/go-nfse-danfse/pkg/nfse"
)

// Exemplo: extrair a chave de acesso do XML
func ExampleExtrairChave() {
	xmlData := []byte(`<NFSe xmlns="http://www.sped.fazenda.gov.br/nfse"><infNFSe Id="NFS35240600000001"/></NFSe>`)

	chave, err := nfse.ExtrairChave(xmlData)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(chave)
	// Output: 35240600000001
}

// Exemplo: fazer parse do XML sem gerar PDF
func ExampleParsearXML() {
	xmlData, err := os.ReadFile("testdata/nfse.xml")
	if err != nil {
		log.Fatal(err)
	}

	dados, err := nfse.ParsearXML(xmlData)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Prestador: %s (%s)\n", dados.Emitente.Nome, dados.Emitente.Documento)
	fmt.Printf("Valor: %s\n", dados.ValorServico)
	// Output:
	// Prestador: EMPRESA DE SOFTWARE LTDA (10.987.654/0001-23)
	// Valor: R$ 1.500,00
}

// Exemplo: gerar o PDF em memória
func ExampleGerador_GerarPDF() {
	gerador := nfse.NewGerador(nfse.Config{
		Secretaria: "Secretaria Municipal da Fazenda",
		Fone:       "(48)3431-0074",
	})

	xmlData, err := os.ReadFile("testdata/nfse.xml")
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	if err := gerador.GerarPDF(xmlData, &buf); err != nil {
		log.Fatal(err)
	}

	fmt.Println(bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	// Output: true
}

// Exemplo: gerar o PDF a partir de arquivos, configurado pelo ambiente
func ExampleGerador_GerarPDFFile() {
	gerador := nfse.NewGeradorFromEnv()

	if err := gerador.GerarPDFFile("nfe-15.xml", "nfe-15.pdf"); err != nil {
		fmt.Println("Erro:", err)
		return
	}

	fmt.Println("PDF gerado com sucesso: nfe-15.pdf")
}
