package nfse

// GerarLote gera vários DANFSe em sequência
//
// Recebe um map com o caminho do XML como chave e o caminho do PDF como
// valor. Retorna um map com o resultado de cada XML (nil se gerado).
//
// Exemplo:
//
//	resultados := gerador.GerarLote(map[string]string{
//	    "nota1.xml": "nota1.pdf",
//	    "nota2.xml": "nota2.pdf",
//	})
//
//	for arquivo, err := range resultados {
//	    if err != nil {
//	        fmt.Printf("%s: %v\n", arquivo, err)
//	    }
//	}
func (g *Gerador) GerarLote(pares map[string]string) map[string]error {
	resultados := make(map[string]error, len(pares))

	for xmlPath, pdfPath := range pares {
		resultados[xmlPath] = g.GerarPDFFile(xmlPath, pdfPath)
	}

	return resultados
}
