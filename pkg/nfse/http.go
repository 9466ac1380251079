package nfse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// TamanhoMaximoXML limita o corpo aceito pelo Handler
const TamanhoMaximoXML = 5 << 20

// Handler devolve um http.Handler que recebe o XML da NFS-e no corpo de um
// POST e responde com o DANFSe em PDF para exibição no navegador.
//
// Respostas:
//   - 200 application/pdf (Content-Disposition: inline)
//   - 405 para métodos diferentes de POST
//   - 413 quando o XML passa de TamanhoMaximoXML
//   - 422 para XML inválido ou sem o Id da NFS-e
//
// Exemplo:
//
//	http.Handle("/danfse", gerador.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
func (g *Gerador) Handler() http.Handler {
	return http.HandlerFunc(g.serveHTTP)
}

func (g *Gerador) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "método não permitido", http.StatusMethodNotAllowed)
		return
	}

	xmlData, err := io.ReadAll(http.MaxBytesReader(w, r.Body, TamanhoMaximoXML))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "XML muito grande", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "erro ao ler XML", http.StatusBadRequest)
		return
	}

	rec, instrs, err := g.compose(xmlData)
	if err != nil {
		if errors.Is(err, ErrParse) || errors.Is(err, ErrCampoObrigatorio) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "erro ao gerar DANFSe", http.StatusInternalServerError)
		return
	}

	// O PDF é montado em memória antes de qualquer cabeçalho ser enviado
	var buf bytes.Buffer
	if err := g.renderer(rec).WriteTo(&buf, instrs); err != nil {
		g.log.Error("Falha ao gerar DANFSe", zap.String("chave", rec.AccessKey), zap.Error(err))
		http.Error(w, "erro ao gerar DANFSe", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", "danfse-"+rec.AccessKey+".pdf"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		g.log.Warn("Falha ao enviar PDF", zap.Error(err))
	}
}
