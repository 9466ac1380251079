package extract

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fabyo/go-nfse-danfse/internal/format"
)

// reader resolve caminhos fixos dentro do namespace do documento.
// Qualquer nó intermediário ausente resulta no valor zero do campo.
type reader struct {
	ns  string
	log *zap.Logger
}

// child devolve o primeiro filho com o nome local e o namespace do documento
func (r reader) child(el *etree.Element, tag string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, c := range el.ChildElements() {
		if c.Tag == tag && c.NamespaceURI() == r.ns {
			return c
		}
	}
	return nil
}

func (r reader) find(el *etree.Element, path ...string) *etree.Element {
	for _, tag := range path {
		el = r.child(el, tag)
		if el == nil {
			return nil
		}
	}
	return el
}

// text: texto do nó em path como está no XML, ou "" se não existir
func (r reader) text(el *etree.Element, path ...string) string {
	n := r.find(el, path...)
	if n == nil {
		r.log.Debug("Campo opcional ausente", zap.String("path", strings.Join(path, "/")))
		return ""
	}
	return n.Text()
}

// amount: valor decimal em path; ausente ou inválido vira zero
func (r reader) amount(el *etree.Element, path ...string) decimal.Decimal {
	return format.ParseDecimal(r.text(el, path...))
}

func (r reader) nullAmount(el *etree.Element, path ...string) decimal.NullDecimal {
	return format.ParseNullDecimal(r.text(el, path...))
}
