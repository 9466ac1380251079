package layout

import (
	"math"

	"github.com/fabyo/go-nfse-danfse/internal/format"
	"github.com/fabyo/go-nfse-danfse/internal/invoice"
)

// ======================================================================
// Seções do DANFSe, na ordem em que aparecem na página
// ======================================================================

func (b *builder) header(rec invoice.Record, cur Cursor) Cursor {
	g := b.g
	y := cur.Y

	if b.opts.LogoPath != "" {
		b.out = append(b.out, Instruction{
			Kind: KindImage, X: g.Margin, Y: y, W: g.LogoWidth, H: 0,
			Text: b.opts.LogoPath,
		})
	}

	b.text(g.TitleX, y, g.TitleW, 4, "DANFSe v1.0", g.TitleFont, AlignCenter)
	b.text(g.TitleX, y+4, g.TitleW, 4, "Documento Auxiliar da NFS-e", g.TitleFont, AlignCenter)

	m := b.opts.Municipality
	b.text(g.MunicipalityX, y, g.MunicipalityW, 3, "Prefeitura Municipal de "+rec.IssuancePlace, g.MunicipalityFont, AlignRight)
	b.text(g.MunicipalityX, y+3, g.MunicipalityW, 2.5, m.Department, g.SmallFont, AlignRight)
	b.text(g.MunicipalityX, y+5.5, g.MunicipalityW, 2.5, m.Phone, g.SmallFont, AlignRight)
	b.text(g.MunicipalityX, y+8, g.MunicipalityW, 2.5, m.Email, g.SmallFont, AlignRight)

	return cur.Down(g.HeaderHeight + 1)
}

// accessKey: chave de acesso, QR Code e identificação da NFS-e/DPS
func (b *builder) accessKey(rec invoice.Record, cur Cursor) Cursor {
	g := b.g
	h := g.RowHeight
	all := g.Span(0, 3)
	c4 := g.Columns[3]

	b.text(all.X, cur.Y, all.W, h, "Chave de Acesso da NFS-e", g.LabelFont, AlignLeft)
	b.text(all.X, cur.Y+h, all.W, h, rec.AccessKey, g.ValueFont, AlignLeft)
	row1 := cur.Down(2 * h)

	// QR Code centralizado na 4ª coluna, acima das linhas de texto
	b.out = append(b.out, Instruction{
		Kind: KindQRCode,
		X:    c4.X + (c4.W-g.QRSize)/2,
		Y:    row1.Y - g.QROffset,
		W:    g.QRSize,
		H:    g.QRSize,
		Text: QRPayload(b.opts.QRBaseURL, rec.AccessKey),
	})

	cols := g.Columns[:3]
	row3 := b.slots(row1, cols,
		Slot{"Número da NFS-e", rec.NFSeNumber},
		Slot{"Competência da NFS-e", rec.DPS.Competence},
		Slot{"Data e Hora da emissão da NFS-e", rec.ProcessingTimestamp},
	)
	b.slots(row3, cols,
		Slot{"Número da DPS", rec.DPS.Number},
		Slot{"Série da DPS", rec.DPS.Series},
		Slot{"Data e Hora da emissão da DPS", rec.DPS.IssuedAt},
	)

	// Mensagem de autenticidade abaixo do QR Code
	row4 := row3.Down(h)
	used := b.multiText(c4.X, row4.Y, c4.W-2, g.MessageLineHeight, authenticityMessage, g.SmallFont)

	end := math.Max(row1.Y+g.QRSize, row4.Y+used)
	return Cursor{Y: end}.Down(2 + 1)
}

func (b *builder) issuer(rec invoice.Record, cur Cursor) Cursor {
	e := rec.Issuer

	cur = b.sectionTitle(cur, "EMITENTE DA NFS-e")
	cur = b.row4(cur,
		Slot{"Prestador do Serviço", ""},
		Slot{"CNPJ / CPF / NIF", e.TaxID},
		Slot{"Inscrição Municipal", "-"},
		Slot{"Telefone", e.Phone},
	)
	cur = b.row4(cur,
		Slot{"Nome / Nome Empresarial", e.Name},
		Slot{},
		Slot{"E-mail", e.Email},
		Slot{},
	)
	cur = b.row4(cur,
		Slot{"Endereço", e.Address.Line()},
		Slot{},
		Slot{"Município", joinNonEmpty(" - ", rec.IssuancePlace, e.Address.State)},
		Slot{"CEP", e.Address.PostalCode},
	)

	cols := []Column{b.g.Columns[0], b.g.Span(2, 3)}
	cur = b.slots(cur, cols,
		Slot{"Simples Nacional na Data de Competência", format.SimplesNacional(rec.Regime.SimplesNacional)},
		Slot{"Regime de Apuração Tributária pelo SN", format.SimplesAssessment(rec.Regime.SimplesAssessment)},
	)

	return cur.Down(1)
}

func (b *builder) recipient(rec invoice.Record, cur Cursor) Cursor {
	t := rec.Recipient

	cur = b.sectionTitle(cur, "TOMADOR DO SERVIÇO")
	cur = b.row4(cur,
		Slot{},
		Slot{"CNPJ / CPF / NIF", t.TaxID},
		Slot{"Inscrição Municipal", "-"},
		Slot{"Telefone", ""},
	)
	cur = b.row4(cur,
		Slot{"Nome / Nome Empresarial", t.Name},
		Slot{},
		Slot{"E-mail", format.OrDash(t.Email)},
		Slot{},
	)
	cur = b.row4(cur,
		Slot{"Endereço", t.Address.Line()},
		Slot{},
		Slot{"Município", rec.TaxIncidencePlace},
		Slot{"CEP", t.Address.PostalCode},
	)
	cur = cur.Down(2)

	cur = b.sectionTitle(cur, "INTERMEDIÁRIO DO SERVIÇO NÃO IDENTIFICADO NA NFS-e")
	return cur.Down(2)
}

func (b *builder) service(rec invoice.Record, cur Cursor) Cursor {
	g := b.g
	s := rec.Service

	code := joinNonEmpty(" - ", s.NationalCode, format.Truncate(rec.NationalTaxClassification, 40))

	cur = b.sectionTitle(cur, "SERVIÇO PRESTADO")
	cur = b.row4(cur,
		Slot{"Código de Tributação Nacional", code},
		Slot{"Código de Tributação Municipal", format.OrDash(s.MunicipalCode)},
		Slot{"Local da Prestação", rec.ServicePlace},
		Slot{"País da Prestação", "-"},
	)

	// Descrição: rótulo na 1ª coluna, texto nas demais
	desc := g.Span(1, 3)
	b.text(g.Columns[0].X, cur.Y, g.Columns[0].W, g.RowHeight, "Descrição do Serviço", g.LabelFont, AlignLeft)
	text := b.fit(s.Description, desc.W, g.ValueFont, g.MaxDescriptionLines)
	used := b.multiText(desc.X, cur.Y, desc.W, g.RowHeight, text, g.ValueFont)

	return cur.Down(math.Max(g.RowHeight, used) + 2)
}

func (b *builder) taxation(rec invoice.Record, cur Cursor) Cursor {
	tx := rec.Taxation
	a := rec.Amounts

	cur = b.sectionTitle(cur, "TRIBUTAÇÃO MUNICIPAL")
	cur = b.row4(cur,
		Slot{"Tributação do ISSQN", format.ISSQNTaxation(tx.ISSQNTaxation)},
		Slot{"País Resultado da Prestação do Serviço", "-"},
		Slot{"Município de Incidência do ISSQN", rec.TaxIncidencePlace},
		Slot{"Regime Especial de Tributação", format.SpecialTaxation(rec.Regime.SpecialTaxation)},
	)
	cur = b.row4(cur,
		Slot{"Tipo de Imunidade", "-"},
		Slot{"Suspensão da Exigibilidade do ISSQN", "Não"},
		Slot{"Número Processo Suspensão", "-"},
		Slot{"Benefício Municipal", "-"},
	)
	cur = b.row4(cur,
		Slot{"Valor do Serviço", format.Currency(a.ServiceValue)},
		Slot{"Desconto Incondicionado", "-"},
		Slot{"Total Deduções/Reduções", "-"},
		Slot{"Cálculo do BM", "-"},
	)
	cur = b.row4(cur,
		Slot{"BC ISSQN", format.NullCurrency(a.ISSQNBase)},
		Slot{"Alíquota Aplicada", format.NullPercent(a.ISSQNRate)},
		Slot{"Retenção do ISSQN", format.ISSQNRetention(tx.ISSQNRetention)},
		Slot{"ISSQN Apurado", format.NullCurrency(a.ISSQNAmount)},
	)

	cur = b.sectionTitle(cur, "TRIBUTAÇÃO FEDERAL")
	cur = b.row4(cur,
		Slot{"IRRF", "-"},
		Slot{"CP", "-"},
		Slot{"CSLL", "-"},
		Slot{},
	)
	cur = b.row4(cur,
		Slot{"PIS", "-"},
		Slot{"COFINS", "-"},
		Slot{"Retenção do PIS/COFINS", "-"},
		Slot{"TOTAL TRIBUTAÇÃO FEDERAL", "-"},
	)

	return cur.Down(2)
}

func (b *builder) totals(rec invoice.Record, cur Cursor) Cursor {
	a := rec.Amounts

	// ISSQN retido só aparece quando o tomador ou intermediário reteve
	withheld := "-"
	if code := format.OnlyDigits(rec.Taxation.ISSQNRetention); code == "2" || code == "3" {
		withheld = format.NullCurrency(a.ISSQNAmount)
	}

	cur = b.sectionTitle(cur, "VALOR TOTAL DA NFS-E")
	cur = b.row4(cur,
		Slot{"Valor do Serviço", format.Currency(a.ServiceValue)},
		Slot{"Desconto Condicionado", "-"},
		Slot{"Desconto Incondicionado", "-"},
		Slot{"ISSQN Retido", withheld},
	)
	cur = b.row4(cur,
		Slot{"IRRF, CP,CSLL - Retidos", format.Currency(a.TotalWithheld)},
		Slot{"PIS/COFINS Retidos", "-"},
		Slot{},
		Slot{"Valor Líquido da NFS-e", format.Currency(a.NetValue)},
	)

	return cur.Down(2)
}

func (b *builder) approximateTaxes(rec invoice.Record, cur Cursor) Cursor {
	tx := rec.Taxation

	cur = b.sectionTitle(cur, "TOTAIS APROXIMADOS DOS TRIBUTOS")
	cur = b.slots(cur, b.g.Thirds[:],
		Slot{"Federais", format.Percent(tx.FederalPercent)},
		Slot{"Estaduais", format.Percent(tx.StatePercent)},
		Slot{"Municípios", format.Percent(tx.MunicipalPercent)},
	)

	return cur.Down(5)
}

// additionalInfo: marcador final e, se houver, o xInfComp da DPS
func (b *builder) additionalInfo(rec invoice.Record, cur Cursor) Cursor {
	g := b.g

	cur = b.sectionTitle(cur, "INFORMAÇÕES COMPLEMENTARES")
	maxLines := int(math.Floor((g.Bottom() - cur.Y) / g.InfoLineHeight))
	text := b.fit(rec.Service.AdditionalInfo, g.PrintableWidth(), g.ValueFont, maxLines)
	used := b.multiText(g.Margin, cur.Y, g.PrintableWidth(), g.InfoLineHeight, text, g.ValueFont)

	return cur.Down(used)
}
