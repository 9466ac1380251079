package extract

import (
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/fabyo/go-nfse-danfse/internal/format"
	"github.com/fabyo/go-nfse-danfse/internal/invoice"
)

// Prefixo do atributo Id do infNFSe (Id="NFS<chave>")
const idPrefix = "NFS"

// Parse lê o XML de uma NFS-e e monta o registro normalizado.
//
// Falha com *ParseError quando o XML está mal formado ou quando não existe
// NFSe/infNFSe, e com *MissingRequiredFieldError quando infNFSe/@Id não existe.
// Qualquer outro campo ausente vira string vazia (ou zero, para valores).
func Parse(data []byte, log *zap.Logger) (invoice.Record, error) {
	if log == nil {
		log = zap.NewNop()
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return invoice.Record{}, &ParseError{Reason: "XML mal formado", Err: err}
	}

	if err := checkDocument(doc); err != nil {
		return invoice.Record{}, err
	}

	root := doc.Root()
	if root.Tag != "NFSe" {
		return invoice.Record{}, &ParseError{Reason: "elemento raiz inesperado <" + root.Tag + ">"}
	}

	r := reader{ns: root.NamespaceURI(), log: log}

	inf := r.child(root, "infNFSe")
	if inf == nil {
		return invoice.Record{}, &ParseError{Reason: "elemento infNFSe não encontrado"}
	}

	key, err := AccessKeyFromID(inf.SelectAttrValue("Id", ""))
	if err != nil {
		return invoice.Record{}, err
	}

	// DPS de origem: NFSe/infNFSe/DPS/infDPS
	dps := r.find(inf, "DPS", "infDPS")
	if dps == nil {
		log.Warn("DPS não encontrada no XML, campos da DPS ficarão vazios", zap.String("chave", key))
	}

	rec := invoice.Record{
		AccessKey:                 key,
		NFSeNumber:                r.text(inf, "nNFSe"),
		DFSeNumber:                r.text(inf, "nDFSe"),
		ProcessingTimestamp:       format.DateTime(r.text(inf, "dhProc")),
		IssuancePlace:             r.text(inf, "xLocEmi"),
		ServicePlace:              r.text(inf, "xLocPrestacao"),
		TaxIncidencePlace:         r.text(inf, "xLocIncid"),
		NationalTaxClassification: r.text(inf, "xTribNac"),

		Issuer:    r.issuer(r.child(inf, "emit")),
		Recipient: r.recipient(r.child(dps, "toma")),

		Service: invoice.Service{
			NationalCode:   format.ClassificationCode(r.text(dps, "serv", "cServ", "cTribNac")),
			MunicipalCode:  r.text(dps, "serv", "cServ", "cTribMun"),
			Description:    r.text(dps, "serv", "cServ", "xDescServ"),
			AdditionalInfo: r.text(dps, "serv", "infoCompl", "xInfComp"),
		},

		Amounts: invoice.Amounts{
			ServiceValue:  r.amount(dps, "valores", "vServPrest", "vServ"),
			NetValue:      r.amount(inf, "valores", "vLiq"),
			TotalWithheld: r.amount(inf, "valores", "vTotalRet"),
			ISSQNBase:     r.nullAmount(inf, "valores", "vBC"),
			ISSQNRate:     r.nullAmount(inf, "valores", "pAliqAplic"),
			ISSQNAmount:   r.nullAmount(inf, "valores", "vISSQN"),
		},

		DPS: invoice.DPS{
			Number:     r.text(dps, "nDPS"),
			Series:     r.text(dps, "serie"),
			Competence: format.Date(r.text(dps, "dCompet")),
			IssuedAt:   format.DateTime(r.text(dps, "dhEmi")),
		},

		Taxation: invoice.Taxation{
			ISSQNTaxation:    r.text(dps, "valores", "trib", "tribMun", "tribISSQN"),
			ISSQNRetention:   r.text(dps, "valores", "trib", "tribMun", "tpRetISSQN"),
			FederalPercent:   r.amount(dps, "valores", "trib", "totTrib", "pTotTrib", "pTotTribFed"),
			StatePercent:     r.amount(dps, "valores", "trib", "totTrib", "pTotTrib", "pTotTribEst"),
			MunicipalPercent: r.amount(dps, "valores", "trib", "totTrib", "pTotTrib", "pTotTribMun"),
		},

		Regime: invoice.Regime{
			SimplesNacional:   r.text(dps, "prest", "regTrib", "opSimpNac"),
			SimplesAssessment: r.text(dps, "prest", "regTrib", "regApTribSN"),
			SpecialTaxation:   r.text(dps, "prest", "regTrib", "regEspTrib"),
		},
	}

	log.Debug("NFS-e extraída",
		zap.String("chave", rec.AccessKey),
		zap.String("numero", rec.NFSeNumber),
		zap.String("emitente", rec.Issuer.TaxID),
	)

	return rec, nil
}

// checkDocument exige exatamente um elemento raiz e nenhum texto fora dele
func checkDocument(doc *etree.Document) error {
	for _, tok := range doc.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return &ParseError{Reason: "texto fora do elemento raiz"}
		}
	}

	switch n := len(doc.ChildElements()); {
	case n == 0:
		return &ParseError{Reason: "documento sem elemento raiz"}
	case n > 1:
		return &ParseError{Reason: "mais de um elemento raiz"}
	}
	return nil
}

// AccessKeyFromID remove o prefixo "NFS" do atributo Id.
// O prefixo só é removido quando aparece no início.
func AccessKeyFromID(id string) (string, error) {
	key, _ := strings.CutPrefix(id, idPrefix)
	if key == "" {
		return "", &MissingRequiredFieldError{Field: "infNFSe/@Id"}
	}
	return key, nil
}

func (r reader) issuer(emit *etree.Element) invoice.Party {
	end := r.child(emit, "enderNac")
	return invoice.Party{
		TaxID: format.TaxID(format.ChooseFirstNonEmpty(r.text(emit, "CNPJ"), r.text(emit, "CPF"))),
		Name:  r.text(emit, "xNome"),
		Address: invoice.Address{
			Street:           r.text(end, "xLgr"),
			Number:           r.text(end, "nro"),
			Complement:       r.text(end, "xCpl"),
			District:         r.text(end, "xBairro"),
			MunicipalityCode: r.text(end, "cMun"),
			State:            r.text(end, "UF"),
			PostalCode:       format.PostalCode(r.text(end, "CEP")),
		},
		Phone: format.Phone(r.text(emit, "fone")),
		Email: r.text(emit, "email"),
	}
}

func (r reader) recipient(toma *etree.Element) invoice.Party {
	end := r.child(toma, "end")
	nac := r.child(end, "endNac")

	// Logradouro, número, complemento e bairro ficam em end; alguns emissores
	// os colocam dentro de endNac.
	addr := func(tag string) string {
		return format.ChooseFirstNonEmpty(r.text(end, tag), r.text(nac, tag))
	}

	return invoice.Party{
		TaxID: format.TaxID(format.ChooseFirstNonEmpty(r.text(toma, "CNPJ"), r.text(toma, "CPF"))),
		Name:  r.text(toma, "xNome"),
		Address: invoice.Address{
			Street:           addr("xLgr"),
			Number:           addr("nro"),
			Complement:       addr("xCpl"),
			District:         addr("xBairro"),
			MunicipalityCode: r.text(nac, "cMun"),
			PostalCode:       format.PostalCode(r.text(nac, "CEP")),
		},
		Phone: format.Phone(r.text(toma, "fone")),
		Email: r.text(toma, "email"),
	}
}
