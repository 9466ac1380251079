package nfse

import (
	"github.com/fabyo/go-nfse-danfse/internal/extract"
	"github.com/fabyo/go-nfse-danfse/internal/format"
	"github.com/fabyo/go-nfse-danfse/internal/invoice"
)

// ======================================================================
// ERROS
// ======================================================================

var (
	// ErrParse indica XML mal formado ou sem o elemento NFSe/infNFSe
	ErrParse = extract.ErrParse

	// ErrCampoObrigatorio indica ausência do atributo infNFSe/@Id
	ErrCampoObrigatorio = extract.ErrMissingRequiredField
)

// ParseError é o erro detalhado de parse (use errors.As)
type ParseError = extract.ParseError

// MissingRequiredFieldError é o erro detalhado de campo obrigatório ausente
type MissingRequiredFieldError = extract.MissingRequiredFieldError

// ======================================================================
// DADOS EXTRAÍDOS
// ======================================================================

// DadosNFSe contém os dados da NFS-e já formatados para exibição
type DadosNFSe struct {
	// ChaveAcesso é o Id do infNFSe sem o prefixo "NFS"
	ChaveAcesso string `json:"chave_acesso"`

	Numero            string `json:"numero"`
	NumeroDFSe        string `json:"numero_dfse"`
	DataProcessamento string `json:"data_processamento"`
	LocalEmissao      string `json:"local_emissao"`
	LocalPrestacao    string `json:"local_prestacao"`
	LocalIncidencia   string `json:"local_incidencia"`

	Emitente Pessoa `json:"emitente"`
	Tomador  Pessoa `json:"tomador"`

	// CodigoTributacao no formato NN.NN.NN
	CodigoTributacao string `json:"codigo_tributacao"`
	Descricao        string `json:"descricao"`

	// Valores formatados (R$ 1.234,56)
	ValorServico string `json:"valor_servico"`
	ValorLiquido string `json:"valor_liquido"`
	ValorRetido  string `json:"valor_retido"`

	NumeroDPS   string `json:"numero_dps"`
	SerieDPS    string `json:"serie_dps"`
	Competencia string `json:"competencia"`
	EmissaoDPS  string `json:"emissao_dps"`
}

// Pessoa representa o emitente ou o tomador
type Pessoa struct {
	// Documento é o CNPJ ou CPF formatado
	Documento string `json:"documento"`
	Nome      string `json:"nome"`
	Endereco  string `json:"endereco"`
	CEP       string `json:"cep"`
	Telefone  string `json:"telefone,omitempty"`
	Email     string `json:"email,omitempty"`
}

func convertRecord(rec invoice.Record) *DadosNFSe {
	return &DadosNFSe{
		ChaveAcesso:       rec.AccessKey,
		Numero:            rec.NFSeNumber,
		NumeroDFSe:        rec.DFSeNumber,
		DataProcessamento: rec.ProcessingTimestamp,
		LocalEmissao:      rec.IssuancePlace,
		LocalPrestacao:    rec.ServicePlace,
		LocalIncidencia:   rec.TaxIncidencePlace,
		Emitente:          convertParty(rec.Issuer),
		Tomador:           convertParty(rec.Recipient),
		CodigoTributacao:  rec.Service.NationalCode,
		Descricao:         rec.Service.Description,
		ValorServico:      format.Currency(rec.Amounts.ServiceValue),
		ValorLiquido:      format.Currency(rec.Amounts.NetValue),
		ValorRetido:       format.Currency(rec.Amounts.TotalWithheld),
		NumeroDPS:         rec.DPS.Number,
		SerieDPS:          rec.DPS.Series,
		Competencia:       rec.DPS.Competence,
		EmissaoDPS:        rec.DPS.IssuedAt,
	}
}

func convertParty(p invoice.Party) Pessoa {
	return Pessoa{
		Documento: p.TaxID,
		Nome:      p.Name,
		Endereco:  p.Address.Line(),
		CEP:       p.Address.PostalCode,
		Telefone:  p.Phone,
		Email:     p.Email,
	}
}
