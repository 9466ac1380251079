package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ======================================================================
// Registro da NFS-e (já normalizado para exibição)
// ======================================================================

// Record é o conjunto de campos extraídos de uma NFS-e.
// É montado uma única vez pelo extrator e nunca alterado depois.
type Record struct {
	AccessKey                 string // Id sem o prefixo "NFS"
	NFSeNumber                string
	DFSeNumber                string
	ProcessingTimestamp       string // dhProc já formatado (DD/MM/AAAA HH:MM:SS)
	IssuancePlace             string
	ServicePlace              string
	TaxIncidencePlace         string
	NationalTaxClassification string

	Issuer    Party
	Recipient Party

	Service  Service
	Amounts  Amounts
	DPS      DPS
	Taxation Taxation
	Regime   Regime
}

// Party representa o emitente ou o tomador do serviço
type Party struct {
	TaxID   string // CNPJ ou CPF mascarado
	Name    string
	Address Address
	Phone   string
	Email   string
}

type Address struct {
	Street           string
	Number           string
	Complement       string // opcional
	District         string
	MunicipalityCode string
	State            string
	PostalCode       string
}

// Line monta "logradouro, número[, complemento], bairro".
// O complemento só entra quando não está vazio.
func (a Address) Line() string {
	parts := []string{a.Street, a.Number}
	if strings.TrimSpace(a.Complement) != "" {
		parts = append(parts, a.Complement)
	}
	parts = append(parts, a.District)
	return strings.Join(parts, ", ")
}

type Service struct {
	NationalCode   string // cTribNac mascarado (NN.NN.NN)
	MunicipalCode  string // cTribMun
	Description    string
	AdditionalInfo string // xInfComp
}

// Amounts guarda os valores monetários da nota
type Amounts struct {
	ServiceValue  decimal.Decimal // vServ
	NetValue      decimal.Decimal // vLiq
	TotalWithheld decimal.Decimal // vTotalRet

	// Opcionais: ausentes no XML aparecem como "-"
	ISSQNBase   decimal.NullDecimal // vBC
	ISSQNRate   decimal.NullDecimal // pAliqAplic
	ISSQNAmount decimal.NullDecimal // vISSQN
}

// DPS contém os dados da Declaração de Prestação de Serviço de origem
type DPS struct {
	Number     string
	Series     string
	Competence string // DD/MM/AAAA
	IssuedAt   string // DD/MM/AAAA HH:MM:SS
}

type Taxation struct {
	ISSQNTaxation  string // tribISSQN (código)
	ISSQNRetention string // tpRetISSQN (código)

	// Percentuais aproximados dos tributos
	FederalPercent   decimal.Decimal
	StatePercent     decimal.Decimal
	MunicipalPercent decimal.Decimal
}

// Regime traz os códigos do regime tributário do prestador
type Regime struct {
	SimplesNacional   string // opSimpNac
	SimplesAssessment string // regApTribSN
	SpecialTaxation   string // regEspTrib
}
