package format

// ======================================================================
// Tabelas de códigos do leiaute nacional da NFS-e
// ======================================================================

var issqnTaxation = map[string]string{
	"1": "Operação Tributável",
	"2": "Imunidade",
	"3": "Exportação de Serviço",
	"4": "Não Incidência",
}

var issqnRetention = map[string]string{
	"1": "Não Retido",
	"2": "Retido pelo Tomador",
	"3": "Retido pelo Intermediário",
}

var simplesNacional = map[string]string{
	"1": "Não Optante",
	"2": "Optante - Microempreendedor Individual (MEI)",
	"3": "Optante - Microempresa ou Empresa de Pequeno Porte (ME/EPP)",
}

var simplesAssessment = map[string]string{
	"1": "Regime de apuração dos tributos federais e municipal pelo Simples Nacional",
	"2": "Regime de apuração dos tributos federais pelo SN e o ISSQN pela NFS-e conforme respectiva legislação municipal do tributo",
	"3": "Regime de apuração dos tributos federais e municipal pela NFS-e conforme respectivas legislações federal e municipal de cada tributo",
}

var specialTaxation = map[string]string{
	"0": "Nenhum",
	"1": "Ato Cooperado (Cooperativa)",
	"2": "Estimativa",
	"3": "Microempresa Municipal",
	"4": "Notário ou Registrador",
	"5": "Profissional Autônomo",
	"6": "Sociedade de Profissionais",
}

func describe(table map[string]string, code string) string {
	if d, ok := table[OnlyDigits(code)]; ok {
		return d
	}
	return "-"
}

// ISSQNTaxation descreve tribISSQN
func ISSQNTaxation(code string) string { return describe(issqnTaxation, code) }

// ISSQNRetention descreve tpRetISSQN
func ISSQNRetention(code string) string { return describe(issqnRetention, code) }

// SimplesNacional descreve opSimpNac
func SimplesNacional(code string) string { return describe(simplesNacional, code) }

// SimplesAssessment descreve regApTribSN
func SimplesAssessment(code string) string { return describe(simplesAssessment, code) }

// SpecialTaxation descreve regEspTrib. Sem código, o regime é "Nenhum".
func SpecialTaxation(code string) string {
	if OnlyDigits(code) == "" {
		return specialTaxation["0"]
	}
	return describe(specialTaxation, code)
}
