package models

/************************************************
/**** MARK: LICENSE TABLE ****/
/************************************************/
const LICENSE_TABLE = "licencas"

// License representa uma licença ambiental (uma linha da tabela licencas).
type License struct {
	ID          int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Number      string `gorm:"column:numero_licenca;not null;index" json:"numero_licenca"`
	Activity    string `gorm:"column:atividade;type:text" json:"atividade"`
	CompanyName string `gorm:"column:razao_social" json:"razao_social"`
	Type        string `gorm:"column:tipo_licenca;index" json:"tipo_licenca"`
	IssuedAt    Date   `gorm:"column:data_emissao;type:date" json:"data_emissao"`
	ValidUntil  Date   `gorm:"column:validade;type:date" json:"validade"`
	Status      string `gorm:"column:status;index" json:"status"`
}

func (License) TableName() string {
	return LICENSE_TABLE
}

// LicenseTable é o resultado de uma leitura completa da tabela, na ordem devolvida pelo banco.
// Uma vez criada não deve ser alterada: as visões do relatório são sempre cópias.
type LicenseTable []License

// Clone devolve uma cópia rasa (License só tem campos por valor).
func (t LicenseTable) Clone() LicenseTable {
	if t == nil {
		return nil
	}
	out := make(LicenseTable, len(t))
	copy(out, t)
	return out
}
