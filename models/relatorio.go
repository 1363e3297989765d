package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Relatorio representa um relatório de serviço técnico (raiz do agregado)
type Relatorio struct {
	ID              uint   `json:"id" gorm:"primarykey"`
	NumeroRelatorio string `json:"numeroRelatorio" gorm:"uniqueIndex;not null;type:varchar(10)"`

	// Datas e horários do atendimento
	DataServico time.Time `json:"dataServico" gorm:"not null;index;type:date"`
	HoraInicio  *string   `json:"horaInicio" gorm:"type:varchar(5)"`
	HoraFim     *string   `json:"horaFim" gorm:"type:varchar(5)"`
	TotalHoras  string    `json:"totalHoras" gorm:"type:varchar(10)"`

	// Dados da empresa atendida
	RazaoSocial       string `json:"razaoSocial" gorm:"not null;index;type:varchar(200)"`
	Cnpj              string `json:"cnpj" gorm:"index;type:varchar(18)"`
	Endereco          string `json:"endereco" gorm:"type:varchar(300)"`
	CidadeUf          string `json:"cidadeUf" gorm:"type:varchar(100)"`
	InscricaoEstadual string `json:"inscricaoEstadual" gorm:"type:varchar(50)"`

	// Classificação do serviço (lista de tipos, coluna JSON)
	TiposServico datatypes.JSONSlice[string] `json:"tiposServico"`

	ServicosExecutados string `json:"servicosExecutados" gorm:"type:text"`

	// Testes de aferição
	Etc              string `json:"etc" gorm:"type:varchar(50)"`
	Eta              string `json:"eta" gorm:"type:varchar(50)"`
	Gc               string `json:"gc" gorm:"type:varchar(50)"`
	Gt               string `json:"gt" gorm:"type:varchar(50)"`
	ObservacoesTeste string `json:"observacoesTeste" gorm:"type:varchar(500)"`

	TecnicoResponsavel string `json:"tecnicoResponsavel" gorm:"type:varchar(100)"`

	// Total das peças utilizadas
	TotalPecas decimal.Decimal `json:"totalPecas" gorm:"type:decimal(10,2);default:0"`

	// Timestamps no fuso de Brasília, atribuídos pela camada de serviço
	DataCriacao     time.Time `json:"dataCriacao" gorm:"not null;index"`
	DataModificacao time.Time `json:"dataModificacao"`

	// Filhos do agregado; a exclusão do relatório remove ambos em cascata
	Equipamentos []Equipamento `json:"equipamentos" gorm:"foreignKey:RelatorioID;constraint:OnDelete:CASCADE"`
	Pecas        []Peca        `json:"pecas" gorm:"foreignKey:RelatorioID;constraint:OnDelete:CASCADE"`
}

func (Relatorio) TableName() string {
	return "relatorios"
}

// Equipamento representa um equipamento atendido dentro de um relatório
type Equipamento struct {
	ID          uint `json:"id" gorm:"primarykey"`
	RelatorioID uint `json:"-" gorm:"not null;index"`

	NumeroBico           string `json:"numeroBico" gorm:"type:varchar(20)"`
	Marca                string `json:"marca" gorm:"type:varchar(50)"`
	Modelo               string `json:"modelo" gorm:"type:varchar(50)"`
	Serie                string `json:"serie" gorm:"type:varchar(50)"`
	Produto              string `json:"produto" gorm:"type:varchar(50)"`
	Inmetro              string `json:"inmetro" gorm:"type:varchar(50)"`
	PortariaAprovacao    string `json:"portariaAprovacao" gorm:"type:varchar(100)"`
	LacreRetirado        string `json:"lacreRetirado" gorm:"type:varchar(50)"`
	LacreColocado        string `json:"lacreColocado" gorm:"type:varchar(50)"`
	SeloReparadoRetirado string `json:"seloReparadoRetirado" gorm:"type:varchar(50)"`
	SeloReparadoColocado string `json:"seloReparadoColocado" gorm:"type:varchar(50)"`
}

func (Equipamento) TableName() string {
	return "equipamentos"
}

// Peca representa uma peça utilizada dentro de um relatório
type Peca struct {
	ID          uint `json:"id" gorm:"primarykey"`
	RelatorioID uint `json:"-" gorm:"not null;index"`

	Descricao  string `json:"descricao" gorm:"not null;type:varchar(200)"`
	Quantidade int    `json:"quantidade" gorm:"default:0"`

	// Valores informados pelo chamador; o total não é recalculado
	ValorUnitario decimal.Decimal `json:"valorUnitario" gorm:"type:decimal(10,2);default:0"`
	ValorTotal    decimal.Decimal `json:"valorTotal" gorm:"type:decimal(10,2);default:0"`
}

func (Peca) TableName() string {
	return "pecas"
}
