package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"
)

// DatabaseIndex descreve um índice do banco de dados
type DatabaseIndex struct {
	Name    string
	Table   string
	Columns []string
	Unique  bool
}

// ReportIndexes são os índices de consulta da tabela de relatórios.
// Cobrem os filtros da busca (data, razão social, cnpj) e a ordenação
// padrão das listagens (data de criação).
var ReportIndexes = []DatabaseIndex{
	{
		Name:    "idx_relatorio_data",
		Table:   "relatorios",
		Columns: []string{"data_servico"},
	},
	{
		Name:    "idx_relatorio_razao_social",
		Table:   "relatorios",
		Columns: []string{"razao_social"},
	},
	{
		Name:    "idx_relatorio_cnpj",
		Table:   "relatorios",
		Columns: []string{"cnpj"},
	},
	{
		Name:    "idx_relatorio_criacao",
		Table:   "relatorios",
		Columns: []string{"data_criacao"},
	},
	{
		Name:    "idx_equipamento_relatorio",
		Table:   "equipamentos",
		Columns: []string{"relatorio_id"},
	},
	{
		Name:    "idx_peca_relatorio",
		Table:   "pecas",
		Columns: []string{"relatorio_id"},
	},
}

// CreateIndexes cria os índices de consulta após a automigração
func CreateIndexes(db *gorm.DB) error {
	for _, index := range ReportIndexes {
		if err := CreateIndex(db, index); err != nil {
			log.Printf("Falha ao criar índice %s: %v", index.Name, err)
			// Segue com os demais índices mesmo se um falhar
			continue
		}
	}
	return nil
}

// CreateIndex cria um índice isolado (sintaxe válida em postgres e sqlite)
func CreateIndex(db *gorm.DB, index DatabaseIndex) error {
	unique := ""
	if index.Unique {
		unique = "UNIQUE "
	}

	sql := fmt.Sprintf(
		"CREATE %sINDEX IF NOT EXISTS %s ON %s (%s)",
		unique, index.Name, index.Table, strings.Join(index.Columns, ", "),
	)

	return db.Exec(sql).Error
}

// DropIndex remove um índice pelo nome
func DropIndex(db *gorm.DB, indexName string) error {
	return db.Exec(fmt.Sprintf("DROP INDEX IF EXISTS %s", indexName)).Error
}
