package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"backend_jmtecnica/config"
	"backend_jmtecnica/models"

	"gorm.io/gorm"
)

// RelatorioService concentra as regras de numeração, busca e
// estatísticas dos relatórios. O fuso horário e os limites de paginação
// chegam pela configuração no momento da construção.
type RelatorioService struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewRelatorioService cria um novo RelatorioService
func NewRelatorioService(db *gorm.DB, cfg *config.Config) *RelatorioService {
	return &RelatorioService{DB: db, Cfg: cfg}
}

// Now retorna o instante atual no fuso configurado (Brasília por padrão)
func (s *RelatorioService) Now() time.Time {
	return time.Now().In(s.Cfg.Location)
}

// Hoje retorna a data civil de hoje no fuso configurado, normalizada
// para meia-noite UTC, o mesmo tratamento dado às datas de serviço
func (s *RelatorioService) Hoje() time.Time {
	now := s.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ProximoNumero calcula o próximo número sequencial de relatório.
// Parte do maior numero_relatorio em ordem textual decrescente; se não
// for um inteiro válido, recomeça do primeiro. O resultado tem zeros à
// esquerda até 3 dígitos; acima de 999 segue como inteiro simples.
// Não há reserva de número: criações concorrentes com o mesmo número
// falham no índice único e cabe ao chamador repetir.
func (s *RelatorioService) ProximoNumero() (string, error) {
	var ultimo models.Relatorio
	err := s.DB.Order("numero_relatorio DESC").First(&ultimo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return FormatarNumero(1), nil
	}
	if err != nil {
		return "", err
	}

	proximo := 1
	if n, convErr := strconv.Atoi(ultimo.NumeroRelatorio); convErr == nil {
		proximo = n + 1
	}

	return FormatarNumero(proximo), nil
}

// FormatarNumero formata um número sequencial com no mínimo 3 dígitos
func FormatarNumero(n int) string {
	return fmt.Sprintf("%03d", n)
}

// SearchFilters agrupa os filtros opcionais da busca. Filtros vazios
// são ignorados; os presentes combinam por E lógico.
type SearchFilters struct {
	Numero       string
	RazaoSocial  string
	Cnpj         string
	Periodo      string
	DataInicio   string
	DataFim      string
	TiposServico string
}

// Search aplica os filtros e retorna os relatórios em ordem decrescente
// de criação, sem paginação
func (s *RelatorioService) Search(filtros SearchFilters) ([]models.Relatorio, error) {
	query := s.DB.Model(&models.Relatorio{}).
		Preload("Equipamentos").
		Preload("Pecas")

	if filtros.Numero != "" {
		query = query.Where("numero_relatorio LIKE ?", "%"+filtros.Numero+"%")
	}

	if filtros.RazaoSocial != "" {
		query = query.Where("LOWER(razao_social) LIKE ?", "%"+strings.ToLower(filtros.RazaoSocial)+"%")
	}

	if filtros.Cnpj != "" {
		query = query.Where("cnpj LIKE ?", "%"+somenteDigitos(filtros.Cnpj)+"%")
	}

	// Períodos nomeados relativos à data de hoje
	hoje := s.Hoje()
	switch filtros.Periodo {
	case "hoje":
		query = query.Where("data_servico = ?", hoje)
	case "semana":
		// A semana começa no domingo
		inicioSemana := hoje.AddDate(0, 0, -int(hoje.Weekday()))
		query = query.Where("data_servico >= ?", inicioSemana)
	case "mes":
		inicioMes := time.Date(hoje.Year(), hoje.Month(), 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("data_servico >= ?", inicioMes)
	}

	// Período personalizado (datas inválidas são ignoradas)
	if inicio, ok := parseDate(filtros.DataInicio); ok {
		query = query.Where("data_servico >= ?", inicio)
	}
	if fim, ok := parseDate(filtros.DataFim); ok {
		query = query.Where("data_servico <= ?", fim)
	}

	var relatorios []models.Relatorio
	if err := query.Order("data_criacao DESC").Find(&relatorios).Error; err != nil {
		return nil, err
	}

	// Tipos de serviço: todos os tipos pedidos precisam estar presentes
	// no conjunto do relatório (E lógico, não OU)
	if filtros.TiposServico != "" {
		tipos := splitTipos(filtros.TiposServico)
		filtrados := make([]models.Relatorio, 0, len(relatorios))
		for _, relatorio := range relatorios {
			if contemTodosTipos(relatorio.TiposServico, tipos) {
				filtrados = append(filtrados, relatorio)
			}
		}
		relatorios = filtrados
	}

	return relatorios, nil
}

// Estatisticas é o resumo mensal/diário/total dos relatórios
type Estatisticas struct {
	TotalRelatorios int64          `json:"total_relatorios"`
	RelatoriosHoje  int64          `json:"relatorios_hoje"`
	RelatoriosMes   int64          `json:"relatorios_mes"`
	TiposServicoMes map[string]int `json:"tipos_servico_mes"`
	PeriodoBase     PeriodoBase    `json:"periodo_base"`
}

// PeriodoBase indica a janela usada nos agregados mensais
type PeriodoBase struct {
	InicioMes string `json:"inicio_mes"`
	Hoje      string `json:"hoje"`
}

// GetEstatisticas calcula os contadores do mês corrente, de hoje e do
// total geral. São consultas independentes, sem snapshot compartilhado:
// escritas entre uma consulta e outra podem gerar pequenas divergências.
func (s *RelatorioService) GetEstatisticas() (*Estatisticas, error) {
	hoje := s.Hoje()
	inicioMes := time.Date(hoje.Year(), hoje.Month(), 1, 0, 0, 0, 0, time.UTC)

	var total, doDia, doMes int64
	if err := s.DB.Model(&models.Relatorio{}).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Relatorio{}).Where("data_servico = ?", hoje).Count(&doDia).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Relatorio{}).Where("data_servico >= ?", inicioMes).Count(&doMes).Error; err != nil {
		return nil, err
	}

	// Frequência de tipos de serviço no mês: cada relatório conta para
	// todos os tipos que carrega
	var relatoriosMes []models.Relatorio
	if err := s.DB.Where("data_servico >= ?", inicioMes).Find(&relatoriosMes).Error; err != nil {
		return nil, err
	}

	tiposServico := make(map[string]int)
	for _, relatorio := range relatoriosMes {
		for _, tipo := range relatorio.TiposServico {
			tiposServico[tipo]++
		}
	}

	return &Estatisticas{
		TotalRelatorios: total,
		RelatoriosHoje:  doDia,
		RelatoriosMes:   doMes,
		TiposServicoMes: tiposServico,
		PeriodoBase: PeriodoBase{
			InicioMes: inicioMes.Format(models.DateFormat),
			Hoje:      hoje.Format(models.DateFormat),
		},
	}, nil
}

// parseDate interpreta uma data YYYY-MM-DD; retorna ok=false se inválida
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(models.DateFormat, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// somenteDigitos remove tudo que não for dígito (máscaras de CNPJ)
func somenteDigitos(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitTipos separa a lista de tipos vinda por vírgula
func splitTipos(value string) []string {
	parts := strings.Split(value, ",")
	tipos := make([]string, 0, len(parts))
	for _, part := range parts {
		if tipo := strings.TrimSpace(part); tipo != "" {
			tipos = append(tipos, tipo)
		}
	}
	return tipos
}

// contemTodosTipos verifica se o conjunto do relatório contém todos os
// tipos pedidos
func contemTodosTipos(conjunto []string, tipos []string) bool {
	for _, tipo := range tipos {
		encontrado := false
		for _, existente := range conjunto {
			if existente == tipo {
				encontrado = true
				break
			}
		}
		if !encontrado {
			return false
		}
	}
	return true
}
