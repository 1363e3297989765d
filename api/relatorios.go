package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"backend_jmtecnica/config"
	"backend_jmtecnica/models"
	"backend_jmtecnica/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RelatoriosAPI expõe os endpoints de relatórios de serviço
type RelatoriosAPI struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Service *services.RelatorioService
}

// NewRelatoriosAPI cria uma nova instância de RelatoriosAPI
func NewRelatoriosAPI(db *gorm.DB, cfg *config.Config) *RelatoriosAPI {
	return &RelatoriosAPI{
		DB:      db,
		Cfg:     cfg,
		Service: services.NewRelatorioService(db, cfg),
	}
}

// RegisterRoutes registra as rotas de relatórios no grupo /api
func (api *RelatoriosAPI) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/relatorios", api.ListarRelatorios)
	router.GET("/relatorios/buscar", api.BuscarRelatorios)
	router.GET("/relatorios/proximo-numero", api.ObterProximoNumero)
	router.GET("/relatorios/estatisticas", api.ObterEstatisticas)
	router.GET("/relatorios/:numero", api.ObterRelatorio)
	router.POST("/relatorios", api.CriarRelatorio)
	router.PUT("/relatorios/:numero", api.AtualizarRelatorio)
	router.DELETE("/relatorios/:numero", api.ExcluirRelatorio)
}

// ListarRelatorios lista os relatórios com paginação por offset
func (api *RelatoriosAPI) ListarRelatorios(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(api.Cfg.Pagination.DefaultPerPage)))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = api.Cfg.Pagination.DefaultPerPage
	}
	// Teto fixo do servidor, independente do que o cliente pedir
	if perPage > api.Cfg.Pagination.MaxPerPage {
		perPage = api.Cfg.Pagination.MaxPerPage
	}

	var total int64
	if err := api.DB.Model(&models.Relatorio{}).Count(&total).Error; err != nil {
		respondInternalError(c, err)
		return
	}

	var relatorios []models.Relatorio
	offset := (page - 1) * perPage
	err := api.DB.Preload("Equipamentos").Preload("Pecas").
		Order("data_criacao DESC").
		Offset(offset).Limit(perPage).
		Find(&relatorios).Error
	if err != nil {
		respondInternalError(c, err)
		return
	}

	pages := (total + int64(perPage) - 1) / int64(perPage)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    serializeRelatorios(relatorios),
		"pagination": gin.H{
			"page":     page,
			"per_page": perPage,
			"total":    total,
			"pages":    pages,
			"has_next": int64(page) < pages,
			"has_prev": page > 1,
		},
	})
}

// BuscarRelatorios busca relatórios combinando os filtros por E lógico
func (api *RelatoriosAPI) BuscarRelatorios(c *gin.Context) {
	filtros := services.SearchFilters{
		Numero:       c.Query("numero"),
		RazaoSocial:  c.Query("razaoSocial"),
		Cnpj:         c.Query("cnpj"),
		Periodo:      c.Query("periodo"),
		DataInicio:   c.Query("dataInicio"),
		DataFim:      c.Query("dataFim"),
		TiposServico: c.Query("tiposServico"),
	}

	relatorios, err := api.Service.Search(filtros)
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    serializeRelatorios(relatorios),
		"count":   len(relatorios),
	})
}

// ObterRelatorio retorna um relatório pelo número
func (api *RelatoriosAPI) ObterRelatorio(c *gin.Context) {
	relatorio, err := api.buscarPorNumero(c.Param("numero"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Relatório não encontrado")
			return
		}
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    relatorio.ToResponse(),
	})
}

// CriarRelatorio cria um relatório com seus equipamentos e peças em uma
// única transação
func (api *RelatoriosAPI) CriarRelatorio(c *gin.Context) {
	var input RelatorioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Dados não fornecidos")
		return
	}

	// Validações obrigatórias
	if input.RazaoSocial == "" {
		respondError(c, http.StatusBadRequest, "Razão social é obrigatória")
		return
	}
	if input.DataServico == "" {
		respondError(c, http.StatusBadRequest, "Data do serviço é obrigatória")
		return
	}
	dataServico, ok := ParseDate(input.DataServico)
	if !ok {
		respondError(c, http.StatusBadRequest, "Data do serviço inválida, use o formato YYYY-MM-DD")
		return
	}

	// Gera o número sequencial quando não informado
	numeroRelatorio := input.NumeroRelatorio
	if numeroRelatorio == "" {
		proximo, err := api.Service.ProximoNumero()
		if err != nil {
			respondInternalError(c, err)
			return
		}
		numeroRelatorio = proximo
	}

	// Rejeita número duplicado antes de abrir a transação
	var existente models.Relatorio
	if err := api.DB.Where("numero_relatorio = ?", numeroRelatorio).First(&existente).Error; err == nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Já existe um relatório com o número %s", numeroRelatorio))
		return
	}

	agora := api.Service.Now()
	relatorio := models.Relatorio{
		NumeroRelatorio:    numeroRelatorio,
		DataServico:        dataServico,
		HoraInicio:         ParseTime(input.HoraInicio),
		HoraFim:            ParseTime(input.HoraFim),
		TotalHoras:         input.TotalHoras,
		RazaoSocial:        input.RazaoSocial,
		Cnpj:               input.Cnpj,
		Endereco:           input.Endereco,
		CidadeUf:           input.CidadeUf,
		InscricaoEstadual:  input.InscricaoEstadual,
		TiposServico:       datatypes.NewJSONSlice(input.TiposServico),
		ServicosExecutados: input.ServicosExecutados,
		Etc:                input.Etc,
		Eta:                input.Eta,
		Gc:                 input.Gc,
		Gt:                 input.Gt,
		ObservacoesTeste:   input.ObservacoesTeste,
		TecnicoResponsavel: input.TecnicoResponsavel,
		TotalPecas:         decimal.NewFromFloat(input.TotalPecas),
		DataCriacao:        agora,
		DataModificacao:    agora,
	}

	// Filhos sem o campo identificador são descartados em silêncio
	for _, eq := range input.Equipamentos {
		if eq.NumeroBico == "" {
			continue
		}
		relatorio.Equipamentos = append(relatorio.Equipamentos, models.Equipamento{
			NumeroBico:           eq.NumeroBico,
			Marca:                eq.Marca,
			Modelo:               eq.Modelo,
			Serie:                eq.Serie,
			Produto:              eq.Produto,
			Inmetro:              eq.Inmetro,
			PortariaAprovacao:    eq.PortariaAprovacao,
			LacreRetirado:        eq.LacreRetirado,
			LacreColocado:        eq.LacreColocado,
			SeloReparadoRetirado: eq.SeloReparadoRetirado,
			SeloReparadoColocado: eq.SeloReparadoColocado,
		})
	}
	for _, peca := range input.Pecas {
		if peca.Descricao == "" {
			continue
		}
		relatorio.Pecas = append(relatorio.Pecas, models.Peca{
			Descricao:     peca.Descricao,
			Quantidade:    peca.Quantidade,
			ValorUnitario: decimal.NewFromFloat(peca.ValorUnitario),
			ValorTotal:    decimal.NewFromFloat(peca.ValorTotal),
		})
	}

	// Relatório e filhos em uma transação: falha parcial desfaz tudo
	err := api.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&relatorio).Error
	})
	if err != nil {
		// Corrida entre a checagem e o commit: o índice único é a
		// garantia final, o cliente deve repetir a criação
		if isUniqueViolation(err) {
			respondError(c, http.StatusBadRequest, fmt.Sprintf("Já existe um relatório com o número %s", numeroRelatorio))
			return
		}
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    relatorio.ToResponse(),
		"message": fmt.Sprintf("Relatório %s criado com sucesso", numeroRelatorio),
	})
}

// AtualizarRelatorio aplica uma atualização parcial: campo ausente
// preserva o valor, campo presente sobrescreve (inclusive vazio)
func (api *RelatoriosAPI) AtualizarRelatorio(c *gin.Context) {
	relatorio, err := api.buscarPorNumero(c.Param("numero"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Relatório não encontrado")
			return
		}
		respondInternalError(c, err)
		return
	}

	var input RelatorioUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Dados não fornecidos")
		return
	}

	// Campos obrigatórios só mudam quando vêm preenchidos
	if input.DataServico != nil && *input.DataServico != "" {
		if dataServico, ok := ParseDate(*input.DataServico); ok {
			relatorio.DataServico = dataServico
		}
	}
	if input.RazaoSocial != nil && *input.RazaoSocial != "" {
		relatorio.RazaoSocial = *input.RazaoSocial
	}

	if input.HoraInicio != nil {
		relatorio.HoraInicio = ParseTime(*input.HoraInicio)
	}
	if input.HoraFim != nil {
		relatorio.HoraFim = ParseTime(*input.HoraFim)
	}
	if input.TotalHoras != nil {
		relatorio.TotalHoras = *input.TotalHoras
	}
	if input.Cnpj != nil {
		relatorio.Cnpj = *input.Cnpj
	}
	if input.Endereco != nil {
		relatorio.Endereco = *input.Endereco
	}
	if input.CidadeUf != nil {
		relatorio.CidadeUf = *input.CidadeUf
	}
	if input.InscricaoEstadual != nil {
		relatorio.InscricaoEstadual = *input.InscricaoEstadual
	}
	if input.TiposServico != nil {
		relatorio.TiposServico = datatypes.NewJSONSlice(*input.TiposServico)
	}
	if input.ServicosExecutados != nil {
		relatorio.ServicosExecutados = *input.ServicosExecutados
	}
	if input.Etc != nil {
		relatorio.Etc = *input.Etc
	}
	if input.Eta != nil {
		relatorio.Eta = *input.Eta
	}
	if input.Gc != nil {
		relatorio.Gc = *input.Gc
	}
	if input.Gt != nil {
		relatorio.Gt = *input.Gt
	}
	if input.ObservacoesTeste != nil {
		relatorio.ObservacoesTeste = *input.ObservacoesTeste
	}
	if input.TecnicoResponsavel != nil {
		relatorio.TecnicoResponsavel = *input.TecnicoResponsavel
	}
	if input.TotalPecas != nil {
		relatorio.TotalPecas = decimal.NewFromFloat(*input.TotalPecas)
	}

	// O timestamp de modificação avança em toda atualização bem
	// sucedida, mesmo sem mudança de campo de negócio
	relatorio.DataModificacao = api.Service.Now()

	if err := api.DB.Omit("Equipamentos", "Pecas").Save(relatorio).Error; err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    relatorio.ToResponse(),
		"message": fmt.Sprintf("Relatório %s atualizado com sucesso", relatorio.NumeroRelatorio),
	})
}

// ExcluirRelatorio remove o agregado inteiro. Os filhos saem na mesma
// transação, cobrindo bancos sem cascade nativo habilitado.
func (api *RelatoriosAPI) ExcluirRelatorio(c *gin.Context) {
	relatorio, err := api.buscarPorNumero(c.Param("numero"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Relatório não encontrado")
			return
		}
		respondInternalError(c, err)
		return
	}

	err = api.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("relatorio_id = ?", relatorio.ID).Delete(&models.Equipamento{}).Error; err != nil {
			return err
		}
		if err := tx.Where("relatorio_id = ?", relatorio.ID).Delete(&models.Peca{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Relatorio{}, relatorio.ID).Error
	})
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Relatório %s excluído com sucesso", relatorio.NumeroRelatorio),
	})
}

// ObterProximoNumero informa o próximo número sequencial disponível
func (api *RelatoriosAPI) ObterProximoNumero(c *gin.Context) {
	proximo, err := api.Service.ProximoNumero()
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"proximo_numero": proximo,
	})
}

// ObterEstatisticas retorna os agregados do mês corrente, de hoje e o
// total geral
func (api *RelatoriosAPI) ObterEstatisticas(c *gin.Context) {
	estatisticas, err := api.Service.GetEstatisticas()
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    estatisticas,
	})
}

// buscarPorNumero carrega o agregado completo pelo número do relatório
func (api *RelatoriosAPI) buscarPorNumero(numero string) (*models.Relatorio, error) {
	var relatorio models.Relatorio
	err := api.DB.Preload("Equipamentos").Preload("Pecas").
		Where("numero_relatorio = ?", numero).
		First(&relatorio).Error
	if err != nil {
		return nil, err
	}
	return &relatorio, nil
}

// serializeRelatorios converte a lista para a representação da API
func serializeRelatorios(relatorios []models.Relatorio) []models.RelatorioResponse {
	respostas := make([]models.RelatorioResponse, 0, len(relatorios))
	for i := range relatorios {
		respostas = append(respostas, relatorios[i].ToResponse())
	}
	return respostas
}

// isUniqueViolation identifica violação de índice único nos dialetos
// suportados (postgres e sqlite)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	mensagem := strings.ToLower(err.Error())
	return strings.Contains(mensagem, "unique") || strings.Contains(mensagem, "duplicate")
}
