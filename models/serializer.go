package models

import "time"

// Formatos de data e hora usados na API
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// RelatorioResponse é a representação JSON de um relatório na API
type RelatorioResponse struct {
	ID                 uint                  `json:"id"`
	NumeroRelatorio    string                `json:"numeroRelatorio"`
	DataServico        string                `json:"dataServico"`
	HoraInicio         *string               `json:"horaInicio"`
	HoraFim            *string               `json:"horaFim"`
	TotalHoras         string                `json:"totalHoras"`
	RazaoSocial        string                `json:"razaoSocial"`
	Cnpj               string                `json:"cnpj"`
	Endereco           string                `json:"endereco"`
	CidadeUf           string                `json:"cidadeUf"`
	InscricaoEstadual  string                `json:"inscricaoEstadual"`
	TiposServico       []string              `json:"tiposServico"`
	ServicosExecutados string                `json:"servicosExecutados"`
	Etc                string                `json:"etc"`
	Eta                string                `json:"eta"`
	Gc                 string                `json:"gc"`
	Gt                 string                `json:"gt"`
	ObservacoesTeste   string                `json:"observacoesTeste"`
	TecnicoResponsavel string                `json:"tecnicoResponsavel"`
	TotalPecas         float64               `json:"totalPecas"`
	DataCriacao        string                `json:"dataCriacao"`
	DataModificacao    string                `json:"dataModificacao"`
	Equipamentos       []EquipamentoResponse `json:"equipamentos"`
	Pecas              []PecaResponse        `json:"pecas"`
}

// EquipamentoResponse é a representação JSON de um equipamento
type EquipamentoResponse struct {
	ID                   uint   `json:"id"`
	NumeroBico           string `json:"numeroBico"`
	Marca                string `json:"marca"`
	Modelo               string `json:"modelo"`
	Serie                string `json:"serie"`
	Produto              string `json:"produto"`
	Inmetro              string `json:"inmetro"`
	PortariaAprovacao    string `json:"portariaAprovacao"`
	LacreRetirado        string `json:"lacreRetirado"`
	LacreColocado        string `json:"lacreColocado"`
	SeloReparadoRetirado string `json:"seloReparadoRetirado"`
	SeloReparadoColocado string `json:"seloReparadoColocado"`
}

// PecaResponse é a representação JSON de uma peça
type PecaResponse struct {
	ID            uint    `json:"id"`
	Descricao     string  `json:"descricao"`
	Quantidade    int     `json:"quantidade"`
	ValorUnitario float64 `json:"valorUnitario"`
	ValorTotal    float64 `json:"valorTotal"`
}

// ToResponse monta a representação da API (datas como YYYY-MM-DD,
// timestamps ISO-8601 com offset, valores decimais como números)
func (r *Relatorio) ToResponse() RelatorioResponse {
	tipos := []string(r.TiposServico)
	if tipos == nil {
		tipos = []string{}
	}

	equipamentos := make([]EquipamentoResponse, 0, len(r.Equipamentos))
	for i := range r.Equipamentos {
		equipamentos = append(equipamentos, r.Equipamentos[i].ToResponse())
	}

	pecas := make([]PecaResponse, 0, len(r.Pecas))
	for i := range r.Pecas {
		pecas = append(pecas, r.Pecas[i].ToResponse())
	}

	return RelatorioResponse{
		ID:                 r.ID,
		NumeroRelatorio:    r.NumeroRelatorio,
		DataServico:        r.DataServico.Format(DateFormat),
		HoraInicio:         r.HoraInicio,
		HoraFim:            r.HoraFim,
		TotalHoras:         r.TotalHoras,
		RazaoSocial:        r.RazaoSocial,
		Cnpj:               r.Cnpj,
		Endereco:           r.Endereco,
		CidadeUf:           r.CidadeUf,
		InscricaoEstadual:  r.InscricaoEstadual,
		TiposServico:       tipos,
		ServicosExecutados: r.ServicosExecutados,
		Etc:                r.Etc,
		Eta:                r.Eta,
		Gc:                 r.Gc,
		Gt:                 r.Gt,
		ObservacoesTeste:   r.ObservacoesTeste,
		TecnicoResponsavel: r.TecnicoResponsavel,
		TotalPecas:         r.TotalPecas.InexactFloat64(),
		DataCriacao:        r.DataCriacao.Format(time.RFC3339),
		DataModificacao:    r.DataModificacao.Format(time.RFC3339),
		Equipamentos:       equipamentos,
		Pecas:              pecas,
	}
}

func (e *Equipamento) ToResponse() EquipamentoResponse {
	return EquipamentoResponse{
		ID:                   e.ID,
		NumeroBico:           e.NumeroBico,
		Marca:                e.Marca,
		Modelo:               e.Modelo,
		Serie:                e.Serie,
		Produto:              e.Produto,
		Inmetro:              e.Inmetro,
		PortariaAprovacao:    e.PortariaAprovacao,
		LacreRetirado:        e.LacreRetirado,
		LacreColocado:        e.LacreColocado,
		SeloReparadoRetirado: e.SeloReparadoRetirado,
		SeloReparadoColocado: e.SeloReparadoColocado,
	}
}

func (p *Peca) ToResponse() PecaResponse {
	return PecaResponse{
		ID:            p.ID,
		Descricao:     p.Descricao,
		Quantidade:    p.Quantidade,
		ValorUnitario: p.ValorUnitario.InexactFloat64(),
		ValorTotal:    p.ValorTotal.InexactFloat64(),
	}
}
