package api

// RelatorioInput é o corpo esperado na criação de um relatório.
// Os nomes espelham os campos camelCase da API.
type RelatorioInput struct {
	NumeroRelatorio    string             `json:"numeroRelatorio"`
	DataServico        string             `json:"dataServico"`
	HoraInicio         string             `json:"horaInicio"`
	HoraFim            string             `json:"horaFim"`
	TotalHoras         string             `json:"totalHoras"`
	RazaoSocial        string             `json:"razaoSocial"`
	Cnpj               string             `json:"cnpj"`
	Endereco           string             `json:"endereco"`
	CidadeUf           string             `json:"cidadeUf"`
	InscricaoEstadual  string             `json:"inscricaoEstadual"`
	TiposServico       []string           `json:"tiposServico"`
	ServicosExecutados string             `json:"servicosExecutados"`
	Etc                string             `json:"etc"`
	Eta                string             `json:"eta"`
	Gc                 string             `json:"gc"`
	Gt                 string             `json:"gt"`
	ObservacoesTeste   string             `json:"observacoesTeste"`
	TecnicoResponsavel string             `json:"tecnicoResponsavel"`
	TotalPecas         float64            `json:"totalPecas"`
	Equipamentos       []EquipamentoInput `json:"equipamentos"`
	Pecas              []PecaInput        `json:"pecas"`
}

// EquipamentoInput é um equipamento dentro do corpo de criação.
// Só é persistido quando numeroBico vem preenchido.
type EquipamentoInput struct {
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

// PecaInput é uma peça dentro do corpo de criação.
// Só é persistida quando descricao vem preenchida.
type PecaInput struct {
	Descricao     string  `json:"descricao"`
	Quantidade    int     `json:"quantidade"`
	ValorUnitario float64 `json:"valorUnitario"`
	ValorTotal    float64 `json:"valorTotal"`
}

// RelatorioUpdateInput é o corpo da atualização parcial. Campos
// ausentes (nil) preservam o valor atual; campos presentes sobrescrevem,
// inclusive com string vazia. razaoSocial e dataServico só são
// aplicados quando vêm preenchidos.
type RelatorioUpdateInput struct {
	DataServico        *string   `json:"dataServico"`
	HoraInicio         *string   `json:"horaInicio"`
	HoraFim            *string   `json:"horaFim"`
	TotalHoras         *string   `json:"totalHoras"`
	RazaoSocial        *string   `json:"razaoSocial"`
	Cnpj               *string   `json:"cnpj"`
	Endereco           *string   `json:"endereco"`
	CidadeUf           *string   `json:"cidadeUf"`
	InscricaoEstadual  *string   `json:"inscricaoEstadual"`
	TiposServico       *[]string `json:"tiposServico"`
	ServicosExecutados *string   `json:"servicosExecutados"`
	Etc                *string   `json:"etc"`
	Eta                *string   `json:"eta"`
	Gc                 *string   `json:"gc"`
	Gt                 *string   `json:"gt"`
	ObservacoesTeste   *string   `json:"observacoesTeste"`
	TecnicoResponsavel *string   `json:"tecnicoResponsavel"`
	TotalPecas         *float64  `json:"totalPecas"`
}
