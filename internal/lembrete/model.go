package lembrete

// Tipos de lembrete.
const (
	TipoContato  = "contato"
	TipoFollowup = "followup"
	TipoReuniao  = "reuniao"
	TipoOutro    = "outro"
)

// Prioridades de lembrete.
const (
	PrioridadeBaixa = "baixa"
	PrioridadeMedia = "media"
	PrioridadeAlta  = "alta"
)

// ChaveArmazenamento é a chave da coleção de lembretes no store.
const ChaveArmazenamento = "agenda_lembretes"

// Lembrete é um follow-up agendado com um cliente, opcionalmente
// amarrado a um veículo do estoque.
type Lembrete struct {
	ID               string `json:"id"`
	ClienteID        string `json:"clienteId"`
	ClienteNome      string `json:"clienteNome"`
	Titulo           string `json:"titulo"`
	Descricao        string `json:"descricao"`
	Data             string `json:"data"`
	Tipo             string `json:"tipo"`
	Prioridade       string `json:"prioridade"`
	VeiculoID        string `json:"veiculoId,omitempty"`
	VeiculoDescricao string `json:"veiculoDescricao,omitempty"`
	Concluido        bool   `json:"concluido"`
	DataCriacao      string `json:"dataCriacao"`
}

// Atualizacao é a atualização parcial de um lembrete; campo nil fica como está.
type Atualizacao struct {
	Titulo           *string `json:"titulo"`
	Descricao        *string `json:"descricao"`
	Data             *string `json:"data"`
	Tipo             *string `json:"tipo"`
	Prioridade       *string `json:"prioridade"`
	VeiculoID        *string `json:"veiculoId"`
	VeiculoDescricao *string `json:"veiculoDescricao"`
	Concluido        *bool   `json:"concluido"`
}

func (l *Lembrete) aplicar(a Atualizacao) {
	if a.Titulo != nil {
		l.Titulo = *a.Titulo
	}
	if a.Descricao != nil {
		l.Descricao = *a.Descricao
	}
	if a.Data != nil {
		l.Data = *a.Data
	}
	if a.Tipo != nil {
		l.Tipo = *a.Tipo
	}
	if a.Prioridade != nil {
		l.Prioridade = *a.Prioridade
	}
	if a.VeiculoID != nil {
		l.VeiculoID = *a.VeiculoID
	}
	if a.VeiculoDescricao != nil {
		l.VeiculoDescricao = *a.VeiculoDescricao
	}
	if a.Concluido != nil {
		l.Concluido = *a.Concluido
	}
}
