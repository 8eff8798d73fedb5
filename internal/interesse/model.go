package interesse

// Situações de um interesse registrado.
const (
	StatusPendente  = "pendente"
	StatusAtendido  = "atendido"
	StatusCancelado = "cancelado"
)

// ChaveArmazenamento é a chave da coleção de interesses no store.
const ChaveArmazenamento = "agenda_interesses"

// Interesse é o desejo de compra de um cliente: o veículo que ele
// procura, com nome e telefone desnormalizados para exibição. Se o
// veículo está em estoque é sempre calculado contra o estoque atual,
// nunca gravado, para não divergir da realidade.
type Interesse struct {
	ID              string `json:"id"`
	ClienteID       string `json:"clienteId"`
	ClienteNome     string `json:"clienteNome"`
	ClienteTelefone string `json:"clienteTelefone"`
	Marca           string `json:"marca"`
	Modelo          string `json:"modelo"`
	Ano             string `json:"ano"`
	Cor             string `json:"cor"`
	ValorMaximo     string `json:"valorMaximo"`
	Observacoes     string `json:"observacoes"`
	DataCadastro    string `json:"dataCadastro"`
	Status          string `json:"status"`
}

// Atualizacao é a atualização parcial de um interesse; campo nil fica como está.
type Atualizacao struct {
	Marca       *string `json:"marca"`
	Modelo      *string `json:"modelo"`
	Ano         *string `json:"ano"`
	Cor         *string `json:"cor"`
	ValorMaximo *string `json:"valorMaximo"`
	Observacoes *string `json:"observacoes"`
	Status      *string `json:"status"`
}

func (i *Interesse) aplicar(a Atualizacao) {
	if a.Marca != nil {
		i.Marca = *a.Marca
	}
	if a.Modelo != nil {
		i.Modelo = *a.Modelo
	}
	if a.Ano != nil {
		i.Ano = *a.Ano
	}
	if a.Cor != nil {
		i.Cor = *a.Cor
	}
	if a.ValorMaximo != nil {
		i.ValorMaximo = *a.ValorMaximo
	}
	if a.Observacoes != nil {
		i.Observacoes = *a.Observacoes
	}
	if a.Status != nil {
		i.Status = *a.Status
	}
}
