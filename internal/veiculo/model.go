package veiculo

// Situações possíveis de um veículo no estoque.
const (
	StatusDisponivel = "disponivel"
	StatusReservado  = "reservado"
	StatusVendido    = "vendido"
	StatusManutencao = "manutencao"
)

// ChaveArmazenamento é a chave da coleção de veículos no store.
const ChaveArmazenamento = "agenda_veiculos"

// Veiculo representa um carro do estoque da concessionária. Os campos
// numéricos chegam do console como texto e assim são gravados.
type Veiculo struct {
	ID            string `json:"id"`
	Marca         string `json:"marca"`
	Modelo        string `json:"modelo"`
	Ano           string `json:"ano"`
	Placa         string `json:"placa"`
	Cor           string `json:"cor"`
	Chassi        string `json:"chassi"`
	Valor         string `json:"valor"`
	Combustivel   string `json:"combustivel"`
	Quilometragem string `json:"quilometragem"`
	Status        string `json:"status"`
}

// Descricao monta o rótulo "Marca Modelo Ano" usado em propostas e lembretes.
func (v Veiculo) Descricao() string {
	return v.Marca + " " + v.Modelo + " " + v.Ano
}

// Atualizacao é a atualização parcial de um veículo; campo nil fica como está.
type Atualizacao struct {
	Marca         *string `json:"marca"`
	Modelo        *string `json:"modelo"`
	Ano           *string `json:"ano"`
	Placa         *string `json:"placa"`
	Cor           *string `json:"cor"`
	Chassi        *string `json:"chassi"`
	Valor         *string `json:"valor"`
	Combustivel   *string `json:"combustivel"`
	Quilometragem *string `json:"quilometragem"`
	Status        *string `json:"status"`
}

func (v *Veiculo) aplicar(a Atualizacao) {
	if a.Marca != nil {
		v.Marca = *a.Marca
	}
	if a.Modelo != nil {
		v.Modelo = *a.Modelo
	}
	if a.Ano != nil {
		v.Ano = *a.Ano
	}
	if a.Placa != nil {
		v.Placa = *a.Placa
	}
	if a.Cor != nil {
		v.Cor = *a.Cor
	}
	if a.Chassi != nil {
		v.Chassi = *a.Chassi
	}
	if a.Valor != nil {
		v.Valor = *a.Valor
	}
	if a.Combustivel != nil {
		v.Combustivel = *a.Combustivel
	}
	if a.Quilometragem != nil {
		v.Quilometragem = *a.Quilometragem
	}
	if a.Status != nil {
		v.Status = *a.Status
	}
}
