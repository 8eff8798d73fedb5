package cliente

// ChaveArmazenamento é a chave da coleção de clientes no store.
const ChaveArmazenamento = "agenda_clientes"

// Cliente é um comprador (ou interessado) cadastrado na agenda.
// O telefone funciona como chave secundária: a checagem de duplicidade
// acontece antes da inserção, no handler.
type Cliente struct {
	ID           string `json:"id"`
	Nome         string `json:"nome"`
	Telefone     string `json:"telefone"`
	Email        string `json:"email"`
	CPF          string `json:"cpf"`
	Endereco     string `json:"endereco"`
	Observacoes  string `json:"observacoes"`
	DataCadastro string `json:"dataCadastro"`
}

// Atualizacao é a atualização parcial de um cliente; campo nil fica como está.
type Atualizacao struct {
	Nome        *string `json:"nome"`
	Telefone    *string `json:"telefone"`
	Email       *string `json:"email"`
	CPF         *string `json:"cpf"`
	Endereco    *string `json:"endereco"`
	Observacoes *string `json:"observacoes"`
}

func (c *Cliente) aplicar(a Atualizacao) {
	if a.Nome != nil {
		c.Nome = *a.Nome
	}
	if a.Telefone != nil {
		c.Telefone = *a.Telefone
	}
	if a.Email != nil {
		c.Email = *a.Email
	}
	if a.CPF != nil {
		c.CPF = *a.CPF
	}
	if a.Endereco != nil {
		c.Endereco = *a.Endereco
	}
	if a.Observacoes != nil {
		c.Observacoes = *a.Observacoes
	}
}
