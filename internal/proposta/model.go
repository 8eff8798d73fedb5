package proposta

import (
	"fmt"
	"strconv"
	"strings"
)

// Situações de uma proposta comercial.
const (
	StatusPendente = "pendente"
	StatusAceita   = "aceita"
	StatusRecusada = "recusada"
)

// Chaves da coleção e do contador sequencial no store. O contador é
// separado da coleção de propósito: excluir proposta nunca devolve o
// número para a fila.
const (
	ChaveArmazenamento = "agenda_propostas"
	ChaveSequencia     = "agenda_seq_propostas"
)

// Proposta é uma oferta comercial formalizada para um cliente sobre um
// veículo do estoque, com nomes desnormalizados para exibição.
type Proposta struct {
	ID               string `json:"id"`
	Numero           string `json:"numero"`
	ClienteID        string `json:"clienteId"`
	ClienteNome      string `json:"clienteNome"`
	ClienteTelefone  string `json:"clienteTelefone"`
	VeiculoID        string `json:"veiculoId"`
	VeiculoDescricao string `json:"veiculoDescricao"`
	ValorVeiculo     string `json:"valorVeiculo"`
	Desconto         string `json:"desconto"`
	ValorFinal       string `json:"valorFinal"`
	FormaPagamento   string `json:"formaPagamento"`
	Entrada          string `json:"entrada"`
	NumeroParcelas   string `json:"numeroParcelas"`
	ValorParcela     string `json:"valorParcela"`
	Parcelas         string `json:"parcelas"`
	Validade         string `json:"validade"`
	Observacoes      string `json:"observacoes"`
	Status           string `json:"status"`
	DataCriacao      string `json:"dataCriacao"`
}

// FormatarNumero monta o número sequencial no padrão PROP-001.
func FormatarNumero(sequencia int) string {
	return fmt.Sprintf("PROP-%03d", sequencia)
}

// CalcularValorFinal aplica o desconto com piso em zero. Valores que
// não parseiam contam como zero, como no formulário original.
func CalcularValorFinal(valorVeiculo, desconto string) string {
	valor := parseValor(valorVeiculo)
	final := valor - parseValor(desconto)
	if final < 0 {
		final = 0
	}
	return strconv.FormatFloat(final, 'f', -1, 64)
}

// ResumoParcelas monta o texto "Nx R$ V" exibido na proposta; só faz
// sentido para financiamento com parcelas preenchidas.
func ResumoParcelas(formaPagamento, numeroParcelas, valorParcela string) string {
	if formaPagamento != "Financiamento" || numeroParcelas == "" || valorParcela == "" {
		return "-"
	}
	return fmt.Sprintf("%sx R$ %s", numeroParcelas, valorParcela)
}

func parseValor(texto string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(texto), 64)
	if err != nil {
		return 0
	}
	return v
}
