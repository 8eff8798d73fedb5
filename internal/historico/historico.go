// Package historico reconstrói a linha do tempo de um cliente a partir
// das coleções independentes: cadastro, interesses, propostas e
// lembretes, do mais recente para o mais antigo.
package historico

import (
	"sort"
	"time"

	"github.com/AgendaCar/api-concessionaria/internal/cliente"
	"github.com/AgendaCar/api-concessionaria/internal/interesse"
	"github.com/AgendaCar/api-concessionaria/internal/lembrete"
	"github.com/AgendaCar/api-concessionaria/internal/proposta"
	"github.com/AgendaCar/api-concessionaria/internal/utils"
)

// Item é um evento da linha do tempo. Tipo reaproveita os tipos de
// lembrete e acrescenta "cadastro", "interesse", "venda" e "contato".
type Item struct {
	ID        string `json:"id"`
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao"`
	Data      string `json:"data"`
	Detalhes  string `json:"detalhes,omitempty"`
}

// DoCliente monta o histórico completo. Visão derivada e recalculada a
// cada chamada; com as mesmas entradas a ordem de saída é a mesma
// (empate de data preserva a ordem de emissão).
func DoCliente(c cliente.Cliente, interesses []interesse.Interesse, propostas []proposta.Proposta, lembretes []lembrete.Lembrete) []Item {
	itens := []Item{}

	detalhesCadastro := "Telefone: " + c.Telefone
	if c.Email != "" {
		detalhesCadastro += " | Email: " + c.Email
	}
	itens = append(itens, Item{
		ID:        "cadastro-" + c.ID,
		Tipo:      "cadastro",
		Descricao: "Cliente cadastrado no sistema",
		Data:      c.DataCadastro,
		Detalhes:  detalhesCadastro,
	})

	for _, i := range interesses {
		if i.ClienteID != c.ID {
			continue
		}
		itens = append(itens, Item{
			ID:        "interesse-" + i.ID,
			Tipo:      "interesse",
			Descricao: "Interesse em " + i.Marca + " " + i.Modelo + " " + i.Ano,
			Data:      i.DataCadastro,
			Detalhes:  i.Observacoes,
		})
	}

	for _, p := range propostas {
		if p.ClienteID != c.ID {
			continue
		}
		tipo := "contato"
		if p.Status == proposta.StatusAceita {
			tipo = "venda"
		}
		itens = append(itens, Item{
			ID:        "proposta-" + p.ID,
			Tipo:      tipo,
			Descricao: "Proposta " + p.Numero + " - " + p.VeiculoDescricao,
			Data:      p.DataCriacao,
			Detalhes:  "Valor: R$ " + utils.FormatarMoeda(p.ValorFinal) + " | Status: " + p.Status,
		})
	}

	for _, l := range lembretes {
		if l.ClienteID != c.ID {
			continue
		}
		itens = append(itens, Item{
			ID:        "lembrete-" + l.ID,
			Tipo:      l.Tipo,
			Descricao: l.Titulo,
			Data:      l.DataCriacao,
			Detalhes:  l.Descricao,
		})
	}

	sort.SliceStable(itens, func(a, b int) bool {
		return parseData(itens[a].Data).After(parseData(itens[b].Data))
	})
	return itens
}

// parseData tolera as duas grafias históricas (dd/mm/yyyy e ISO); data
// ilegível vai para o fim da linha do tempo em vez de derrubar a ordenação.
func parseData(valor string) time.Time {
	t, err := utils.ParseData(valor)
	if err != nil {
		return time.Time{}
	}
	return t
}
