// Package acoes monta a lista priorizada de pendências do dia: clientes
// para avisar (o veículo desejado chegou ao estoque) e lembretes
// vencidos ou próximos do vencimento.
package acoes

import (
	"sort"
	"time"

	"github.com/AgendaCar/api-concessionaria/internal/cliente"
	"github.com/AgendaCar/api-concessionaria/internal/estoque"
	"github.com/AgendaCar/api-concessionaria/internal/interesse"
	"github.com/AgendaCar/api-concessionaria/internal/lembrete"
	"github.com/AgendaCar/api-concessionaria/internal/utils"
	"github.com/AgendaCar/api-concessionaria/internal/veiculo"
)

// Limites do painel.
const (
	MaximoAcoes     = 10
	JanelaDiasAviso = 3
)

// Tipos de ação.
const (
	TipoNotificar = "notificar"
	TipoLembrete  = "lembrete"
)

// Acao é uma pendência exibida no painel do dia.
type Acao struct {
	Tipo            string `json:"tipo"`
	Titulo          string `json:"titulo"`
	Descricao       string `json:"descricao"`
	ClienteNome     string `json:"clienteNome"`
	ClienteTelefone string `json:"clienteTelefone"`
	Data            string `json:"data"`
	Prioridade      string `json:"prioridade"`
	Atrasada        bool   `json:"atrasada"`
}

// PainelDoDia devolve no máximo MaximoAcoes pendências: primeiro os
// avisos de veículo em estoque (sempre prioridade alta), depois os
// lembretes abertos vencidos ou a vencer em até três dias, ordenados
// por atraso, prioridade e data. Lembrete de cliente já excluído não
// quebra nada: o telefone apenas sai vazio.
func PainelDoDia(hoje time.Time, interesses []interesse.Interesse, lembretes []lembrete.Lembrete, veiculos []veiculo.Veiculo, clientes []cliente.Cliente) []Acao {
	acoes := []Acao{}

	for _, i := range interesses {
		if i.Status != interesse.StatusPendente {
			continue
		}
		if !estoque.Disponivel(veiculos, i.Marca, i.Modelo, i.Ano) {
			continue
		}
		acoes = append(acoes, Acao{
			Tipo:            TipoNotificar,
			Titulo:          "Avisar " + i.ClienteNome,
			Descricao:       i.Marca + " " + i.Modelo + " " + i.Ano + " disponível em estoque",
			ClienteNome:     i.ClienteNome,
			ClienteTelefone: telefoneDoCliente(clientes, i.ClienteID),
			Data:            i.DataCadastro,
			Prioridade:      lembrete.PrioridadeAlta,
		})
	}

	type pendente struct {
		l        lembrete.Lembrete
		diasAte  int
		atrasado bool
	}
	pendentes := []pendente{}
	for _, l := range lembretes {
		if l.Concluido {
			continue
		}
		data, err := utils.ParseData(l.Data)
		if err != nil {
			continue
		}
		dias := utils.DiasAte(data, hoje)
		if dias > JanelaDiasAviso {
			continue
		}
		pendentes = append(pendentes, pendente{l: l, diasAte: dias, atrasado: dias < 0})
	}

	sort.SliceStable(pendentes, func(a, b int) bool {
		if pendentes[a].atrasado != pendentes[b].atrasado {
			return pendentes[a].atrasado
		}
		pa, pb := pesoPrioridade(pendentes[a].l.Prioridade), pesoPrioridade(pendentes[b].l.Prioridade)
		if pa != pb {
			return pa > pb
		}
		return pendentes[a].diasAte < pendentes[b].diasAte
	})

	for _, p := range pendentes {
		acoes = append(acoes, Acao{
			Tipo:            TipoLembrete,
			Titulo:          p.l.Titulo,
			Descricao:       p.l.Descricao,
			ClienteNome:     p.l.ClienteNome,
			ClienteTelefone: telefoneDoCliente(clientes, p.l.ClienteID),
			Data:            p.l.Data,
			Prioridade:      p.l.Prioridade,
			Atrasada:        p.atrasado,
		})
	}

	if len(acoes) > MaximoAcoes {
		acoes = acoes[:MaximoAcoes]
	}
	return acoes
}

func telefoneDoCliente(clientes []cliente.Cliente, id string) string {
	for _, c := range clientes {
		if c.ID == id {
			return c.Telefone
		}
	}
	return ""
}

func pesoPrioridade(p string) int {
	switch p {
	case lembrete.PrioridadeAlta:
		return 3
	case lembrete.PrioridadeMedia:
		return 2
	case lembrete.PrioridadeBaixa:
		return 1
	default:
		return 0
	}
}
