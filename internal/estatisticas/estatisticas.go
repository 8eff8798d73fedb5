// Package estatisticas calcula as visões agregadas do dashboard a
// partir das coleções vivas, no lugar dos números fixos das telas.
package estatisticas

import (
	"sort"
	"time"

	"github.com/AgendaCar/api-concessionaria/internal/cliente"
	"github.com/AgendaCar/api-concessionaria/internal/interesse"
	"github.com/AgendaCar/api-concessionaria/internal/proposta"
	"github.com/AgendaCar/api-concessionaria/internal/utils"
	"github.com/AgendaCar/api-concessionaria/internal/veiculo"
)

// ResumoDoDia são os contadores de atividade de hoje.
type ResumoDoDia struct {
	Vendas                int `json:"vendas"`
	ClientesCadastrados   int `json:"clientesCadastrados"`
	InteressesRegistrados int `json:"interessesRegistrados"`
	PropostasCriadas      int `json:"propostasCriadas"`
}

// Totais são os números gerais exibidos nos cartões do topo.
type Totais struct {
	ClientesAtivos      int     `json:"clientesAtivos"`
	VeiculosDisponiveis int     `json:"veiculosDisponiveis"`
	InteressesAbertos   int     `json:"interessesAbertos"`
	TaxaConversao       float64 `json:"taxaConversao"`
}

// ContagemMarca é uma fatia do gráfico de vendas por marca.
type ContagemMarca struct {
	Marca  string `json:"marca"`
	Vendas int    `json:"vendas"`
}

// VeiculoProcurado é uma linha do ranking de veículos mais procurados.
type VeiculoProcurado struct {
	Veiculo    string `json:"veiculo"`
	Interesses int    `json:"interesses"`
}

// Resumo agrega todas as visões do dashboard.
type Resumo struct {
	ResumoDoDia    ResumoDoDia        `json:"resumoDoDia"`
	Totais         Totais             `json:"totais"`
	VendasPorMarca []ContagemMarca    `json:"vendasPorMarca"`
	MaisProcurados []VeiculoProcurado `json:"maisProcurados"`
}

const limiteMaisProcurados = 5

// Calcular monta o resumo completo para a data de referência.
func Calcular(hoje time.Time, veiculos []veiculo.Veiculo, clientes []cliente.Cliente, interesses []interesse.Interesse, propostas []proposta.Proposta) Resumo {
	hojeISO := hoje.Format(utils.FormatoISO)

	resumo := Resumo{}
	for _, p := range propostas {
		if utils.NormalizarData(p.DataCriacao) == hojeISO {
			resumo.ResumoDoDia.PropostasCriadas++
			if p.Status == proposta.StatusAceita {
				resumo.ResumoDoDia.Vendas++
			}
		}
	}
	for _, c := range clientes {
		if utils.NormalizarData(c.DataCadastro) == hojeISO {
			resumo.ResumoDoDia.ClientesCadastrados++
		}
	}
	for _, i := range interesses {
		if utils.NormalizarData(i.DataCadastro) == hojeISO {
			resumo.ResumoDoDia.InteressesRegistrados++
		}
	}

	resumo.Totais.ClientesAtivos = len(clientes)
	for _, v := range veiculos {
		if v.Status == veiculo.StatusDisponivel {
			resumo.Totais.VeiculosDisponiveis++
		}
	}
	aceitas := 0
	for _, p := range propostas {
		if p.Status == proposta.StatusAceita {
			aceitas++
		}
	}
	for _, i := range interesses {
		if i.Status == interesse.StatusPendente {
			resumo.Totais.InteressesAbertos++
		}
	}
	if len(propostas) > 0 {
		resumo.Totais.TaxaConversao = float64(aceitas) / float64(len(propostas)) * 100
	}

	resumo.VendasPorMarca = vendasPorMarca(propostas, veiculos)
	resumo.MaisProcurados = maisProcurados(interesses)
	return resumo
}

// vendasPorMarca agrupa as propostas aceitas pela marca do veículo.
// Proposta apontando veículo já removido do estoque é ignorada.
func vendasPorMarca(propostas []proposta.Proposta, veiculos []veiculo.Veiculo) []ContagemMarca {
	porID := make(map[string]veiculo.Veiculo, len(veiculos))
	for _, v := range veiculos {
		porID[v.ID] = v
	}

	contagem := map[string]int{}
	ordem := []string{}
	for _, p := range propostas {
		if p.Status != proposta.StatusAceita {
			continue
		}
		v, ok := porID[p.VeiculoID]
		if !ok {
			continue
		}
		if _, visto := contagem[v.Marca]; !visto {
			ordem = append(ordem, v.Marca)
		}
		contagem[v.Marca]++
	}

	resultado := make([]ContagemMarca, 0, len(ordem))
	for _, marca := range ordem {
		resultado = append(resultado, ContagemMarca{Marca: marca, Vendas: contagem[marca]})
	}
	sort.SliceStable(resultado, func(i, j int) bool {
		return resultado[i].Vendas > resultado[j].Vendas
	})
	return resultado
}

func maisProcurados(interesses []interesse.Interesse) []VeiculoProcurado {
	contagem := map[string]int{}
	ordem := []string{}
	for _, i := range interesses {
		rotulo := i.Marca + " " + i.Modelo
		if _, visto := contagem[rotulo]; !visto {
			ordem = append(ordem, rotulo)
		}
		contagem[rotulo]++
	}

	resultado := make([]VeiculoProcurado, 0, len(ordem))
	for _, rotulo := range ordem {
		resultado = append(resultado, VeiculoProcurado{Veiculo: rotulo, Interesses: contagem[rotulo]})
	}
	sort.SliceStable(resultado, func(i, j int) bool {
		return resultado[i].Interesses > resultado[j].Interesses
	})
	if len(resultado) > limiteMaisProcurados {
		resultado = resultado[:limiteMaisProcurados]
	}
	return resultado
}
