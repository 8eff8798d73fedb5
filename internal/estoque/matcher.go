// Package estoque responde se o veículo desejado por um cliente existe
// no estoque e sugere alternativas parecidas quando não existe.
package estoque

import (
	"sort"
	"strconv"
	"strings"

	"github.com/AgendaCar/api-concessionaria/internal/veiculo"
)

// LimiteSimilares é o tamanho padrão da lista de sugestões.
const LimiteSimilares = 3

// Disponivel diz se algum veículo do estoque bate com marca e modelo
// (sem diferenciar maiúsculas), ano exato e status disponível.
func Disponivel(veiculos []veiculo.Veiculo, marca, modelo, ano string) bool {
	for _, v := range veiculos {
		if v.Status == veiculo.StatusDisponivel &&
			strings.EqualFold(v.Marca, marca) &&
			strings.EqualFold(v.Modelo, modelo) &&
			v.Ano == ano {
			return true
		}
	}
	return false
}

// RankearSimilares pontua os veículos disponíveis que não são o match
// exato: +3 mesma marca, +2 mesmo modelo, +1 ano a até um de distância.
// A ordenação é estável (empate preserva a ordem do estoque) e pontuação
// zero não é filtrada, então com estoque curto a sugestão ainda aparece.
func RankearSimilares(veiculos []veiculo.Veiculo, marca, modelo, ano string, limite int) []veiculo.Veiculo {
	if limite <= 0 {
		limite = LimiteSimilares
	}

	type pontuado struct {
		v      veiculo.Veiculo
		pontos int
	}

	candidatos := make([]pontuado, 0, len(veiculos))
	for _, v := range veiculos {
		if v.Status != veiculo.StatusDisponivel {
			continue
		}
		mesmaMarca := strings.EqualFold(v.Marca, marca)
		mesmoModelo := strings.EqualFold(v.Modelo, modelo)
		if mesmaMarca && mesmoModelo && v.Ano == ano {
			continue
		}

		pontos := 0
		if mesmaMarca {
			pontos += 3
		}
		if mesmoModelo {
			pontos += 2
		}
		if anoProximo(v.Ano, ano) {
			pontos++
		}
		candidatos = append(candidatos, pontuado{v: v, pontos: pontos})
	}

	sort.SliceStable(candidatos, func(i, j int) bool {
		return candidatos[i].pontos > candidatos[j].pontos
	})

	if len(candidatos) > limite {
		candidatos = candidatos[:limite]
	}
	resultado := make([]veiculo.Veiculo, 0, len(candidatos))
	for _, c := range candidatos {
		resultado = append(resultado, c.v)
	}
	return resultado
}

// anoProximo aceita diferença de no máximo um ano; texto que não é
// número nunca pontua.
func anoProximo(a, b string) bool {
	anoA, errA := strconv.Atoi(strings.TrimSpace(a))
	anoB, errB := strconv.Atoi(strings.TrimSpace(b))
	if errA != nil || errB != nil {
		return false
	}
	diff := anoA - anoB
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}
