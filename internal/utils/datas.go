package utils

import (
	"fmt"
	"strings"
	"time"
)

// FormatoISO é o formato canônico de gravação de datas.
const FormatoISO = "2006-01-02"

const formatoBR = "02/01/2006"

// ParseData interpreta uma data textual. Registros antigos usam o
// formato localizado dd/mm/yyyy; o formato canônico é ISO yyyy-mm-dd.
// A barra decide o caminho de parse.
func ParseData(valor string) (time.Time, error) {
	valor = strings.TrimSpace(valor)
	if strings.Contains(valor, "/") {
		return time.Parse(formatoBR, valor)
	}
	if t, err := time.Parse(FormatoISO, valor); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, valor)
}

// NormalizarData converte qualquer representação aceita para ISO.
// Valores que não parseiam voltam como estão, para não perder dado.
func NormalizarData(valor string) string {
	t, err := ParseData(valor)
	if err != nil {
		return valor
	}
	return t.Format(FormatoISO)
}

// DiasAte retorna a diferença em dias inteiros entre a data e hoje,
// ignorando a hora. Negativo significa data no passado.
func DiasAte(data, hoje time.Time) int {
	d := time.Date(data.Year(), data.Month(), data.Day(), 0, 0, 0, 0, time.UTC)
	h := time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(h).Hours() / 24)
}

// FormatarMoeda apresenta um valor numérico textual no padrão pt-BR
// (milhar com ponto, centavos com vírgula). Entrada inválida volta intacta.
func FormatarMoeda(valor string) string {
	var v float64
	if _, err := fmt.Sscanf(strings.TrimSpace(valor), "%f", &v); err != nil {
		return valor
	}
	negativo := v < 0
	if negativo {
		v = -v
	}
	inteiro := int64(v)
	centavos := int64((v-float64(inteiro))*100 + 0.5)
	if centavos == 100 {
		inteiro++
		centavos = 0
	}

	digitos := fmt.Sprintf("%d", inteiro)
	var b strings.Builder
	for i, d := range digitos {
		if i > 0 && (len(digitos)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	resultado := fmt.Sprintf("%s,%02d", b.String(), centavos)
	if negativo {
		return "-" + resultado
	}
	return resultado
}
