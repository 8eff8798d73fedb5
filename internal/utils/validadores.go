package utils

import (
	"regexp"
	"strings"
)

var regexEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RemoverNaoNumericos descarta tudo que não for dígito.
func RemoverNaoNumericos(valor string) string {
	var b strings.Builder
	for _, r := range valor {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidarCPF confere os dois dígitos verificadores do CPF.
func ValidarCPF(cpf string) bool {
	limpo := RemoverNaoNumericos(cpf)
	if len(limpo) != 11 {
		return false
	}

	// CPFs com todos os dígitos iguais passam no cálculo mas são inválidos
	todosIguais := true
	for i := 1; i < 11; i++ {
		if limpo[i] != limpo[0] {
			todosIguais = false
			break
		}
	}
	if todosIguais {
		return false
	}

	soma := 0
	for i := 0; i < 9; i++ {
		soma += int(limpo[i]-'0') * (10 - i)
	}
	resto := (soma * 10) % 11
	if resto == 10 {
		resto = 0
	}
	if resto != int(limpo[9]-'0') {
		return false
	}

	soma = 0
	for i := 0; i < 10; i++ {
		soma += int(limpo[i]-'0') * (11 - i)
	}
	resto = (soma * 10) % 11
	if resto == 10 {
		resto = 0
	}
	return resto == int(limpo[10]-'0')
}

// ValidarTelefone aceita fixo (10 dígitos com DDD) ou celular (11).
func ValidarTelefone(telefone string) bool {
	limpo := RemoverNaoNumericos(telefone)
	return len(limpo) == 10 || len(limpo) == 11
}

// ValidarEmail valida o formato; email é opcional, vazio é aceito.
func ValidarEmail(email string) bool {
	if email == "" {
		return true
	}
	return regexEmail.MatchString(email)
}
