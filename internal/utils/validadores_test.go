package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarCPF(t *testing.T) {
	// CPF de exemplo com dígitos verificadores corretos
	assert.True(t, ValidarCPF("529.982.247-25"))
	assert.True(t, ValidarCPF("52998224725"))

	assert.False(t, ValidarCPF("529.982.247-26"))
	assert.False(t, ValidarCPF("111.111.111-11"))
	assert.False(t, ValidarCPF("123"))
}

func TestValidarTelefone(t *testing.T) {
	assert.True(t, ValidarTelefone("(11)99999-9999"))
	assert.True(t, ValidarTelefone("1133334444"))
	assert.False(t, ValidarTelefone("999"))
	assert.False(t, ValidarTelefone("119999999999"))
}

func TestValidarEmail(t *testing.T) {
	assert.True(t, ValidarEmail("joao@exemplo.com"))
	// email é opcional
	assert.True(t, ValidarEmail(""))
	assert.False(t, ValidarEmail("sem-arroba"))
}

func TestMascaras(t *testing.T) {
	assert.Equal(t, "(11)999999999", AplicarMascaraTelefone("11999999999"))
	assert.Equal(t, "11", AplicarMascaraTelefone("11"))
	assert.Equal(t, "529.982.247-25", AplicarMascaraCPF("52998224725"))
	assert.Equal(t, "529.982", AplicarMascaraCPF("529982"))
}
