package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataAceitaOsDoisFormatos(t *testing.T) {
	br, err := ParseData("15/06/2024")
	require.NoError(t, err)

	iso, err := ParseData("2024-06-15")
	require.NoError(t, err)

	assert.True(t, br.Equal(iso))
}

func TestParseDataInvalida(t *testing.T) {
	_, err := ParseData("ontem")
	assert.Error(t, err)
}

func TestNormalizarData(t *testing.T) {
	assert.Equal(t, "2024-06-15", NormalizarData("15/06/2024"))
	assert.Equal(t, "2024-06-15", NormalizarData("2024-06-15"))
	// valor ilegível volta intacto
	assert.Equal(t, "ontem", NormalizarData("ontem"))
}

func TestDiasAte(t *testing.T) {
	hoje := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DiasAte(time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC), hoje))
	assert.Equal(t, 3, DiasAte(time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC), hoje))
	assert.Equal(t, -2, DiasAte(time.Date(2024, 6, 13, 8, 0, 0, 0, time.UTC), hoje))
}

func TestFormatarMoeda(t *testing.T) {
	assert.Equal(t, "85.000,00", FormatarMoeda("85000"))
	assert.Equal(t, "1.234.567,89", FormatarMoeda("1234567.89"))
	assert.Equal(t, "0,50", FormatarMoeda("0.5"))
	assert.Equal(t, "abc", FormatarMoeda("abc"))
}
