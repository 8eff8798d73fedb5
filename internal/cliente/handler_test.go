package cliente

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriarClienteEListar(t *testing.T) {
	h := NewHandler(armazenamento.NewMemStore())

	req := httptest.NewRequest(http.MethodPost, "/clientes",
		strings.NewReader(`{"nome":"João Silva","telefone":"11999999999","cpf":"52998224725"}`))
	rr := httptest.NewRecorder()
	h.CriarCliente(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var criado Cliente
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &criado))
	assert.NotEmpty(t, criado.ID)
	assert.NotEmpty(t, criado.DataCadastro)
	// telefone e CPF gravados com máscara
	assert.Equal(t, "(11)999999999", criado.Telefone)
	assert.Equal(t, "529.982.247-25", criado.CPF)

	rr = httptest.NewRecorder()
	h.ListarClientes(rr, httptest.NewRequest(http.MethodGet, "/clientes", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var clientes []Cliente
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &clientes))
	require.Len(t, clientes, 1)
	assert.Equal(t, criado, clientes[0])
}

func TestCriarClienteTelefoneDuplicado(t *testing.T) {
	h := NewHandler(armazenamento.NewMemStore())

	corpo := `{"nome":"João Silva","telefone":"11999999999"}`
	rr := httptest.NewRecorder()
	h.CriarCliente(rr, httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(corpo)))
	require.Equal(t, http.StatusCreated, rr.Code)

	outro := `{"nome":"Maria Santos","telefone":"(11)99999-9999"}`
	rr = httptest.NewRecorder()
	h.CriarCliente(rr, httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(outro)))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestCriarClienteSemCamposObrigatorios(t *testing.T) {
	h := NewHandler(armazenamento.NewMemStore())

	rr := httptest.NewRecorder()
	h.CriarCliente(rr, httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(`{"nome":"Sem Telefone"}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCriarClienteCPFInvalido(t *testing.T) {
	h := NewHandler(armazenamento.NewMemStore())

	corpo := `{"nome":"João Silva","telefone":"11999999999","cpf":"11111111111"}`
	rr := httptest.NewRecorder()
	h.CriarCliente(rr, httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(corpo)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
