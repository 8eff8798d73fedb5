package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AgendaCar/api-concessionaria/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoHandlerTeste() *Handler {
	Configurar("segredo-de-teste")
	return NewHandler(&config.Config{
		AdminNome:  "Administrador",
		AdminEmail: "admin@concessionaria.com",
		AdminSenha: "admin123",
	})
}

func TestLoginComCredenciaisValidas(t *testing.T) {
	h := novoHandlerTeste()

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"admin@concessionaria.com","senha":"admin123"}`))
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Token   string `json:"token"`
		Usuario struct {
			Nome  string `json:"nome"`
			Email string `json:"email"`
		} `json:"usuario"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@concessionaria.com", resp.Usuario.Email)

	// o token emitido passa no middleware
	claims, err := ValidarToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@concessionaria.com", claims.Email)
}

func TestLoginComSenhaErrada(t *testing.T) {
	h := novoHandlerTeste()

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"admin@concessionaria.com","senha":"errada"}`))
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMiddlewareBarraSemToken(t *testing.T) {
	Configurar("segredo-de-teste")
	protegido := MiddlewareAutenticacao(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/clientes", nil)
	rr := httptest.NewRecorder()
	protegido.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
