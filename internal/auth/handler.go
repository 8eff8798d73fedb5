package auth

import (
	"encoding/json"
	"net/http"

	"github.com/AgendaCar/api-concessionaria/internal/config"
	"github.com/AgendaCar/api-concessionaria/internal/logger"
	"github.com/AgendaCar/api-concessionaria/internal/utils"
	"go.uber.org/zap"
)

// Handler trata o login do usuário único do sistema. As credenciais
// vêm do ambiente; a senha é comparada via hash bcrypt gerado na carga.
type Handler struct {
	nome      string
	email     string
	senhaHash string
}

func NewHandler(cfg *config.Config) *Handler {
	hash, err := utils.HashSenha(cfg.AdminSenha)
	if err != nil {
		logger.L().Fatal("erro ao preparar credenciais de login", zap.Error(err))
	}
	return &Handler{
		nome:      cfg.AdminNome,
		email:     cfg.AdminEmail,
		senhaHash: hash,
	}
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Token   string       `json:"token"`
	Usuario usuarioLogado `json:"usuario"`
}

type usuarioLogado struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// Login trata POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if req.Email != h.email || !utils.CheckSenha(h.senhaHash, req.Senha) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := GerarToken(h.email)
	if err != nil {
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loginResponse{
		Token:   token,
		Usuario: usuarioLogado{Nome: h.nome, Email: h.email},
	})
}
