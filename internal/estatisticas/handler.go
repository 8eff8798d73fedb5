package estatisticas

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/AgendaCar/api-concessionaria/internal/cliente"
	"github.com/AgendaCar/api-concessionaria/internal/interesse"
	"github.com/AgendaCar/api-concessionaria/internal/proposta"
	"github.com/AgendaCar/api-concessionaria/internal/veiculo"
)

// Handler serve o resumo do dashboard.
type Handler struct {
	Store      armazenamento.Store
	Veiculos   veiculo.Repository
	Clientes   cliente.Repository
	Interesses interesse.Repository
	Propostas  proposta.Repository
}

func NewHandler(s armazenamento.Store) *Handler {
	return &Handler{
		Store:      s,
		Veiculos:   veiculo.NewRepository(),
		Clientes:   cliente.NewRepository(),
		Interesses: interesse.NewRepository(),
		Propostas:  proposta.NewRepository(),
	}
}

// Resumo trata GET /estatisticas
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	resumo := Calcular(time.Now(),
		h.Veiculos.ListarTodos(h.Store),
		h.Clientes.ListarTodos(h.Store),
		h.Interesses.ListarTodos(h.Store),
		h.Propostas.ListarTodos(h.Store),
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumo)
}
