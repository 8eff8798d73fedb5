package acoes

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/AgendaCar/api-concessionaria/internal/cliente"
	"github.com/AgendaCar/api-concessionaria/internal/interesse"
	"github.com/AgendaCar/api-concessionaria/internal/lembrete"
	"github.com/AgendaCar/api-concessionaria/internal/veiculo"
)

// Handler serve o painel de ações do dia.
type Handler struct {
	Store      armazenamento.Store
	Interesses interesse.Repository
	Lembretes  lembrete.Repository
	Veiculos   veiculo.Repository
	Clientes   cliente.Repository
}

func NewHandler(s armazenamento.Store) *Handler {
	return &Handler{
		Store:      s,
		Interesses: interesse.NewRepository(),
		Lembretes:  lembrete.NewRepository(),
		Veiculos:   veiculo.NewRepository(),
		Clientes:   cliente.NewRepository(),
	}
}

// ListarAcoes trata GET /painel/acoes
func (h *Handler) ListarAcoes(w http.ResponseWriter, r *http.Request) {
	acoes := PainelDoDia(time.Now(),
		h.Interesses.ListarTodos(h.Store),
		h.Lembretes.ListarTodos(h.Store),
		h.Veiculos.ListarTodos(h.Store),
		h.Clientes.ListarTodos(h.Store),
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(acoes)
}
