package historico

import (
	"encoding/json"
	"net/http"

	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/AgendaCar/api-concessionaria/internal/cliente"
	"github.com/AgendaCar/api-concessionaria/internal/interesse"
	"github.com/AgendaCar/api-concessionaria/internal/lembrete"
	"github.com/AgendaCar/api-concessionaria/internal/proposta"
	"github.com/gorilla/mux"
)

// Handler serve a linha do tempo de um cliente.
type Handler struct {
	Store      armazenamento.Store
	Clientes   cliente.Repository
	Interesses interesse.Repository
	Propostas  proposta.Repository
	Lembretes  lembrete.Repository
}

func NewHandler(s armazenamento.Store) *Handler {
	return &Handler{
		Store:      s,
		Clientes:   cliente.NewRepository(),
		Interesses: interesse.NewRepository(),
		Propostas:  proposta.NewRepository(),
		Lembretes:  lembrete.NewRepository(),
	}
}

// HistoricoDoCliente trata GET /clientes/{id}/historico
func (h *Handler) HistoricoDoCliente(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	c, ok := h.Clientes.BuscarPorID(h.Store, id)
	if !ok {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}

	itens := DoCliente(c,
		h.Interesses.ListarTodos(h.Store),
		h.Propostas.ListarTodos(h.Store),
		h.Lembretes.ListarTodos(h.Store),
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(itens)
}
