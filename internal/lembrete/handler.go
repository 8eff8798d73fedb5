package lembrete

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/AgendaCar/api-concessionaria/internal/cliente"
	"github.com/AgendaCar/api-concessionaria/internal/utils"
	"github.com/AgendaCar/api-concessionaria/internal/veiculo"
	"github.com/gorilla/mux"
)

// Handler encapsula o store e os repositories do fluxo de lembretes.
type Handler struct {
	Store      armazenamento.Store
	Repository Repository
	Clientes   cliente.Repository
	Veiculos   veiculo.Repository
}

func NewHandler(s armazenamento.Store) *Handler {
	return &Handler{
		Store:      s,
		Repository: NewRepository(),
		Clientes:   cliente.NewRepository(),
		Veiculos:   veiculo.NewRepository(),
	}
}

// CriarLembrete trata POST /lembretes
func (h *Handler) CriarLembrete(w http.ResponseWriter, r *http.Request) {
	var l Lembrete
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if l.ClienteID == "" || l.Titulo == "" || l.Data == "" {
		http.Error(w, "Preencha cliente, título e data", http.StatusBadRequest)
		return
	}

	c, ok := h.Clientes.BuscarPorID(h.Store, l.ClienteID)
	if !ok {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}
	l.ClienteNome = c.Nome

	// denormaliza a descrição do veículo quando o lembrete aponta um
	if l.VeiculoID != "" && l.VeiculoDescricao == "" {
		for _, v := range h.Veiculos.ListarTodos(h.Store) {
			if v.ID == l.VeiculoID {
				l.VeiculoDescricao = v.Descricao()
				break
			}
		}
	}

	if l.ID == "" {
		l.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if l.Tipo == "" {
		l.Tipo = TipoContato
	}
	if l.Prioridade == "" {
		l.Prioridade = PrioridadeMedia
	}
	l.Data = utils.NormalizarData(l.Data)
	l.Concluido = false
	if l.DataCriacao == "" {
		l.DataCriacao = time.Now().Format(utils.FormatoISO)
	} else {
		l.DataCriacao = utils.NormalizarData(l.DataCriacao)
	}
	h.Repository.Adicionar(h.Store, l)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

// ListarLembretes trata GET /lembretes
func (h *Handler) ListarLembretes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Repository.ListarTodos(h.Store))
}

// BuscarPorID trata GET /lembretes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	l, ok := h.Repository.BuscarPorID(h.Store, id)
	if !ok {
		http.Error(w, "Lembrete não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(l)
}

// AtualizarLembrete trata PUT /lembretes/{id}
func (h *Handler) AtualizarLembrete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var campos Atualizacao
	if err := json.NewDecoder(r.Body).Decode(&campos); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if campos.Data != nil {
		normalizada := utils.NormalizarData(*campos.Data)
		campos.Data = &normalizada
	}
	h.Repository.Atualizar(h.Store, id, campos)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Lembrete atualizado com sucesso"))
}

// ConcluirLembrete trata PATCH /lembretes/{id}/concluir
func (h *Handler) ConcluirLembrete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	concluido := true
	h.Repository.Atualizar(h.Store, id, Atualizacao{Concluido: &concluido})

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Lembrete concluído"))
}

// DeletarLembrete trata DELETE /lembretes/{id}
func (h *Handler) DeletarLembrete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.Repository.Remover(h.Store, id)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Lembrete removido com sucesso"))
}
