package veiculo

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/gorilla/mux"
)

// Handler encapsula o store e o repository de veículos.
type Handler struct {
	Store      armazenamento.Store
	Repository Repository
}

func NewHandler(s armazenamento.Store) *Handler {
	return &Handler{
		Store:      s,
		Repository: NewRepository(),
	}
}

// CriarVeiculo trata POST /veiculos
func (h *Handler) CriarVeiculo(w http.ResponseWriter, r *http.Request) {
	var v Veiculo
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if v.Marca == "" || v.Modelo == "" || v.Ano == "" || v.Placa == "" {
		http.Error(w, "Preencha marca, modelo, ano e placa", http.StatusBadRequest)
		return
	}
	if h.Repository.PlacaEmUso(h.Store, v.Placa) {
		http.Error(w, "Já existe um veículo com essa placa", http.StatusConflict)
		return
	}

	if v.ID == "" {
		v.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if v.Status == "" {
		v.Status = StatusDisponivel
	}
	h.Repository.Adicionar(h.Store, v)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// ListarVeiculos trata GET /veiculos
func (h *Handler) ListarVeiculos(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Repository.ListarTodos(h.Store))
}

// BuscarPorID trata GET /veiculos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, ok := h.Repository.BuscarPorID(h.Store, id)
	if !ok {
		http.Error(w, "Veículo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// AtualizarVeiculo trata PUT /veiculos/{id}
func (h *Handler) AtualizarVeiculo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var campos Atualizacao
	if err := json.NewDecoder(r.Body).Decode(&campos); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	h.Repository.Atualizar(h.Store, id, campos)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Veículo atualizado com sucesso"))
}

// DeletarVeiculo trata DELETE /veiculos/{id}
func (h *Handler) DeletarVeiculo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.Repository.Remover(h.Store, id)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Veículo removido com sucesso"))
}
