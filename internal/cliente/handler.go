package cliente

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/AgendaCar/api-concessionaria/internal/utils"
	"github.com/gorilla/mux"
)

// Handler encapsula o store e o repository de clientes.
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

// CriarCliente trata POST /clientes
func (h *Handler) CriarCliente(w http.ResponseWriter, r *http.Request) {
	var c Cliente
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if c.Nome == "" || c.Telefone == "" {
		http.Error(w, "Preencha nome e telefone", http.StatusBadRequest)
		return
	}
	if !utils.ValidarTelefone(c.Telefone) {
		http.Error(w, "Telefone inválido", http.StatusBadRequest)
		return
	}
	if c.CPF != "" && !utils.ValidarCPF(c.CPF) {
		http.Error(w, "CPF inválido", http.StatusBadRequest)
		return
	}
	if !utils.ValidarEmail(c.Email) {
		http.Error(w, "Email inválido", http.StatusBadRequest)
		return
	}
	if h.Repository.TelefoneEmUso(h.Store, c.Telefone) {
		http.Error(w, "Já existe um cliente com esse telefone", http.StatusConflict)
		return
	}

	if c.ID == "" {
		c.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	c.Telefone = utils.AplicarMascaraTelefone(c.Telefone)
	if c.CPF != "" {
		c.CPF = utils.AplicarMascaraCPF(c.CPF)
	}
	if c.DataCadastro == "" {
		c.DataCadastro = time.Now().Format(utils.FormatoISO)
	} else {
		c.DataCadastro = utils.NormalizarData(c.DataCadastro)
	}
	h.Repository.Adicionar(h.Store, c)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarClientes trata GET /clientes
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Repository.ListarTodos(h.Store))
}

// BuscarPorID trata GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	c, ok := h.Repository.BuscarPorID(h.Store, id)
	if !ok {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// AtualizarCliente trata PUT /clientes/{id}
func (h *Handler) AtualizarCliente(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var campos Atualizacao
	if err := json.NewDecoder(r.Body).Decode(&campos); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if campos.Telefone != nil && !utils.ValidarTelefone(*campos.Telefone) {
		http.Error(w, "Telefone inválido", http.StatusBadRequest)
		return
	}
	h.Repository.Atualizar(h.Store, id, campos)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Cliente atualizado com sucesso"))
}

// DeletarCliente trata DELETE /clientes/{id}. Não há cascata: interesses,
// lembretes e propostas do cliente permanecem, com referências penduradas
// toleradas nas leituras.
func (h *Handler) DeletarCliente(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.Repository.Remover(h.Store, id)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Cliente removido com sucesso"))
}
