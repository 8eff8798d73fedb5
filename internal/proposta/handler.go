package proposta

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

// Handler encapsula o store e os repositories do fluxo de propostas.
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

type atualizarStatusRequest struct {
	Status string `json:"status"`
}

// CriarProposta trata POST /propostas. O número vem do contador
// sequencial durável e o valor final é recalculado no servidor, nunca
// aceito do cliente.
func (h *Handler) CriarProposta(w http.ResponseWriter, r *http.Request) {
	var p Proposta
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if p.ClienteID == "" || p.VeiculoID == "" || p.ValorVeiculo == "" {
		http.Error(w, "Preencha cliente, veículo e valor", http.StatusBadRequest)
		return
	}

	c, ok := h.Clientes.BuscarPorID(h.Store, p.ClienteID)
	if !ok {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}
	p.ClienteNome = c.Nome
	p.ClienteTelefone = c.Telefone

	if v, ok := h.Veiculos.BuscarPorID(h.Store, p.VeiculoID); ok {
		p.VeiculoDescricao = v.Descricao()
	}

	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	p.Numero = FormatarNumero(h.Repository.ProximaSequencia(h.Store))
	p.ValorFinal = CalcularValorFinal(p.ValorVeiculo, p.Desconto)
	p.Parcelas = ResumoParcelas(p.FormaPagamento, p.NumeroParcelas, p.ValorParcela)
	p.Status = StatusPendente
	if p.Validade != "" {
		p.Validade = utils.NormalizarData(p.Validade)
	}
	if p.DataCriacao == "" {
		p.DataCriacao = time.Now().Format(utils.FormatoISO)
	} else {
		p.DataCriacao = utils.NormalizarData(p.DataCriacao)
	}
	h.Repository.Adicionar(h.Store, p)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// ListarPropostas trata GET /propostas
func (h *Handler) ListarPropostas(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Repository.ListarTodos(h.Store))
}

// BuscarPorID trata GET /propostas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, ok := h.Repository.BuscarPorID(h.Store, id)
	if !ok {
		http.Error(w, "Proposta não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// AtualizarStatus trata PATCH /propostas/{id}/status. Aceitar a
// proposta marca o veículo como vendido.
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Status != StatusPendente && req.Status != StatusAceita && req.Status != StatusRecusada {
		http.Error(w, "Status inválido", http.StatusBadRequest)
		return
	}

	p, ok := h.Repository.BuscarPorID(h.Store, id)
	if !ok {
		http.Error(w, "Proposta não encontrada", http.StatusNotFound)
		return
	}
	h.Repository.AtualizarStatus(h.Store, id, req.Status)

	if req.Status == StatusAceita {
		vendido := veiculo.StatusVendido
		h.Veiculos.Atualizar(h.Store, p.VeiculoID, veiculo.Atualizacao{Status: &vendido})
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Status da proposta atualizado"))
}
