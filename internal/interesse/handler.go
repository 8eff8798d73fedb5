package interesse

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/AgendaCar/api-concessionaria/internal/cliente"
	"github.com/AgendaCar/api-concessionaria/internal/estoque"
	"github.com/AgendaCar/api-concessionaria/internal/notificacao"
	"github.com/AgendaCar/api-concessionaria/internal/utils"
	"github.com/AgendaCar/api-concessionaria/internal/veiculo"
	"github.com/gorilla/mux"
)

// Handler encapsula o store e os repositories que o fluxo de interesse
// consulta (cliente para desnormalizar, veículo para checar estoque).
type Handler struct {
	Store      armazenamento.Store
	Repository Repository
	Clientes   cliente.Repository
	Veiculos   veiculo.Repository

	// WebhookURL vazio desativa o aviso de veículo disponível
	WebhookURL string
}

func NewHandler(s armazenamento.Store, webhookURL string) *Handler {
	return &Handler{
		Store:      s,
		Repository: NewRepository(),
		Clientes:   cliente.NewRepository(),
		Veiculos:   veiculo.NewRepository(),
		WebhookURL: webhookURL,
	}
}

// CriarInteresse trata POST /interesses. Se o veículo desejado já está
// em estoque o cliente é avisado na hora via webhook; o interesse é
// gravado de qualquer forma, como pendente.
func (h *Handler) CriarInteresse(w http.ResponseWriter, r *http.Request) {
	var i Interesse
	if err := json.NewDecoder(r.Body).Decode(&i); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if i.ClienteID == "" || i.Marca == "" || i.Modelo == "" || i.Ano == "" {
		http.Error(w, "Preencha cliente, marca, modelo e ano", http.StatusBadRequest)
		return
	}

	c, ok := h.Clientes.BuscarPorID(h.Store, i.ClienteID)
	if !ok {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}
	i.ClienteNome = c.Nome
	i.ClienteTelefone = c.Telefone

	if i.ID == "" {
		i.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if i.DataCadastro == "" {
		i.DataCadastro = time.Now().Format(utils.FormatoISO)
	} else {
		i.DataCadastro = utils.NormalizarData(i.DataCadastro)
	}
	i.Status = StatusPendente
	h.Repository.Adicionar(h.Store, i)

	veiculos := h.Veiculos.ListarTodos(h.Store)
	emEstoque := estoque.Disponivel(veiculos, i.Marca, i.Modelo, i.Ano)
	if emEstoque {
		notificacao.EnviarAvisoVeiculoDisponivel(h.WebhookURL, notificacao.AvisoVeiculoDisponivel{
			ClienteNome:     i.ClienteNome,
			ClienteTelefone: i.ClienteTelefone,
			Veiculo:         i.Marca + " " + i.Modelo + " " + i.Ano,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toDTO(i, emEstoque))
}

// ListarInteresses trata GET /interesses, cada item com o estoque calculado.
func (h *Handler) ListarInteresses(w http.ResponseWriter, r *http.Request) {
	veiculos := h.Veiculos.ListarTodos(h.Store)
	interesses := h.Repository.ListarTodos(h.Store)

	dtos := make([]InteresseDTO, 0, len(interesses))
	for _, i := range interesses {
		dtos = append(dtos, toDTO(i, estoque.Disponivel(veiculos, i.Marca, i.Modelo, i.Ano)))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dtos)
}

// BuscarPorID trata GET /interesses/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	i, ok := h.Repository.BuscarPorID(h.Store, id)
	if !ok {
		http.Error(w, "Interesse não encontrado", http.StatusNotFound)
		return
	}
	veiculos := h.Veiculos.ListarTodos(h.Store)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toDTO(i, estoque.Disponivel(veiculos, i.Marca, i.Modelo, i.Ano)))
}

// AtualizarInteresse trata PUT /interesses/{id}
func (h *Handler) AtualizarInteresse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var campos Atualizacao
	if err := json.NewDecoder(r.Body).Decode(&campos); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	h.Repository.Atualizar(h.Store, id, campos)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Interesse atualizado com sucesso"))
}

// NotificarCliente trata POST /interesses/{id}/notificar: reconfere o
// estoque e, se o veículo está disponível, dispara o aviso e marca o
// interesse como atendido.
func (h *Handler) NotificarCliente(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	i, ok := h.Repository.BuscarPorID(h.Store, id)
	if !ok {
		http.Error(w, "Interesse não encontrado", http.StatusNotFound)
		return
	}

	veiculos := h.Veiculos.ListarTodos(h.Store)
	if !estoque.Disponivel(veiculos, i.Marca, i.Modelo, i.Ano) {
		http.Error(w, "Veículo ainda não está disponível em estoque", http.StatusConflict)
		return
	}

	notificacao.EnviarAvisoVeiculoDisponivel(h.WebhookURL, notificacao.AvisoVeiculoDisponivel{
		ClienteNome:     i.ClienteNome,
		ClienteTelefone: i.ClienteTelefone,
		Veiculo:         i.Marca + " " + i.Modelo + " " + i.Ano,
	})
	atendido := StatusAtendido
	h.Repository.Atualizar(h.Store, id, Atualizacao{Status: &atendido})

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Cliente notificado com sucesso"))
}

// ListarSimilares trata GET /interesses/{id}/similares: sugestões do
// estoque quando o veículo exato não existe.
func (h *Handler) ListarSimilares(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	i, ok := h.Repository.BuscarPorID(h.Store, id)
	if !ok {
		http.Error(w, "Interesse não encontrado", http.StatusNotFound)
		return
	}

	limite := estoque.LimiteSimilares
	if raw := r.URL.Query().Get("limite"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limite = n
		}
	}

	veiculos := h.Veiculos.ListarTodos(h.Store)
	similares := estoque.RankearSimilares(veiculos, i.Marca, i.Modelo, i.Ano, limite)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(similares)
}
