package cliente

import (
	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/AgendaCar/api-concessionaria/internal/utils"
)

// Repository opera a coleção de clientes. Atualizar/Remover com id
// inexistente é no-op silencioso; validação fica no handler.
type Repository interface {
	ListarTodos(s armazenamento.Store) []Cliente
	BuscarPorID(s armazenamento.Store, id string) (Cliente, bool)
	Adicionar(s armazenamento.Store, c Cliente)
	Atualizar(s armazenamento.Store, id string, campos Atualizacao)
	Remover(s armazenamento.Store, id string)
	TelefoneEmUso(s armazenamento.Store, telefone string) bool
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(s armazenamento.Store) []Cliente {
	return armazenamento.Carregar(s, ChaveArmazenamento, []Cliente{})
}

func (r *repositoryImpl) BuscarPorID(s armazenamento.Store, id string) (Cliente, bool) {
	for _, c := range r.ListarTodos(s) {
		if c.ID == id {
			return c, true
		}
	}
	return Cliente{}, false
}

func (r *repositoryImpl) Adicionar(s armazenamento.Store, c Cliente) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(clientes []Cliente) []Cliente {
		return append(clientes, c)
	})
}

func (r *repositoryImpl) Atualizar(s armazenamento.Store, id string, campos Atualizacao) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(clientes []Cliente) []Cliente {
		for i := range clientes {
			if clientes[i].ID == id {
				clientes[i].aplicar(campos)
				break
			}
		}
		return clientes
	})
}

func (r *repositoryImpl) Remover(s armazenamento.Store, id string) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(clientes []Cliente) []Cliente {
		restantes := make([]Cliente, 0, len(clientes))
		for _, c := range clientes {
			if c.ID != id {
				restantes = append(restantes, c)
			}
		}
		return restantes
	})
}

// TelefoneEmUso compara apenas os dígitos, ignorando máscara.
func (r *repositoryImpl) TelefoneEmUso(s armazenamento.Store, telefone string) bool {
	alvo := utils.RemoverNaoNumericos(telefone)
	for _, c := range r.ListarTodos(s) {
		if utils.RemoverNaoNumericos(c.Telefone) == alvo {
			return true
		}
	}
	return false
}
