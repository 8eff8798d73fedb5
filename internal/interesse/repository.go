package interesse

import (
	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
)

// Repository opera a coleção de interesses. Interesses não são
// excluídos: cancelamento é transição de status.
type Repository interface {
	ListarTodos(s armazenamento.Store) []Interesse
	BuscarPorID(s armazenamento.Store, id string) (Interesse, bool)
	Adicionar(s armazenamento.Store, i Interesse)
	Atualizar(s armazenamento.Store, id string, campos Atualizacao)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(s armazenamento.Store) []Interesse {
	return armazenamento.Carregar(s, ChaveArmazenamento, []Interesse{})
}

func (r *repositoryImpl) BuscarPorID(s armazenamento.Store, id string) (Interesse, bool) {
	for _, i := range r.ListarTodos(s) {
		if i.ID == id {
			return i, true
		}
	}
	return Interesse{}, false
}

func (r *repositoryImpl) Adicionar(s armazenamento.Store, i Interesse) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(interesses []Interesse) []Interesse {
		return append(interesses, i)
	})
}

func (r *repositoryImpl) Atualizar(s armazenamento.Store, id string, campos Atualizacao) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(interesses []Interesse) []Interesse {
		for i := range interesses {
			if interesses[i].ID == id {
				interesses[i].aplicar(campos)
				break
			}
		}
		return interesses
	})
}
