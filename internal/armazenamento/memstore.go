package armazenamento

import "sync"

// MemStore é a implementação em memória do Store, usada nos testes no
// lugar de uma base real.
type MemStore struct {
	mu    sync.RWMutex
	dados map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{dados: make(map[string]string)}
}

func (s *MemStore) Obter(chave string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	valor, ok := s.dados[chave]
	return valor, ok
}

func (s *MemStore) Definir(chave, valor string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dados[chave] = valor
}
