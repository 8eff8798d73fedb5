package interesse

// InteresseDTO é o interesse decorado com o campo calculado de estoque.
type InteresseDTO struct {
	Interesse
	EmEstoque bool `json:"emEstoque"`
}

func toDTO(i Interesse, emEstoque bool) InteresseDTO {
	return InteresseDTO{Interesse: i, EmEstoque: emEstoque}
}
