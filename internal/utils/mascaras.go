package utils

// AplicarMascaraTelefone formata como (DD)NNNNNNNNN, limitado a 11 dígitos.
func AplicarMascaraTelefone(valor string) string {
	numeros := RemoverNaoNumericos(valor)
	if len(numeros) > 11 {
		numeros = numeros[:11]
	}
	if len(numeros) <= 2 {
		return numeros
	}
	return "(" + numeros[:2] + ")" + numeros[2:]
}

// AplicarMascaraCPF formata como NNN.NNN.NNN-NN conforme o tamanho.
func AplicarMascaraCPF(valor string) string {
	numeros := RemoverNaoNumericos(valor)
	if len(numeros) > 11 {
		numeros = numeros[:11]
	}
	switch {
	case len(numeros) <= 3:
		return numeros
	case len(numeros) <= 6:
		return numeros[:3] + "." + numeros[3:]
	case len(numeros) <= 9:
		return numeros[:3] + "." + numeros[3:6] + "." + numeros[6:]
	default:
		return numeros[:3] + "." + numeros[3:6] + "." + numeros[6:9] + "-" + numeros[9:]
	}
}
