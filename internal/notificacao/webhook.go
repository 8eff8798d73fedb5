package notificacao

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/AgendaCar/api-concessionaria/internal/logger"
	"go.uber.org/zap"
)

// AvisoVeiculoDisponivel é o payload enviado quando o veículo que um
// cliente procura aparece (ou já está) no estoque.
type AvisoVeiculoDisponivel struct {
	ClienteNome     string `json:"clienteNome"`
	ClienteTelefone string `json:"clienteTelefone"`
	Veiculo         string `json:"veiculo"`
	Mensagem        string `json:"mensagem"`
}

// EnviarAvisoVeiculoDisponivel posta o aviso no webhook configurado.
// Melhor esforço: URL vazia desativa, falha de rede é só logada.
func EnviarAvisoVeiculoDisponivel(url string, aviso AvisoVeiculoDisponivel) {
	if url == "" {
		return
	}
	if aviso.Mensagem == "" {
		aviso.Mensagem = "Veículo disponível em estoque: " + aviso.Veiculo
	}
	body, _ := json.Marshal(aviso)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		logger.L().Warn("erro ao enviar webhook de aviso",
			zap.String("cliente", aviso.ClienteNome), zap.Error(err))
		return
	}
	defer resp.Body.Close()
}
