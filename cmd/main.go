package main

import (
	"net/http"
	"os"

	"github.com/AgendaCar/api-concessionaria/internal/acoes"
	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/AgendaCar/api-concessionaria/internal/auth"
	"github.com/AgendaCar/api-concessionaria/internal/cliente"
	"github.com/AgendaCar/api-concessionaria/internal/config"
	"github.com/AgendaCar/api-concessionaria/internal/estatisticas"
	"github.com/AgendaCar/api-concessionaria/internal/historico"
	"github.com/AgendaCar/api-concessionaria/internal/interesse"
	"github.com/AgendaCar/api-concessionaria/internal/lembrete"
	"github.com/AgendaCar/api-concessionaria/internal/logger"
	"github.com/AgendaCar/api-concessionaria/internal/proposta"
	"github.com/AgendaCar/api-concessionaria/internal/utils/db"
	"github.com/AgendaCar/api-concessionaria/internal/veiculo"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	if err := logger.Init(os.Getenv("ENV") == "development"); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.L()

	cfg := config.Load()
	auth.Configurar(cfg.JWTSecret)

	conexao, err := db.Conectar(cfg)
	if err != nil {
		log.Fatal("erro ao conectar no banco", zap.Error(err))
	}
	store, err := armazenamento.NewGormStore(conexao)
	if err != nil {
		log.Fatal("erro ao migrar o armazenamento", zap.Error(err))
	}

	// Handlers
	authHandler := auth.NewHandler(cfg)
	veiculoHandler := veiculo.NewHandler(store)
	clienteHandler := cliente.NewHandler(store)
	interesseHandler := interesse.NewHandler(store, cfg.WebhookURL)
	lembreteHandler := lembrete.NewHandler(store)
	propostaHandler := proposta.NewHandler(store)
	historicoHandler := historico.NewHandler(store)
	acoesHandler := acoes.NewHandler(store)
	estatisticasHandler := estatisticas.NewHandler(store)

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de veículos
	api.HandleFunc("/veiculos", veiculoHandler.CriarVeiculo).Methods("POST")
	api.HandleFunc("/veiculos", veiculoHandler.ListarVeiculos).Methods("GET")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.AtualizarVeiculo).Methods("PUT")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.DeletarVeiculo).Methods("DELETE")

	// Rotas de clientes
	api.HandleFunc("/clientes", clienteHandler.CriarCliente).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.ListarClientes).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.AtualizarCliente).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.DeletarCliente).Methods("DELETE")
	api.HandleFunc("/clientes/{id}/historico", historicoHandler.HistoricoDoCliente).Methods("GET")

	// Rotas de interesses
	api.HandleFunc("/interesses", interesseHandler.CriarInteresse).Methods("POST")
	api.HandleFunc("/interesses", interesseHandler.ListarInteresses).Methods("GET")
	api.HandleFunc("/interesses/{id}", interesseHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/interesses/{id}", interesseHandler.AtualizarInteresse).Methods("PUT")
	api.HandleFunc("/interesses/{id}/notificar", interesseHandler.NotificarCliente).Methods("POST")
	api.HandleFunc("/interesses/{id}/similares", interesseHandler.ListarSimilares).Methods("GET")

	// Rotas de lembretes
	api.HandleFunc("/lembretes", lembreteHandler.CriarLembrete).Methods("POST")
	api.HandleFunc("/lembretes", lembreteHandler.ListarLembretes).Methods("GET")
	api.HandleFunc("/lembretes/{id}", lembreteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/lembretes/{id}", lembreteHandler.AtualizarLembrete).Methods("PUT")
	api.HandleFunc("/lembretes/{id}", lembreteHandler.DeletarLembrete).Methods("DELETE")
	api.HandleFunc("/lembretes/{id}/concluir", lembreteHandler.ConcluirLembrete).Methods("PATCH")

	// Rotas de propostas
	api.HandleFunc("/propostas", propostaHandler.CriarProposta).Methods("POST")
	api.HandleFunc("/propostas", propostaHandler.ListarPropostas).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/propostas/{id}/status", propostaHandler.AtualizarStatus).Methods("PATCH")

	// Painel e estatísticas
	api.HandleFunc("/painel/acoes", acoesHandler.ListarAcoes).Methods("GET")
	api.HandleFunc("/estatisticas", estatisticasHandler.Resumo).Methods("GET")

	// O console roda no navegador, então liberamos CORS para o front
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	log.Info("Servidor rodando", zap.String("porta", cfg.Porta))
	if err := http.ListenAndServe(":"+cfg.Porta, handler); err != nil {
		log.Fatal("erro no servidor", zap.Error(err))
	}
}
