package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shrawanc911/HealthSyncInnovators/cmd"
	"github.com/shrawanc911/HealthSyncInnovators/internal/api"
	"github.com/shrawanc911/HealthSyncInnovators/internal/database"
	"github.com/shrawanc911/HealthSyncInnovators/internal/intake"
	"github.com/shrawanc911/HealthSyncInnovators/internal/llm"
)

type Config struct {
	APIPort     string `env:"API_PORT" envDefault:"5000"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"./healthsync/db/healthsync.db"`

	LLMProvider   string        `env:"LLM_PROVIDER" envDefault:"ollama"`
	OllamaURL     string        `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL" envDefault:""`
	Model         string        `env:"LLM_MODEL" envDefault:"gemma3n:e2b"`
	Temperature   float64       `env:"LLM_TEMPERATURE" envDefault:"0.2"`
	LLMTimeout    time.Duration `env:"LLM_TIMEOUT" envDefault:"5m"`

	ProbeRetries  uint64        `env:"LLM_PROBE_RETRIES" envDefault:"5"`
	ProbeInterval time.Duration `env:"LLM_PROBE_INTERVAL" envDefault:"2s"`

	MaxSessions int `env:"MAX_SESSIONS" envDefault:"64"`
}

func createLLMClient(cfg Config) (llm.Client, *llm.Supervisor) {
	switch cfg.LLMProvider {
	case "openai":
		return llm.NewOpenAI(cfg.OpenAIBaseURL, cfg.Model, cfg.Temperature, cfg.LLMTimeout), nil
	default:
		ollama := llm.NewOllama(cfg.OllamaURL, cfg.Model, cfg.LLMTimeout)
		return ollama, llm.NewSupervisor(ollama, cfg.ProbeRetries, cfg.ProbeInterval)
	}
}

func main() {
	log.Println("Starting HealthSync server...")

	cmd.LoadEnvFile()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	llmClient, supervisor := createLLMClient(cfg)
	if supervisor != nil {
		// Bounded probe: on give-up the server still starts and reports a
		// degraded health status rather than retrying forever.
		if err := supervisor.Probe(context.Background()); err != nil {
			log.Printf("inference service unavailable after retries: %v", err)
		}
	}

	manager := intake.NewManager(llmClient, database.NewStore(db), cfg.MaxSessions)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// The AI endpoints wait on local inference, so the request timeout has
	// to sit above the LLM timeout.
	r.Use(middleware.Timeout(cfg.LLMTimeout + 30*time.Second))

	aiHandler := api.NewAIService(llmClient)
	patientHandler := api.NewPatientService(db)
	intakeHandler := api.NewIntakeService(manager)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", api.HealthHandler(db, supervisor))
		aiHandler.AddRoutes(r)
		patientHandler.AddRoutes(r)
		intakeHandler.AddRoutes(r)
	})

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: r,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("API server listening on port %s", cfg.APIPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
	}

	log.Println("Server stopped.")
}
