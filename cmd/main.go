package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"
	"github.com/rs/cors"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"reacjilator/clients"
	anthropicclient "reacjilator/clients/anthropic"
	googleclient "reacjilator/clients/google"
	slackclient "reacjilator/clients/slack"
	"reacjilator/config"
	"reacjilator/handlers"
	"reacjilator/languages"
	"reacjilator/metrics"
	"reacjilator/middleware"
	"reacjilator/usecases/relay"
)

type Options struct {
	SocketMode bool   `long:"socket-mode" description:"Receive events over a Socket Mode connection instead of the /slack/events webhook"`
	EnvFile    string `long:"env-file" default:".env" description:"Path to the env file loaded before reading the environment"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	cfg, err := config.LoadConfig(opts.EnvFile, opts.SocketMode)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize error alert middleware
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.SlackConfig.AlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "reacjilator",
		LogsURL:     cfg.ServerLogsURL,
	})

	directory, err := languages.LoadFile(cfg.RelayConfig.LanguagesFile)
	if err != nil {
		return err
	}

	translator, closeTranslator, err := newTranslator(ctx, cfg.TranslationConfig)
	if err != nil {
		return err
	}
	defer closeTranslator()

	var slackOptions []slack.Option
	if cfg.SocketMode {
		slackOptions = append(slackOptions, slack.OptionAppLevelToken(cfg.SlackConfig.AppToken))
	}
	slackClient := slackclient.NewSlackClient(cfg.SlackConfig.BotToken, slackOptions...)

	relayUseCase := relay.NewRelayUseCase(slackClient, translator, directory, relay.Config{
		CallTimeout:      cfg.RelayConfig.CallTimeout,
		ThreadFetchLimit: cfg.RelayConfig.ThreadFetchLimit,
		BotUsername:      cfg.SlackConfig.BotUsername,
	})
	dispatcher := handlers.NewEventDispatcher(relayUseCase, alertMiddleware, cfg.RelayConfig.WorkerPoolSize)
	defer dispatcher.Stop()

	// Create a new router
	router := mux.NewRouter()

	if !cfg.SocketMode {
		slackHandler := handlers.NewSlackEventsHandler(
			cfg.SlackConfig.SigningSecret,
			cfg.SlackConfig.VerificationToken,
			dispatcher,
		)
		slackHandler.SetupEndpoints(router)
	}
	handlers.NewLanguagesHandler(directory).SetupEndpoints(router)
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(c.Handler(router)),
		ReadHeaderTimeout: 30 * time.Second,
	}

	if cfg.SocketMode {
		socketHandler := handlers.NewSocketModeHandler(socketmode.New(slackClient.Client), dispatcher)
		go func() {
			if err := socketHandler.Run(ctx); err != nil {
				log.Printf("❌ Socket Mode error: %v", err)
				stop()
			}
		}()
	}

	return handleGracefulShutdown(ctx, server)
}

// newTranslator builds the configured translation provider and its cleanup func
func newTranslator(ctx context.Context, cfg config.TranslationConfig) (clients.Translator, func(), error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		translator, err := anthropicclient.NewAnthropicTranslator(cfg.AnthropicAPIKey, cfg.AnthropicModel)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("✅ Using Anthropic translator")
		return translator, func() {}, nil
	case config.ProviderGoogle:
		translator, err := googleclient.NewGoogleTranslator(ctx, cfg.GoogleKey, cfg.GoogleProjectID)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("✅ Using Google Cloud Translation")
		return translator, func() {
			if err := translator.Close(); err != nil {
				log.Printf("❌ Failed to close translation client: %v", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown translation provider: %s", cfg.Provider)
	}
}

func handleGracefulShutdown(ctx context.Context, server *http.Server) error {
	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
