// newsaggregator ingests, classifies, and prioritizes news items for the
// Liga der Freien Wohlfahrtspflege Hessen's working groups: it runs the
// ingestion scheduler, classifier worker, and LLM worker on whichever
// process holds leadership, while every process serves a minimal HTTP
// health endpoint.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/liga-hessen/news-aggregator/pkg/classifier"
	"github.com/liga-hessen/news-aggregator/pkg/classifierworker"
	"github.com/liga-hessen/news-aggregator/pkg/config"
	"github.com/liga-hessen/news-aggregator/pkg/connector"
	"github.com/liga-hessen/news-aggregator/pkg/database"
	"github.com/liga-hessen/news-aggregator/pkg/gpupower"
	"github.com/liga-hessen/news-aggregator/pkg/leader"
	"github.com/liga-hessen/news-aggregator/pkg/llmprovider"
	"github.com/liga-hessen/news-aggregator/pkg/llmworker"
	"github.com/liga-hessen/news-aggregator/pkg/pipeline"
	"github.com/liga-hessen/news-aggregator/pkg/retention"
	"github.com/liga-hessen/news-aggregator/pkg/scheduler"
	"github.com/liga-hessen/news-aggregator/pkg/store"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: could not load %s: %v", envPath, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	ginMode := getEnv("GIN_MODE", "release")
	gin.SetMode(ginMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("loading database config: %v", err)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Printf("closing database client: %v", err)
		}
	}()
	slog.Info("connected to postgresql database")

	items := store.NewItems(dbClient.Client)
	channels := store.NewChannels(dbClient.Client)
	events := store.NewEvents(dbClient.Client)
	logs := store.NewProcessingLogs(dbClient.Client)
	control := store.NewWorkerControl(dbClient.Client)
	settings := store.NewSettings(dbClient.Client)
	ruleRepo := store.NewRules(dbClient.Client)
	retentionRepo := store.NewRetention(dbClient.Client)

	classifierCfg, err := config.LoadClassifierConfigFromEnv()
	if err != nil {
		log.Fatalf("loading classifier config: %v", err)
	}
	cls := classifier.NewClient(classifierCfg.BaseURL, classifierCfg.RequestTimeout)

	llmCfg, err := config.LoadLLMConfigFromEnv()
	if err != nil {
		log.Fatalf("loading llm config: %v", err)
	}
	llmTimeout, err := time.ParseDuration(llmCfg.RequestTimeout)
	if err != nil {
		llmTimeout = 90 * time.Second
	}
	var providers []llmprovider.Provider
	for _, p := range llmCfg.Providers {
		switch p.Name {
		case "ollama":
			providers = append(providers, llmprovider.NewOllamaProvider(p.BaseURL, p.Model, llmTimeout))
		default:
			providers = append(providers, llmprovider.NewOpenRouterProvider(p.APIKey, p.Model, llmTimeout))
		}
	}
	if len(providers) == 0 {
		slog.Warn("no LLM providers configured, falling back to local ollama default")
		providers = append(providers, llmprovider.NewOllamaProvider("http://localhost:11434", "qwen3", llmTimeout))
	}
	llmSvc, err := llmprovider.NewService(providers, slog.Default())
	if err != nil {
		log.Fatalf("constructing llm service: %v", err)
	}

	gpuCfg, err := config.LoadGPUConfigFromEnv()
	if err != nil {
		log.Fatalf("loading gpu config: %v", err)
	}
	gpuManager := gpupower.NewManager(gpuCfg, providers[0])

	ruleSet, err := ruleRepo.LoadEnabled(ctx)
	if err != nil {
		log.Fatalf("loading rules: %v", err)
	}

	queueCfg, err := config.LoadQueueConfigFromEnv("LLM", config.DefaultLLMQueueConfig())
	if err != nil {
		log.Fatalf("loading llm queue config: %v", err)
	}
	llmWorker := llmworker.New(queueCfg, llmCfg, items, channels, logs, events, control, settings, gpuManager, llmSvc)

	// Semantic rules share the single LLM provider handle; a mutex keeps
	// their checks from ever running concurrently with each other.
	var semanticMu sync.Mutex
	semanticResolver := func(ctx context.Context, question, title, content string) (bool, error) {
		semanticMu.Lock()
		defer semanticMu.Unlock()
		resp, err := llmSvc.Complete(ctx, llmprovider.BuildSemanticRulePrompt(question, title, content), "", 0, 8)
		if err != nil {
			return false, err
		}
		return llmprovider.ParseYesNo(resp.Text), nil
	}

	pl := pipeline.New(items, events, logs, cls, llmWorker.Queue(), ruleSet, semanticResolver, classifierCfg.DuplicateThreshold)

	classifierQueueCfg, err := config.LoadQueueConfigFromEnv("CLASSIFIER", config.DefaultClassifierQueueConfig())
	if err != nil {
		log.Fatalf("loading classifier queue config: %v", err)
	}
	classifierWorker := classifierworker.New(classifierQueueCfg, classifierCfg, items, logs, control, cls)

	schedulerCfg, err := config.LoadSchedulerConfigFromEnv()
	if err != nil {
		log.Fatalf("loading scheduler config: %v", err)
	}
	registry := connector.NewDefaultRegistry()
	sched := scheduler.New(scheduler.Config{
		TickInterval:       schedulerCfg.TickInterval,
		MaxConcurrentFetch: schedulerCfg.MaxConcurrentFetch,
		FetchTimeout:       schedulerCfg.FetchTimeout,
	}, channels, registry, pl, logs, control)

	retentionCfg, err := config.LoadRetentionConfigFromEnv()
	if err != nil {
		log.Fatalf("loading retention config: %v", err)
	}
	housekeeper := retention.New(retentionCfg, retentionRepo)

	leaderCfg, err := config.LoadLeaderConfigFromEnv()
	if err != nil {
		log.Fatalf("loading leader config: %v", err)
	}

	var lock *leader.Lock
	isLeader := false
	if lock, err = leader.Acquire(leaderCfg.LockFilePath, leaderCfg.PodID); err != nil {
		if err == leader.ErrNotLeader {
			slog.Info("leadership held by another process; serving API only")
		} else {
			log.Fatalf("acquiring leader lock: %v", err)
		}
	} else {
		isLeader = true
		defer lock.Release()
	}

	if isLeader {
		slog.Info("leadership acquired, starting background workers", "pod_id", leaderCfg.PodID)
		sched.Start(ctx)
		classifierWorker.Start(ctx)
		llmWorker.Start(ctx)
		housekeeper.Start(ctx)
		go leader.Watch(ctx, lock, leaderCfg.PollInterval, func() {
			slog.Error("lost leadership, stopping background workers")
			sched.Stop()
			classifierWorker.Stop()
			llmWorker.Stop()
			housekeeper.Stop()
		})
		defer func() {
			sched.Stop()
			classifierWorker.Stop()
			llmWorker.Stop()
			housekeeper.Stop()
		}()
	}

	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		dbHealth, err := database.Health(reqCtx, dbClient.DB())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": dbHealth,
				"error":    err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  dbHealth,
			"is_leader": isLeader,
		})
	})

	srv := &http.Server{Addr: ":" + httpPort, Handler: router}
	go func() {
		slog.Info("http server listening", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown failed", "error", err)
	}
}
