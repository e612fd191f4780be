// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"career-workers/internal/catalog"
	"career-workers/internal/common/aws"
	"career-workers/internal/common/camunda"
	"career-workers/internal/common/config"
	"career-workers/internal/common/database"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/observability"
	"career-workers/internal/progress"

	// Analysis Workers (4)
	ae "career-workers/internal/workers/analysis/analyze-experience"
	asg "career-workers/internal/workers/analysis/analyze-skills-gap"
	ba "career-workers/internal/workers/analysis/build-assessment"
	es "career-workers/internal/workers/analysis/extract-skills"

	// Progress Worker (1)
	tp "career-workers/internal/workers/progress/track-progress"

	// Data Access Workers (2)
	qc "career-workers/internal/workers/data-access/query-catalog"
	sr "career-workers/internal/workers/data-access/search-resources"

	// Communication Worker (1)
	smn "career-workers/internal/workers/communication/send-milestone-notification"

	// Infrastructure Worker (1)
	br "career-workers/internal/workers/infrastructure/build-response"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	if err := esClient.EnsureIndex(ctx, cfg.Resources.Index); err != nil {
		zapLog.Warn("learning-resource index bootstrap failed", zap.Error(err))
	}

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redisClient.Close()
	zapLog.Info("Redis connected successfully")

	// --- Load Reference Catalog ---
	cat := catalog.Default()
	if cfg.Catalog.Source == "postgres" {
		cat, err = catalog.NewStore(pg.DB).Load(ctx)
		if err != nil {
			zapLog.Fatal("catalog load failed", zap.Error(err))
		}
		zapLog.Info("Catalog loaded from PostgreSQL")
	} else {
		zapLog.Info("Using built-in catalog")
	}

	progressStore := progress.NewRedisStore(
		redisClient.Client,
		time.Duration(cfg.Progress.TTLHours)*time.Hour,
	)

	// --- START: Register ALL 9 Workers ---
	var workers []*camunda.CamundaWorker

	// --- 1. Analysis Workers (4) ---
	if cfg.Workers[es.TaskType].Enabled {
		handler := es.NewHandler(
			&es.Config{
				Timeout: time.Duration(cfg.Workers[es.TaskType].Timeout) * time.Millisecond,
			},
			cat, log,
		)
		workers = append(workers, startWorker(zeebeClient, es.TaskType, cfg.Workers[es.TaskType], handler, log, zapLog))
	}

	if cfg.Workers[ae.TaskType].Enabled {
		handler := ae.NewHandler(
			&ae.Config{
				Timeout: time.Duration(cfg.Workers[ae.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		workers = append(workers, startWorker(zeebeClient, ae.TaskType, cfg.Workers[ae.TaskType], handler, log, zapLog))
	}

	if cfg.Workers[ba.TaskType].Enabled {
		handler := ba.NewHandler(
			&ba.Config{
				Timeout: time.Duration(cfg.Workers[ba.TaskType].Timeout) * time.Millisecond,
			},
			cat, log,
		)
		workers = append(workers, startWorker(zeebeClient, ba.TaskType, cfg.Workers[ba.TaskType], handler, log, zapLog))
	}

	if cfg.Workers[asg.TaskType].Enabled {
		handler := asg.NewHandler(
			&asg.Config{
				Timeout: time.Duration(cfg.Workers[asg.TaskType].Timeout) * time.Millisecond,
			},
			cat, log,
		)
		workers = append(workers, startWorker(zeebeClient, asg.TaskType, cfg.Workers[asg.TaskType], handler, log, zapLog))
	}

	// --- 2. Progress Worker (1) ---
	if cfg.Workers[tp.TaskType].Enabled {
		handler := tp.NewHandler(
			&tp.Config{
				Timeout: time.Duration(cfg.Workers[tp.TaskType].Timeout) * time.Millisecond,
			},
			progressStore, log,
		)
		workers = append(workers, startWorker(zeebeClient, tp.TaskType, cfg.Workers[tp.TaskType], handler, log, zapLog))
	}

	// --- 3. Data Access Workers (2) ---
	if cfg.Workers[qc.TaskType].Enabled {
		handler := qc.NewHandler(
			&qc.Config{
				Timeout:  time.Duration(cfg.Workers[qc.TaskType].Timeout) * time.Millisecond,
				CacheTTL: 10 * time.Minute,
			},
			pg.DB, redisClient.Client, log,
		)
		workers = append(workers, startWorker(zeebeClient, qc.TaskType, cfg.Workers[qc.TaskType], handler, log, zapLog))
	}

	if cfg.Workers[sr.TaskType].Enabled {
		handler := sr.NewHandler(
			&sr.Config{
				Index:      cfg.Resources.Index,
				MaxResults: cfg.Resources.MaxResults,
				Timeout:    time.Duration(cfg.Workers[sr.TaskType].Timeout) * time.Millisecond,
			},
			esClient.Client, log,
		)
		workers = append(workers, startWorker(zeebeClient, sr.TaskType, cfg.Workers[sr.TaskType], handler, log, zapLog))
	}

	// --- 4. Communication Worker (1) ---
	if cfg.Workers[smn.TaskType].Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("failed to create SES client", zap.Error(err))
		}
		snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("failed to create SNS client", zap.Error(err))
		}

		handler := smn.NewHandler(
			&smn.Config{
				EmailEnabled: cfg.Notifications.Email.Enabled,
				SMSEnabled:   cfg.Notifications.SMS.Enabled,
				FromEmail:    cfg.Notifications.Email.FromEmail,
				Timeout:      time.Duration(cfg.Workers[smn.TaskType].Timeout) * time.Millisecond,
			},
			pg.DB, sesClient, snsClient, log,
		)
		workers = append(workers, startWorker(zeebeClient, smn.TaskType, cfg.Workers[smn.TaskType], handler, log, zapLog))
	}

	// --- 5. Infrastructure Worker (1) ---
	if cfg.Workers[br.TaskType].Enabled {
		handler := br.NewHandler(
			&br.Config{
				CacheTTL:   5 * time.Minute,
				AppVersion: cfg.App.Version,
				Timeout:    time.Duration(cfg.Workers[br.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		workers = append(workers, startWorker(zeebeClient, br.TaskType, cfg.Workers[br.TaskType], handler, log, zapLog))
	}
	zapLog.Info("All 9 workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := zeebeClient.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
					"time":   time.Now().Format(time.RFC3339),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	for _, w := range workers {
		w.Stop()
	}

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client *camunda.Client, taskType string, wcfg config.WorkerConfig, handler camunda.JobHandler, log logger.Logger, zapLog *zap.Logger) *camunda.CamundaWorker {
	w, err := camunda.NewWorker(
		client,
		taskType,
		handler,
		wcfg.MaxJobsActive,
		time.Duration(wcfg.Timeout)*time.Millisecond,
		log,
	)
	if err != nil {
		zapLog.Fatal("failed to start worker", zap.String("taskType", taskType), zap.Error(err))
	}
	return w
}
