package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mindtest-app/mindtest/internal/api"
	"github.com/mindtest-app/mindtest/internal/cache"
	"github.com/mindtest-app/mindtest/internal/db"
	"github.com/mindtest-app/mindtest/internal/logging"
	"github.com/mindtest-app/mindtest/internal/metrics"
	"github.com/mindtest-app/mindtest/internal/middleware"
	"github.com/mindtest-app/mindtest/internal/narrative"
	"github.com/mindtest-app/mindtest/internal/quizdata"
	"github.com/mindtest-app/mindtest/internal/services"
	"github.com/mindtest-app/mindtest/internal/utils"
)

func main() {
	_ = godotenv.Load()
	log := logging.New("mindtest")

	dbPath := utils.SafeEnv("MINDTEST_DB", "mindtest.db")
	sqlDB, err := db.Open(dbPath)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(sqlDB, utils.SafeEnv("MINDTEST_MIGRATIONS", "")); err != nil {
		log.WithError(err).Fatal("run migrations")
	}

	store, err := db.NewSQLiteStore(sqlDB)
	if err != nil {
		log.WithError(err).Fatal("init store")
	}
	for _, category := range services.Categories {
		if err := store.SeedQuestions(category, quizdata.Questions(category)); err != nil {
			log.WithError(err).WithField("category", category).Fatal("seed questions")
		}
	}

	var storage cache.Storage
	if addr := utils.SafeEnv("MINDTEST_REDIS_ADDR", ""); addr != "" {
		redisStorage := cache.NewRedisStorage(addr, utils.SafeEnv("MINDTEST_REDIS_PASSWORD", ""), "mindtest")
		if err := redisStorage.Ping(context.Background()); err != nil {
			log.WithError(err).Fatal("redis ping")
		}
		storage = redisStorage
		log.WithField("addr", addr).Info("using redis cache")
	} else {
		storage = cache.NewMemoryStorage()
		log.Info("using in-memory cache")
	}

	var narrativeClient services.NarrativeClient
	if endpoint := utils.SafeEnv("MINDTEST_NARRATIVE_URL", ""); endpoint != "" {
		narrativeClient = narrative.NewClient(endpoint, utils.SafeEnv("MINDTEST_NARRATIVE_KEY", ""))
		log.WithField("endpoint", endpoint).Info("narrative service enabled")
	} else {
		log.Info("narrative service disabled, full reports use the template path")
	}

	bands := services.DefaultTierBands()
	questionSvc := services.NewQuestionService(store)
	profileSvc := services.NewProfileService(store)
	sessionSvc := services.NewSessionService(store, storage, bands, log)
	paymentSvc := services.NewPaymentService(store, narrativeClient, storage, bands, log)
	paymentSvc.OnNarrativeFallback(metrics.NarrativeFallbacks.Inc)
	if raw := utils.SafeEnv("MINDTEST_NARRATIVE_TIMEOUT_SECONDS", ""); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil {
			paymentSvc.SetNarrativeTimeout(time.Duration(secs) * time.Second)
		}
	}
	analyticsSvc := services.NewAnalyticsService(store, bands)

	mux := http.NewServeMux()
	router := api.NewRouter(questionSvc, profileSvc, sessionSvc, paymentSvc, analyticsSvc, store, bands, log)
	router.Register(mux)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	handler := middleware.NoStore(middleware.CORS(middleware.RequestLog(log)(mux)))

	addr := utils.SafeEnv("MINDTEST_ADDR", ":8080")
	log.WithField("addr", addr).Info("server listening")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
