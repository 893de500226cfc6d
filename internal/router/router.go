package router

import (
	"database/sql"
	"net/http"

	_ "github.com/TFG-DataVet/dvt-back-sub001/docs"
	mem "github.com/TFG-DataVet/dvt-back-sub001/internal/adapters/storage/memory"
	pg "github.com/TFG-DataVet/dvt-back-sub001/internal/adapters/storage/postgres"
	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/pets"
	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/records"
	"github.com/TFG-DataVet/dvt-back-sub001/internal/middleware"
	"github.com/TFG-DataVet/dvt-back-sub001/internal/platform/logger"
	"github.com/TFG-DataVet/dvt-back-sub001/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// nil => logger.Nop()
	Logger logger.Logger

	// nil => sin métricas ni /metrics
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var (
		recordMetrics *metrics.Records
		httpMetrics   *metrics.HTTP
	)
	if opts.Registry != nil {
		recordMetrics = metrics.NewRecords(opts.Registry)
		httpMetrics = metrics.NewHTTP(opts.Registry)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log, httpMetrics))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		petRepo    pets.Repository
		recordRepo records.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		recordRepo = pg.NewRecordsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		recordRepo = mem.NewRecordRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	recordsSvc := records.NewService(recordRepo, log, recordMetrics)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	records.RegisterRoutes(r, recordsSvc, petsSvc)

	return r
}
