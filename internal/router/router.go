package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pawfect-match/docs"
	"pawfect-match/internal/adapters/storage"
	"pawfect-match/internal/domain/adopters"
	"pawfect-match/internal/domain/adoptions"
	"pawfect-match/internal/domain/availability"
	"pawfect-match/internal/domain/pets"
	"pawfect-match/internal/domain/users"
	"pawfect-match/internal/middleware"
	"pawfect-match/internal/platform/logger"
	"pawfect-match/internal/platform/metrics"
)

type Options struct {
	// Opcional: si no viene, usa el store in-memory.
	Backend *storage.Backend

	Logger logger.Logger

	// Opcional: si no viene, se crea uno nuevo (no el global, para poder
	// levantar varios routers en tests).
	Registry *prometheus.Registry

	// AuthRequired exige Basic auth en las rutas de gestión.
	AuthRequired   bool
	MetricsEnabled bool
	SwaggerEnabled bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	m := metrics.New(reg)

	backend := opts.Backend
	if backend == nil {
		backend = storage.NewMemory()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, m))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.MetricsEnabled {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}
	if opts.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	// Services por módulo
	usersSvc := users.NewService(backend.Users, users.WithLogger(log), users.WithMetrics(m))
	petsSvc := pets.NewService(backend.Pets, pets.WithLogger(log), pets.WithMetrics(m))
	adoptersSvc := adopters.NewService(backend.Adopters, adopters.WithLogger(log), adopters.WithMetrics(m))
	adoptionsSvc := adoptions.NewService(backend.Adoptions, petsSvc, adoptersSvc,
		adoptions.WithLogger(log),
		adoptions.WithMetrics(m),
	)
	availSvc := availability.NewService(backend.Pets, backend.Adopters, backend.Adoptions)

	// Registro y login quedan siempre abiertos.
	users.RegisterRoutes(r, usersSvc, log)

	r.Group(func(gr chi.Router) {
		gr.Use(middleware.AuthContext(usersSvc, opts.AuthRequired, log))

		pets.RegisterRoutes(gr, petsSvc, availSvc, log)
		adopters.RegisterRoutes(gr, adoptersSvc, availSvc, log)
		adoptions.RegisterRoutes(gr, adoptionsSvc, availSvc, log)
	})

	return r
}
