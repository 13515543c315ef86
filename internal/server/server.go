package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/salespulse/salespulse/internal/analytics"
	analyticsdomain "github.com/salespulse/salespulse/internal/analytics/domain"
	"github.com/salespulse/salespulse/internal/billing"
	billingdomain "github.com/salespulse/salespulse/internal/billing/domain"
	"github.com/salespulse/salespulse/internal/cache"
	"github.com/salespulse/salespulse/internal/config"
	"github.com/salespulse/salespulse/internal/eod"
	eoddomain "github.com/salespulse/salespulse/internal/eod/domain"
	obsmetrics "github.com/salespulse/salespulse/internal/observability/metrics"
	"github.com/salespulse/salespulse/internal/person"
	persondomain "github.com/salespulse/salespulse/internal/person/domain"
	"github.com/salespulse/salespulse/internal/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	cache.Module,
	ratelimit.Module,
	person.Module,
	eod.Module,
	analytics.Module,
	billing.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *obsmetrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogMiddleware(log))
	r.Use(MetricsMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	return r
}

func registerGin(log *zap.Logger, metrics *obsmetrics.Metrics) *gin.Engine {
	return NewEngine(log, metrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node

	eodSvc       eoddomain.Service
	analyticsSvc analyticsdomain.Service
	personSvc    persondomain.Service
	billingSvc   billingdomain.Service

	obsMetrics    *obsmetrics.Metrics
	submitLimiter *ratelimit.SubmissionLimiter
}

type ServerParams struct {
	fx.In

	Gin   *gin.Engine
	Cfg   config.Config
	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node

	EODSvc       eoddomain.Service
	AnalyticsSvc analyticsdomain.Service
	PersonSvc    persondomain.Service
	BillingSvc   billingdomain.Service

	ObsMetrics    *obsmetrics.Metrics          `optional:"true"`
	SubmitLimiter *ratelimit.SubmissionLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine: p.Gin,
		cfg:    p.Cfg,
		db:     p.DB,
		log:    p.Log.Named("http.server"),
		genID:  p.GenID,

		eodSvc:       p.EODSvc,
		analyticsSvc: p.AnalyticsSvc,
		personSvc:    p.PersonSvc,
		billingSvc:   p.BillingSvc,

		obsMetrics:    p.ObsMetrics,
		submitLimiter: p.SubmitLimiter,
	}

	svc.registerAPIRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", OrgMiddleware(s.cfg))

	// -------- EOD reports --------
	api.POST("/eod/:role", s.SubmitEOD)
	api.GET("/eod", s.ListEODReports)

	// -------- Analytics --------
	api.GET("/analytics/:role", s.AnalyticsOverview)

	// -------- Team --------
	api.POST("/persons", s.CreatePerson)
	api.GET("/persons", s.ListPersons)
	api.GET("/persons/:person_id", s.GetPerson)
	api.DELETE("/persons/:person_id", s.DeactivatePerson)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin", OrgMiddleware(s.cfg))

	// -------- Billing --------
	admin.POST("/plans", s.CreatePlan)
	admin.GET("/plans", s.ListPlans)
	admin.POST("/prices", s.CreatePrice)
	admin.GET("/plans/:plan_id/prices", s.ListPrices)
	admin.POST("/subscription", s.Subscribe)
	admin.GET("/subscription", s.GetSubscription)
	admin.DELETE("/subscription", s.CancelSubscription)
}
