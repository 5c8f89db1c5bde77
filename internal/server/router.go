package server

import (
	"log/slog"
	"net/http"

	"edilmodern-erp/internal/config"
	"edilmodern-erp/internal/handlers"
	"edilmodern-erp/internal/middleware"
	"edilmodern-erp/internal/pdf"
	"edilmodern-erp/internal/services"
	"edilmodern-erp/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, st *store.Store, advice *services.AdviceService, renderer pdf.Renderer, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// il sito vetrina React gira su un'origin separata
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("edil_erp_session", sessionStore))

	authH := handlers.NewAuthHandler(st)
	clientH := handlers.NewClientHandler(st)
	quoteH := handlers.NewQuoteHandler(st, renderer)
	workerH := handlers.NewWorkerHandler(st)
	companyH := handlers.NewCompanyHandler(st)
	leadH := handlers.NewLeadHandler(st)
	adviceH := handlers.NewAdviceHandler(advice)
	auditH := handlers.NewAuditHandler(st)

	api := r.Group("/api")

	// SITO VETRINA (pubblico)
	api.POST("/leads", leadH.Create)
	api.POST("/advice", adviceH.Ask)

	// AUTH
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)
	api.POST("/auth/logout", authH.Logout)

	// GESTIONALE
	erp := api.Group("", middleware.RequireOwner())

	erp.GET("/auth/me", authH.Me)

	// AZIENDA
	erp.GET("/company", companyH.Get)
	erp.PUT("/company", companyH.Update)

	// CLIENTI
	erp.GET("/clients", clientH.List)
	erp.POST("/clients", clientH.Create)
	erp.GET("/clients/:id", clientH.Detail)
	erp.PUT("/clients/:id", clientH.Update)
	erp.DELETE("/clients/:id", clientH.Delete)

	// PREVENTIVI
	erp.GET("/quotes", quoteH.List)
	erp.POST("/quotes", quoteH.Create)
	erp.PATCH("/quotes/:id/status", quoteH.UpdateStatus)
	erp.DELETE("/quotes/:id", quoteH.Delete)
	erp.GET("/quotes/:id/pdf", quoteH.ExportPDF)

	// SQUADRA
	erp.GET("/workers", workerH.List)
	erp.POST("/workers", workerH.Create)
	erp.PUT("/workers/:id", workerH.Update)
	erp.DELETE("/workers/:id", workerH.Delete)

	// RICHIESTE DAL SITO
	erp.GET("/leads", leadH.List)

	// GIORNALE OPERAZIONI
	erp.GET("/audit", auditH.List)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
