// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/mkbukhari/hisaab-kitaab/internal/bankdelivery"
	"github.com/mkbukhari/hisaab-kitaab/internal/bankrepo"
	"github.com/mkbukhari/hisaab-kitaab/internal/bankservice"
	"github.com/mkbukhari/hisaab-kitaab/internal/ledgerdelivery"
	"github.com/mkbukhari/hisaab-kitaab/internal/ledgerrepo"
	"github.com/mkbukhari/hisaab-kitaab/internal/ledgerservice"
	"github.com/mkbukhari/hisaab-kitaab/internal/middleware"
	"github.com/mkbukhari/hisaab-kitaab/internal/saudidelivery"
	"github.com/mkbukhari/hisaab-kitaab/internal/saudirepo"
	"github.com/mkbukhari/hisaab-kitaab/internal/saudiservice"
	"github.com/mkbukhari/hisaab-kitaab/internal/sessiondelivery"
	"github.com/mkbukhari/hisaab-kitaab/internal/sessionrepo"
	"github.com/mkbukhari/hisaab-kitaab/internal/sessionservice"
	"github.com/mkbukhari/hisaab-kitaab/internal/specialdelivery"
	"github.com/mkbukhari/hisaab-kitaab/internal/specialrepo"
	"github.com/mkbukhari/hisaab-kitaab/internal/specialservice"
	"github.com/mkbukhari/hisaab-kitaab/internal/traderdelivery"
	"github.com/mkbukhari/hisaab-kitaab/internal/traderrepo"
	"github.com/mkbukhari/hisaab-kitaab/internal/traderservice"
	"github.com/mkbukhari/hisaab-kitaab/internal/userdelivery"
	"github.com/mkbukhari/hisaab-kitaab/internal/userrepo"
	"github.com/mkbukhari/hisaab-kitaab/internal/userservice"
	"github.com/mkbukhari/hisaab-kitaab/pkg/configpkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/timepkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)
	traderRepo := traderrepo.NewRepoPGS(conn)
	bankRepo := bankrepo.NewRepoPGS(conn)
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)
	saudiRepo := saudirepo.NewRepoPGS(conn)
	specialRepo := specialrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo)
	sessionService := sessionservice.New(sessionRepo, config, tokenMaker)
	bankService := bankservice.New(bankRepo, ledgerRepo, traderRepo)
	traderService := traderservice.New(traderRepo, bankService)
	ledgerService := ledgerservice.New(ledgerRepo, bankRepo)
	saudiService := saudiservice.New(saudiRepo)
	specialService := specialservice.New(specialRepo)

	userHandler := userdelivery.NewHandler(userService, sessionService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)
	traderHandler := traderdelivery.NewHandler(traderService)
	bankHandler := bankdelivery.NewHandler(bankService)
	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)
	saudiHandler := saudidelivery.NewHandler(saudiService)
	specialHandler := specialdelivery.NewHandler(specialService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/health", func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.POST("/users/change-password", userHandler.ChangePassword)

	authRoutes.POST("/traders", traderHandler.Create)
	authRoutes.GET("/traders", traderHandler.List)
	authRoutes.GET("/traders/:traderId", traderHandler.Get)
	authRoutes.PATCH("/traders/:traderId", traderHandler.Update)
	authRoutes.DELETE("/traders/:traderId", traderHandler.Delete)

	authRoutes.POST("/traders/:traderId/banks", bankHandler.Create)
	authRoutes.GET("/traders/:traderId/banks", bankHandler.List)
	authRoutes.GET("/traders/:traderId/banks/:bankId", bankHandler.Get)
	authRoutes.PATCH("/traders/:traderId/banks/:bankId", bankHandler.Update)
	authRoutes.DELETE("/traders/:traderId/banks/:bankId", bankHandler.Delete)

	authRoutes.POST("/traders/:traderId/banks/:bankId/entries", ledgerHandler.Create)
	authRoutes.GET("/traders/:traderId/banks/:bankId/entries", ledgerHandler.List)
	authRoutes.GET("/traders/:traderId/banks/:bankId/entries/:entryId", ledgerHandler.Get)
	authRoutes.PATCH("/traders/:traderId/banks/:bankId/entries/:entryId", ledgerHandler.Update)
	authRoutes.DELETE("/traders/:traderId/banks/:bankId/entries/:entryId", ledgerHandler.Delete)

	authRoutes.POST("/saudi-entries", saudiHandler.Create)
	authRoutes.GET("/saudi-entries", saudiHandler.List)
	authRoutes.GET("/saudi-entries/:entryId", saudiHandler.Get)
	authRoutes.PATCH("/saudi-entries/:entryId", saudiHandler.Update)
	authRoutes.DELETE("/saudi-entries/:entryId", saudiHandler.Delete)

	authRoutes.POST("/special-entries", specialHandler.Create)
	authRoutes.GET("/special-entries", specialHandler.List)
	authRoutes.GET("/special-entries/:entryId", specialHandler.Get)
	authRoutes.PATCH("/special-entries/:entryId", specialHandler.Update)
	authRoutes.DELETE("/special-entries/:entryId", specialHandler.Delete)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("clocktime", timepkg.ValidClockTime)
		if err != nil {
			return nil, errors.New("cannot register clocktime validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
