package httpserver

import (
	"context"
	"time"

	generatehttp "aibridge-srv/internal/generate/delivery/http"
	generateusecase "aibridge-srv/internal/generate/usecase"
	"aibridge-srv/internal/middleware"
	pkghttp "aibridge-srv/pkg/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.config, srv.encrypter)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Public-URL file downloads share the Genesys client timeout; every call
	// is single-attempt.
	fetcher := pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout: time.Duration(srv.config.Genesys.Timeout) * time.Second,
		Retries: 0,
	})

	// Initialize usecases
	generateUC := generateusecase.New(srv.l, srv.gemini, srv.genesys, fetcher)

	// Initialize HTTP handlers
	generateHandler := generatehttp.New(srv.l, generateUC, srv.config, srv.discord)

	// Map routes (no prefix)
	generateHandler.RegisterRoutes(srv.gin.Group(""), mw)

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
