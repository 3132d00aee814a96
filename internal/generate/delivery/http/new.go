package http

import (
	"aibridge-srv/config"
	"aibridge-srv/internal/generate"
	"aibridge-srv/internal/middleware"
	"aibridge-srv/pkg/discord"
	"aibridge-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the generate HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      generate.UseCase
	cfg     *config.Config
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc generate.UseCase, cfg *config.Config, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, cfg: cfg, discord: discord}
}
