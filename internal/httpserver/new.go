package httpserver

import (
	"errors"

	"aibridge-srv/config"
	"aibridge-srv/pkg/discord"
	"aibridge-srv/pkg/encrypter"
	"aibridge-srv/pkg/gemini"
	"aibridge-srv/pkg/genesys"
	pkgJWT "aibridge-srv/pkg/jwt"
	"aibridge-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Upstream clients
	gemini  gemini.IGemini
	genesys genesys.IGenesys

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager pkgJWT.IManager
	encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Upstream clients
	Gemini  gemini.IGemini
	Genesys genesys.IGenesys

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager pkgJWT.IManager
	Encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		gemini:  cfg.Gemini,
		genesys: cfg.Genesys,

		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
		encrypter:  cfg.Encrypter,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.gemini == nil {
		return errors.New("gemini client is required")
	}
	if srv.genesys == nil {
		return errors.New("genesys client is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	return nil
}
