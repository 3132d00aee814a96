package main

import (
	"context"
	"fmt"
	"time"

	"aibridge-srv/config"
	"aibridge-srv/internal/httpserver"
	"aibridge-srv/pkg/discord"
	"aibridge-srv/pkg/encrypter"
	"aibridge-srv/pkg/gemini"
	"aibridge-srv/pkg/genesys"
	pkgJWT "aibridge-srv/pkg/jwt"
	"aibridge-srv/pkg/log"
)

func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Initialize Gemini client
	// The API key is a shared secret resolved from config only
	geminiClient, err := gemini.New(gemini.GeminiConfig{
		APIKey:  cfg.Gemini.APIKey,
		Timeout: time.Duration(cfg.Gemini.Timeout) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	logger.Infof(ctx, "Gemini client initialized (default model %s)", cfg.Gemini.Model)

	// 4. Initialize Genesys Cloud client
	genesysClient := genesys.New(genesys.GenesysConfig{
		Domain: cfg.Genesys.Domain,
	})
	logger.Infof(ctx, "Genesys Cloud client initialized for region %s", cfg.Genesys.Domain)

	// 5. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 6. Initialize JWT manager (optional - internal caller auth)
	var jwtManager pkgJWT.IManager
	if cfg.JWT.SecretKey != "" {
		jwtManager, err = pkgJWT.New(pkgJWT.Config{
			SecretKey: cfg.JWT.SecretKey,
			Issuer:    cfg.JWT.Issuer,
			Audience:  cfg.JWT.Audience,
			TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize JWT manager: ", err)
			return
		}
		logger.Info(ctx, "JWT manager initialized (HS256)")
	}

	// 7. Initialize encrypter (optional - service-key auth)
	var encrypterInstance encrypter.Encrypter
	if cfg.Encrypter.Key != "" {
		encrypterInstance = encrypter.New(cfg.Encrypter.Key)
	}

	// 8. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		Gemini:  geminiClient,
		Genesys: genesysClient,

		Config:     cfg,
		JWTManager: jwtManager,
		Encrypter:  encrypterInstance,

		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
