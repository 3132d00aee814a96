package middleware

import (
	"aibridge-srv/config"
	"aibridge-srv/pkg/encrypter"
	pkgJWT "aibridge-srv/pkg/jwt"
	"aibridge-srv/pkg/log"
)

type Middleware struct {
	l          log.Logger
	jwtManager pkgJWT.IManager
	config     *config.Config
	encrypter  encrypter.Encrypter
}

func New(l log.Logger, jwtManager pkgJWT.IManager, cfg *config.Config, enc encrypter.Encrypter) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		config:     cfg,
		encrypter:  enc,
	}
}
