package usecase

import (
	"aibridge-srv/internal/generate"
	"aibridge-srv/pkg/gemini"
	"aibridge-srv/pkg/genesys"
	pkghttp "aibridge-srv/pkg/http"
	"aibridge-srv/pkg/log"
)

type implUseCase struct {
	gemini  gemini.IGemini
	genesys genesys.IGenesys
	fetcher pkghttp.IClient
	l       log.Logger
}

// New - Factory function. fetcher downloads public (unauthenticated) URLs.
func New(
	l log.Logger,
	geminiClient gemini.IGemini,
	genesysClient genesys.IGenesys,
	fetcher pkghttp.IClient,
) generate.UseCase {
	return &implUseCase{
		gemini:  geminiClient,
		genesys: genesysClient,
		fetcher: fetcher,
		l:       l,
	}
}
