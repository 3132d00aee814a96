package generate

import (
	"context"

	"aibridge-srv/pkg/genesys"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, creds genesys.Credentials, input Input) (Output, error)
}
