package observ_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"pulso/pkg/observ"
)

var Module = fx.Provide(
	provideLogger)

func provideLogger() (*zap.Logger, error) {
	return observ.NewLogger(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
}
