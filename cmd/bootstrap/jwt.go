package bootstrap

import (
	"dartshop/internal/pkg/config"
	"dartshop/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Admin.TokenSecret, cfg.Admin.TokenDuration)
}
