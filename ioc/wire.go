//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/campus/internal/desk"
	"github.com/ecodeclub/campus/internal/project"
	"github.com/ecodeclub/campus/internal/resource"
	"github.com/ecodeclub/campus/internal/result"
	"github.com/ecodeclub/campus/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitStorage)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitTokenGenerator,
		InitTokenVerifier,
		user.InitModule,
		resource.InitModule,
		project.InitModule,
		result.InitModule,
		desk.InitModule,
		initGinServer)
	return new(App), nil
}
