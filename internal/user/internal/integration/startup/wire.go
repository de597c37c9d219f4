//go:build wireinject

package startup

import (
	"github.com/ecodeclub/campus/internal/pkg/token/generator"
	testioc "github.com/ecodeclub/campus/internal/test/ioc"
	"github.com/ecodeclub/campus/internal/user"
	"github.com/google/wire"
)

func InitModule(tokenGen generator.TokenGenerator) (*user.Module, error) {
	wire.Build(user.InitModule,
		testioc.InitDB,
		testioc.InitCache,
		testioc.InitMQ)
	return new(user.Module), nil
}
