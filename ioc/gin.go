package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/campus/internal/desk"
	"github.com/ecodeclub/campus/internal/pkg/middleware"
	"github.com/ecodeclub/campus/internal/pkg/token/validator"
	"github.com/ecodeclub/campus/internal/project"
	"github.com/ecodeclub/campus/internal/resource"
	"github.com/ecodeclub/campus/internal/result"
	"github.com/ecodeclub/campus/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinServer(vf validator.Verifier,
	userModule *user.Module,
	resourceModule *resource.Module,
	projectModule *project.Module,
	resultModule *result.Module,
	deskModule *desk.Module,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/api/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	userModule.Hdl.PublicRoutes(res.Engine)
	resourceModule.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(middleware.NewCheckLoginMiddlewareBuilder(vf).Build())
	userModule.Hdl.PrivateRoutes(res.Engine)
	resourceModule.Hdl.PrivateRoutes(res.Engine)
	projectModule.Hdl.PrivateRoutes(res.Engine)
	resultModule.Hdl.PrivateRoutes(res.Engine)
	deskModule.Hdl.PrivateRoutes(res.Engine)
	// 管理员校验，只有成绩录入在后面
	res.Use(middleware.NewCheckAdminMiddlewareBuilder(userModule.Svc).Build())
	resultModule.Hdl.AdminRoutes(res.Engine)
	return res
}
