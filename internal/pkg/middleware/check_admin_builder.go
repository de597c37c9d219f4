// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"net/http"

	"github.com/ecodeclub/campus/internal/pkg/ectx"
	"github.com/ecodeclub/campus/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckAdminMiddlewareBuilder 管理员角色校验。
// token 里只有 uid，角色要实时查一把用户服务（走缓存），
// 避免改了角色之后旧 token 还带着旧角色。
type CheckAdminMiddlewareBuilder struct {
	svc    user.UserService
	logger *elog.Component
}

func NewCheckAdminMiddlewareBuilder(svc user.UserService) *CheckAdminMiddlewareBuilder {
	return &CheckAdminMiddlewareBuilder{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("CheckAdminMiddleware")),
	}
}

func (c *CheckAdminMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uid := ectx.UidFromCtx(ctx)
		u, err := c.svc.Profile(ctx.Request.Context(), uid)
		if err != nil {
			c.logger.Error("查询用户失败", elog.Int64("uid", uid), elog.FieldErr(err))
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		if u.Role != user.RoleAdmin {
			c.logger.Debug("非管理员访问管理接口", elog.Int64("uid", uid))
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
	}
}
