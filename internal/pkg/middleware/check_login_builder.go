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
	"strconv"
	"strings"

	"github.com/ecodeclub/campus/internal/pkg/ectx"
	"github.com/ecodeclub/campus/internal/pkg/token/validator"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type CheckLoginMiddlewareBuilder struct {
	vf     validator.Verifier
	logger *elog.Component
}

func NewCheckLoginMiddlewareBuilder(vf validator.Verifier) *CheckLoginMiddlewareBuilder {
	return &CheckLoginMiddlewareBuilder{
		vf:     vf,
		logger: elog.DefaultLogger.With(elog.FieldComponent("CheckLoginMiddleware")),
	}
}

func (c *CheckLoginMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		const bearerPrefix = "Bearer "
		auth := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}
		sub, err := c.vf.Verify(strings.TrimPrefix(auth, bearerPrefix))
		if err != nil {
			c.logger.Debug("校验 token 失败", elog.FieldErr(err))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}
		uid, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			c.logger.Debug("token subject 不是合法 uid", elog.FieldErr(err))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}
		ectx.CtxWithUid(ctx, uid)
	}
}
