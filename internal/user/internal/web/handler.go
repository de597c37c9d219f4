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

package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ecodeclub/campus/internal/pkg/ectx"
	"github.com/ecodeclub/campus/internal/pkg/token/generator"
	"github.com/ecodeclub/campus/internal/user/internal/domain"
	"github.com/ecodeclub/campus/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// 令牌 30 天有效
const tokenExpiry = 30 * 24 * time.Hour

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.UserService
	tokenGen generator.TokenGenerator
	logger   *elog.Component
}

func NewHandler(svc service.UserService, tokenGen generator.TokenGenerator) *Handler {
	return &Handler{
		svc:      svc,
		tokenGen: tokenGen,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("UserHandler")),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/auth")
	g.GET("/profile", h.Profile)
	g.PUT("/profile", h.UpdateProfile)
}

func (h *Handler) Register(ctx *gin.Context) {
	var req RegisterReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	u, err := h.svc.Register(ctx.Request.Context(), domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Branch:   req.Branch,
		Year:     req.Year,
		Semester: req.Semester,
		Role:     req.Role,
	})
	if errors.Is(err, service.ErrUserDuplicate) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "User already exists with this email"})
		return
	}
	if err != nil {
		h.logger.Error("注册失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	token, err := h.tokenGen.GenerateToken(strconv.FormatInt(u.Id, 10), tokenExpiry)
	if err != nil {
		h.logger.Error("生成 token 失败", elog.Int64("uid", u.Id), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusCreated, AuthResp{
		Message: "User registered successfully",
		Token:   token,
		User:    newUser(u),
	})
}

func (h *Handler) Login(ctx *gin.Context) {
	var req LoginReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	u, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidEmailOrPassword) {
		// 邮箱不存在和密码错误的文案必须一样
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	if err != nil {
		h.logger.Error("登录失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	token, err := h.tokenGen.GenerateToken(strconv.FormatInt(u.Id, 10), tokenExpiry)
	if err != nil {
		h.logger.Error("生成 token 失败", elog.Int64("uid", u.Id), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, AuthResp{
		Message: "Login successful",
		Token:   token,
		User:    newUser(u),
	})
}

func (h *Handler) Profile(ctx *gin.Context) {
	uid := ectx.UidFromCtx(ctx)
	u, err := h.svc.Profile(ctx.Request.Context(), uid)
	if err != nil {
		h.logger.Error("查询用户失败", elog.Int64("uid", uid), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, ProfileResp{User: newUser(u)})
}

func (h *Handler) UpdateProfile(ctx *gin.Context) {
	var req UpdateProfileReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	uid := ectx.UidFromCtx(ctx)
	u, err := h.svc.UpdateProfile(ctx.Request.Context(), uid, domain.UserUpdate{
		Name:     req.Name,
		Branch:   req.Branch,
		Year:     req.Year,
		Semester: req.Semester,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
	})
	if err != nil {
		h.logger.Error("更新资料失败", elog.Int64("uid", uid), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, UpdateProfileResp{
		Message: "Profile updated successfully",
		User:    newUser(u),
	})
}
