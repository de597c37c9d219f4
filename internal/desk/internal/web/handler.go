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
	"net/http"

	"github.com/ecodeclub/campus/internal/desk/internal/domain"
	"github.com/ecodeclub/campus/internal/desk/internal/service"
	"github.com/ecodeclub/campus/internal/pkg/ectx"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.DeskService
	logger *elog.Component
}

func NewHandler(svc service.DeskService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("DeskHandler")),
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/desk")
	g.GET("", h.Desk)
	g.PUT("", h.Update)
}

func (h *Handler) Desk(ctx *gin.Context) {
	uid := ectx.UidFromCtx(ctx)
	d, err := h.svc.Desk(ctx.Request.Context(), uid)
	if err != nil {
		h.logger.Error("查询工作台失败", elog.Int64("uid", uid), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, DeskResp{Desk: newDesk(d)})
}

func (h *Handler) Update(ctx *gin.Context) {
	var req UpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	uid := ectx.UidFromCtx(ctx)
	d, err := h.svc.Update(ctx.Request.Context(), uid, domain.DeskUpdate{
		Folders: req.Folders,
		Files:   req.Files,
		Layout:  req.Layout,
	})
	if err != nil {
		h.logger.Error("更新工作台失败", elog.Int64("uid", uid), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, DeskResp{
		Message: "Desk updated successfully",
		Desk:    newDesk(d),
	})
}
