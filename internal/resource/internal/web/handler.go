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
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/ecodeclub/campus/internal/pkg/ectx"
	"github.com/ecodeclub/campus/internal/pkg/upload"
	"github.com/ecodeclub/campus/internal/resource/internal/domain"
	"github.com/ecodeclub/campus/internal/resource/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.ResourceService
	logger *elog.Component
}

func NewHandler(svc service.ResourceService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("ResourceHandler")),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/resources")
	g.GET("", h.List)
	g.GET("/:id", h.Detail)
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/resources")
	g.POST("", h.Upload)
	g.PUT("/:id/like", h.Like)
	g.PUT("/:id/dislike", h.Dislike)
	g.DELETE("/:id", h.Delete)
}

func (h *Handler) Upload(ctx *gin.Context) {
	var req UploadReq
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	fh, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Please upload a file"})
		return
	}
	if err = upload.Validate(fh); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": uploadErrMsg(err)})
		return
	}
	file, err := fh.Open()
	if err != nil {
		h.logger.Error("读取上传文件失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer file.Close()
	uid := ectx.UidFromCtx(ctx)
	res, err := h.svc.Upload(ctx.Request.Context(), domain.Resource{
		Title:       req.Title,
		Description: req.Description,
		Branch:      req.Branch,
		Semester:    req.Semester,
		Subject:     req.Subject,
		FileType:    fh.Header.Get("Content-Type"),
		Uploader:    domain.Uploader{Id: uid},
	}, file, fh.Filename)
	if err != nil {
		h.logger.Error("上传资料失败", elog.Int64("uid", uid), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusCreated, UploadResp{
		Message:  "Resource uploaded successfully",
		Resource: newResource(res),
	})
}

func (h *Handler) List(ctx *gin.Context) {
	var req ListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	res, err := h.svc.List(ctx.Request.Context(), domain.Query{
		Branch:   req.Branch,
		Semester: req.Semester,
		Subject:  req.Subject,
		Search:   req.Search,
	})
	if err != nil {
		h.logger.Error("查询资料列表失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, ListResp{
		Resources: slice.Map(res, func(idx int, src domain.Resource) Resource {
			return newResource(src)
		}),
	})
}

func (h *Handler) Detail(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	res, err := h.svc.Detail(ctx.Request.Context(), id)
	if errors.Is(err, service.ErrResourceNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
		return
	}
	if err != nil {
		h.logger.Error("查询资料失败", elog.Int64("rid", id), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, ResourceResp{Resource: newResource(res)})
}

func (h *Handler) Like(ctx *gin.Context) {
	h.react(ctx, h.svc.Like, "Resource liked")
}

func (h *Handler) Dislike(ctx *gin.Context) {
	h.react(ctx, h.svc.Dislike, "Resource disliked")
}

// react 点赞和点踩只差一个计数列，这里共用一套流程
func (h *Handler) react(ctx *gin.Context,
	op func(ctx context.Context, id int64) (domain.Resource, error), msg string) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	res, err := op(ctx.Request.Context(), id)
	if errors.Is(err, service.ErrResourceNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
		return
	}
	if err != nil {
		h.logger.Error("更新资料计数失败", elog.Int64("rid", id), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, ReactResp{Message: msg, Resource: newResource(res)})
}

func (h *Handler) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	uid := ectx.UidFromCtx(ctx)
	err = h.svc.Delete(ctx.Request.Context(), id, uid)
	switch {
	case errors.Is(err, service.ErrResourceNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
	case errors.Is(err, service.ErrPermissionDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to delete this resource"})
	case err != nil:
		h.logger.Error("删除资料失败",
			elog.Int64("rid", id), elog.Int64("uid", uid), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	default:
		ctx.JSON(http.StatusOK, gin.H{"message": "Resource deleted successfully"})
	}
}

func uploadErrMsg(err error) string {
	if errors.Is(err, upload.ErrFileTooLarge) {
		return "File too large. Maximum size is 10MB."
	}
	return "Invalid file type. Only images and PDFs are allowed."
}
