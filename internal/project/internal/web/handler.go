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
	"io"
	"net/http"
	"strconv"

	"github.com/ecodeclub/campus/internal/pkg/ectx"
	"github.com/ecodeclub/campus/internal/pkg/upload"
	"github.com/ecodeclub/campus/internal/project/internal/domain"
	"github.com/ecodeclub/campus/internal/project/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.ProjectService
	logger *elog.Component
}

func NewHandler(svc service.ProjectService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("ProjectHandler")),
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/projects")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Detail)
	g.PUT("/:id", h.Update)
	g.POST("/:id/members", h.AddMember)
	g.POST("/:id/resources", h.UploadResource)
}

func (h *Handler) Create(ctx *gin.Context) {
	var req CreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	uid := ectx.UidFromCtx(ctx)
	p, err := h.svc.Create(ctx.Request.Context(), domain.Project{
		Title:       req.Title,
		Description: req.Description,
		Creator:     domain.UserSummary{Id: uid},
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Tags:        req.Tags,
	})
	if err != nil {
		h.logger.Error("创建项目失败", elog.Int64("uid", uid), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusCreated, ProjectResp{
		Message: "Project created successfully",
		Project: newProject(p),
	})
}

func (h *Handler) List(ctx *gin.Context) {
	var req ListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	res, err := h.svc.List(ctx.Request.Context(), req.Status, req.Search)
	if err != nil {
		h.logger.Error("查询项目列表失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, ListResp{
		Projects: slice.Map(res, func(idx int, src domain.Project) Project {
			return newProject(src)
		}),
	})
}

func (h *Handler) Detail(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	p, err := h.svc.Detail(ctx.Request.Context(), id)
	if errors.Is(err, service.ErrProjectNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	if err != nil {
		h.logger.Error("查询项目失败", elog.Int64("pid", id), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, ProjectResp{Project: newProject(p)})
}

func (h *Handler) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	var req UpdateReq
	if err = ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	uid := ectx.UidFromCtx(ctx)
	p, err := h.svc.Update(ctx.Request.Context(), id, uid, domain.ProjectUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Tags:        req.Tags,
	})
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
	case errors.Is(err, service.ErrPermissionDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to update this project"})
	case err != nil:
		h.logger.Error("更新项目失败",
			elog.Int64("pid", id), elog.Int64("uid", uid), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	default:
		ctx.JSON(http.StatusOK, ProjectResp{
			Message: "Project updated successfully",
			Project: newProject(p),
		})
	}
}

func (h *Handler) AddMember(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	var req AddMemberReq
	if err = ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	uid := ectx.UidFromCtx(ctx)
	p, err := h.svc.AddMember(ctx.Request.Context(), id, uid, req.UserId)
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
	case errors.Is(err, service.ErrPermissionDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Only project creator can add members"})
	case errors.Is(err, service.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, service.ErrAlreadyMember):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "User is already a member"})
	case err != nil:
		h.logger.Error("添加项目成员失败",
			elog.Int64("pid", id), elog.Int64("uid", uid), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	default:
		ctx.JSON(http.StatusOK, ProjectResp{
			Message: "Member added successfully",
			Project: newProject(p),
		})
	}
}

func (h *Handler) UploadResource(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	var req UploadResourceReq
	if err = ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	// 项目资料的文件是可选的
	var file io.Reader
	var filename, fileType string
	if fh, ferr := ctx.FormFile("file"); ferr == nil {
		if err = upload.Validate(fh); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": uploadErrMsg(err)})
			return
		}
		f, oerr := fh.Open()
		if oerr != nil {
			h.logger.Error("读取上传文件失败", elog.FieldErr(oerr))
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		defer f.Close()
		file = f
		filename = fh.Filename
		fileType = fh.Header.Get("Content-Type")
	}
	uid := ectx.UidFromCtx(ctx)
	res, err := h.svc.UploadResource(ctx.Request.Context(), uid, domain.Resource{
		ProjectId:   id,
		Title:       req.Title,
		Description: req.Description,
		FileType:    fileType,
	}, file, filename)
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
	case errors.Is(err, service.ErrPermissionDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Only project members can upload resources"})
	case err != nil:
		h.logger.Error("上传项目资料失败",
			elog.Int64("pid", id), elog.Int64("uid", uid), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	default:
		ctx.JSON(http.StatusCreated, ResourceResp{
			Message:  "Resource uploaded successfully",
			Resource: newResource(res),
		})
	}
}

func uploadErrMsg(err error) string {
	if errors.Is(err, upload.ErrFileTooLarge) {
		return "File too large. Maximum size is 10MB."
	}
	return "Invalid file type. Only images and PDFs are allowed."
}
