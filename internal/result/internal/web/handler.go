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

	"github.com/ecodeclub/campus/internal/pkg/ectx"
	"github.com/ecodeclub/campus/internal/result/internal/domain"
	"github.com/ecodeclub/campus/internal/result/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.ResultService
	logger *elog.Component
}

func NewHandler(svc service.ResultService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("ResultHandler")),
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/results")
	g.GET("/my-results", h.MyReport)
	g.GET("/student/:studentId", h.StudentReport)
}

// AdminRoutes 在管理员校验之后注册
func (h *Handler) AdminRoutes(server *gin.Engine) {
	server.POST("/api/results", h.Declare)
}

func (h *Handler) Declare(ctx *gin.Context) {
	var req DeclareReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	entries := slice.Map(req.Results, func(idx int, src EntryReq) domain.Entry {
		return domain.Entry{
			Subject: src.Subject,
			Marks:   src.Marks,
			Credits: src.Credits,
		}
	})
	res, err := h.svc.Declare(ctx.Request.Context(),
		req.StudentId, req.Semester, req.AcademicYear, entries)
	if errors.Is(err, service.ErrStudentNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Student not found"})
		return
	}
	if err != nil {
		h.logger.Error("录入成绩失败",
			elog.Int64("studentId", req.StudentId), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusCreated, DeclareResp{
		Message: "Results declared successfully",
		Results: slice.Map(res, func(idx int, src domain.Result) Result {
			return newResult(src)
		}),
	})
}

func (h *Handler) MyReport(ctx *gin.Context) {
	h.report(ctx, ectx.UidFromCtx(ctx))
}

func (h *Handler) StudentReport(ctx *gin.Context) {
	studentId, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	h.report(ctx, studentId)
}

func (h *Handler) report(ctx *gin.Context, studentId int64) {
	var req ReportReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation error"})
		return
	}
	report, err := h.svc.Report(ctx.Request.Context(),
		studentId, req.Semester, req.AcademicYear)
	if err != nil {
		h.logger.Error("查询成绩单失败",
			elog.Int64("studentId", studentId), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, newReportResp(report))
}
