package web

import (
	"github.com/ecodeclub/campus/internal/result/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type DeclareReq struct {
	StudentId    int64      `json:"studentId" binding:"required"`
	Semester     int        `json:"semester" binding:"required,min=1,max=8"`
	AcademicYear string     `json:"academicYear" binding:"required"`
	Results      []EntryReq `json:"results" binding:"required,min=1,dive"`
}

type EntryReq struct {
	Subject string  `json:"subject" binding:"required"`
	Marks   float64 `json:"marks" binding:"gte=0,lte=100"`
	Credits int     `json:"credits" binding:"omitempty,min=1"`
}

type ReportReq struct {
	Semester     int    `form:"semester" binding:"omitempty,min=1,max=8"`
	AcademicYear string `form:"academicYear"`
}

type Result struct {
	Id           int64   `json:"id"`
	StudentId    int64   `json:"studentId"`
	Semester     int     `json:"semester"`
	Subject      string  `json:"subject"`
	Marks        float64 `json:"marks"`
	Grade        string  `json:"grade"`
	Credits      int     `json:"credits"`
	AcademicYear string  `json:"academicYear"`
	Ctime        int64   `json:"ctime"`
	Utime        int64   `json:"utime"`
}

func newResult(r domain.Result) Result {
	return Result{
		Id:           r.Id,
		StudentId:    r.StudentId,
		Semester:     r.Semester,
		Subject:      r.Subject,
		Marks:        r.Marks,
		Grade:        r.Grade,
		Credits:      r.Credits,
		AcademicYear: r.AcademicYear,
		Ctime:        r.Ctime,
		Utime:        r.Utime,
	}
}

type DeclareResp struct {
	Message string   `json:"message"`
	Results []Result `json:"results"`
}

type ReportResp struct {
	Results      map[int][]Result `json:"results"`
	SemesterGPAs map[int]float64  `json:"semesterGPAs"`
	OverallGPA   float64          `json:"overallGPA"`
}

func newReportResp(r domain.Report) ReportResp {
	grouped := make(map[int][]Result, len(r.Results))
	for sem, rs := range r.Results {
		grouped[sem] = slice.Map(rs, func(idx int, src domain.Result) Result {
			return newResult(src)
		})
	}
	return ReportResp{
		Results:      grouped,
		SemesterGPAs: r.SemesterGPAs,
		OverallGPA:   r.OverallGPA,
	}
}
