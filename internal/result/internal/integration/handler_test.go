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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/campus/internal/pkg/ectx"
	"github.com/ecodeclub/campus/internal/pkg/token/generator"
	"github.com/ecodeclub/campus/internal/result/internal/integration/startup"
	"github.com/ecodeclub/campus/internal/result/internal/repository/dao"
	"github.com/ecodeclub/campus/internal/result/internal/web"
	"github.com/ecodeclub/campus/internal/test"
	testioc "github.com/ecodeclub/campus/internal/test/ioc"
	"github.com/ecodeclub/campus/internal/user"
	userdao "github.com/ecodeclub/campus/internal/user/internal/repository/dao"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const studentUid = int64(2051)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.ResultDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	userModule, err := user.InitModule(testioc.InitDB(), testioc.InitCache(),
		testioc.InitMQ(), generator.NewJWTTokenGen("campus", "campus-test-key"))
	require.NoError(s.T(), err)
	module, err := startup.InitModule(userModule)
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ectx.CtxWithUid(ctx, studentUid)
	})
	module.Hdl.PrivateRoutes(server.Engine)
	// 录入接口在生产环境由管理员校验兜底，这里直接注册
	module.Hdl.AdminRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMResultDAO(s.db)
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `results`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `results`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) seedStudent(t *testing.T) {
	require.NoError(t, s.db.Create(&userdao.User{
		Id: studentUid, Name: "Tom", Email: "tom@college.edu",
		Password: "x", Role: "student",
	}).Error)
}

func (s *HandlerTestSuite) TestDeclare() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.DeclareReq
		wantCode int
		wantMsg  string
	}{
		{
			name:   "录入成功",
			before: s.seedStudent,
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				rs, err := s.dao.ListByStudent(ctx, studentUid, 3, "")
				require.NoError(t, err)
				require.Len(t, rs, 2)
				// 按科目排序
				assert.Equal(t, "Discrete Maths", rs[0].Subject)
				assert.Equal(t, "A+", rs[0].Grade)
				assert.Equal(t, 4, rs[0].Credits)
				assert.Equal(t, "Operating Systems", rs[1].Subject)
				assert.Equal(t, "C", rs[1].Grade)
				// 没传学分就按默认值
				assert.Equal(t, 3, rs[1].Credits)
			},
			req: web.DeclareReq{
				StudentId:    studentUid,
				Semester:     3,
				AcademicYear: "2023-24",
				Results: []web.EntryReq{
					{Subject: "Discrete Maths", Marks: 92, Credits: 4},
					{Subject: "Operating Systems", Marks: 55},
				},
			},
			wantCode: 201,
			wantMsg:  "Results declared successfully",
		},
		{
			name:   "学生不存在",
			before: func(t *testing.T) {},
			after:  func(t *testing.T) {},
			req: web.DeclareReq{
				StudentId:    9999,
				Semester:     3,
				AcademicYear: "2023-24",
				Results:      []web.EntryReq{{Subject: "Discrete Maths", Marks: 92}},
			},
			wantCode: 404,
			wantMsg:  "Student not found",
		},
		{
			name:   "分数超出范围",
			before: s.seedStudent,
			after:  func(t *testing.T) {},
			req: web.DeclareReq{
				StudentId:    studentUid,
				Semester:     3,
				AcademicYear: "2023-24",
				Results:      []web.EntryReq{{Subject: "Discrete Maths", Marks: 101}},
			},
			wantCode: 400,
			wantMsg:  "Validation error",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/api/results", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.DeclareResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp, err := recorder.Scan()
			require.NoError(t, err)
			assert.Equal(t, tc.wantMsg, resp.Message)
			tc.after(t)
			s.TearDownTest()
		})
	}
}

func (s *HandlerTestSuite) TestMyReport() {
	s.seedStudent(s.T())
	rs := []dao.Result{
		{StudentId: studentUid, Semester: 1, Subject: "Maths",
			Marks: 95, Grade: "A+", Credits: 3, AcademicYear: "2022-23"},
		{StudentId: studentUid, Semester: 1, Subject: "Physics",
			Marks: 45, Grade: "D", Credits: 3, AcademicYear: "2022-23"},
		{StudentId: studentUid, Semester: 2, Subject: "Chemistry",
			Marks: 85, Grade: "A", Credits: 4, AcademicYear: "2022-23"},
	}
	for _, r := range rs {
		require.NoError(s.T(), s.db.Create(&r).Error)
	}

	req, err := http.NewRequest(http.MethodGet, "/api/results/my-results", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ReportResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp, err := recorder.Scan()
	require.NoError(s.T(), err)
	require.Len(s.T(), resp.Results[1], 2)
	require.Len(s.T(), resp.Results[2], 1)
	assert.Equal(s.T(), 7.50, resp.SemesterGPAs[1])
	assert.Equal(s.T(), 9.00, resp.SemesterGPAs[2])
	// (10*3 + 5*3 + 9*4) / 10
	assert.Equal(s.T(), 8.10, resp.OverallGPA)
}

func (s *HandlerTestSuite) TestStudentReport() {
	s.seedStudent(s.T())
	rs := []dao.Result{
		{StudentId: studentUid, Semester: 1, Subject: "Maths",
			Marks: 95, Grade: "A+", Credits: 3, AcademicYear: "2022-23"},
		{StudentId: studentUid, Semester: 2, Subject: "Chemistry",
			Marks: 85, Grade: "A", Credits: 4, AcademicYear: "2023-24"},
	}
	for _, r := range rs {
		require.NoError(s.T(), s.db.Create(&r).Error)
	}

	// 按学期过滤
	req, err := http.NewRequest(http.MethodGet,
		"/api/results/student/2051?semester=1", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ReportResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp, err := recorder.Scan()
	require.NoError(s.T(), err)
	require.Len(s.T(), resp.Results, 1)
	require.Len(s.T(), resp.Results[1], 1)
	assert.Equal(s.T(), 10.00, resp.OverallGPA)

	// 按学年过滤
	req, err = http.NewRequest(http.MethodGet,
		"/api/results/student/2051?academicYear=2023-24", nil)
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[web.ReportResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp, err = recorder.Scan()
	require.NoError(s.T(), err)
	require.Len(s.T(), resp.Results, 1)
	require.Len(s.T(), resp.Results[2], 1)

	// 没有成绩时返回空成绩单
	req, err = http.NewRequest(http.MethodGet, "/api/results/student/7777", nil)
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[web.ReportResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp, err = recorder.Scan()
	require.NoError(s.T(), err)
	assert.Empty(s.T(), resp.Results)
	assert.Equal(s.T(), float64(0), resp.OverallGPA)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
