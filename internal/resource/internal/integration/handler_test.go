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
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/campus/internal/pkg/ectx"
	"github.com/ecodeclub/campus/internal/pkg/token/generator"
	"github.com/ecodeclub/campus/internal/pkg/upload"
	"github.com/ecodeclub/campus/internal/resource/internal/integration/startup"
	"github.com/ecodeclub/campus/internal/resource/internal/repository/dao"
	"github.com/ecodeclub/campus/internal/resource/internal/web"
	"github.com/ecodeclub/campus/internal/test"
	testioc "github.com/ecodeclub/campus/internal/test/ioc"
	"github.com/ecodeclub/campus/internal/user"
	userdao "github.com/ecodeclub/campus/internal/user/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	uid      = int64(2051)
	otherUid = int64(2052)
	adminUid = int64(3001)
)

// memoryUploader 测试里不碰真的对象存储
type memoryUploader struct{}

func (m *memoryUploader) Upload(_ context.Context, key string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	return "https://files.test/" + key, nil
}

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.ResourceDAO
	// uid 当前请求的登录用户，个别用例会换人
	uid int64
}

func (s *HandlerTestSuite) SetupSuite() {
	userModule, err := user.InitModule(testioc.InitDB(), testioc.InitCache(),
		testioc.InitMQ(), generator.NewJWTTokenGen("campus", "campus-test-key"))
	require.NoError(s.T(), err)
	module, err := startup.InitModule(&memoryUploader{}, userModule)
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	s.uid = uid
	server.Use(func(ctx *gin.Context) {
		ectx.CtxWithUid(ctx, s.uid)
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMResourceDAO(s.db)
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `resources`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.uid = uid
	err := s.db.Exec("TRUNCATE TABLE `resources`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

// seedUsers 上传者解析摘要要用到
func (s *HandlerTestSuite) seedUsers(t *testing.T) {
	users := []userdao.User{
		{Id: uid, Name: "Tom", Email: "tom@college.edu", Password: "x", Role: "student"},
		{Id: otherUid, Name: "Jerry", Email: "jerry@college.edu", Password: "x", Role: "student"},
		{Id: adminUid, Name: "Dean", Email: "dean@college.edu", Password: "x", Role: "admin"},
	}
	for _, u := range users {
		require.NoError(t, s.db.Create(&u).Error)
	}
}

func newUploadRequest(t *testing.T, target string, fields map[string]string,
	filename, contentType string, content []byte) *http.Request {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req, err := http.NewRequest(http.MethodPost, target, &buf)
	require.NoError(t, err)
	req.Header.Set("content-type", w.FormDataContentType())
	return req
}

func (s *HandlerTestSuite) TestUpload() {
	fields := map[string]string{
		"title":       "Graph Theory Notes",
		"description": "chapter 1-5",
		"branch":      "CSE",
		"semester":    "3",
		"subject":     "Discrete Maths",
	}
	testCases := []struct {
		name        string
		fields      map[string]string
		filename    string
		contentType string
		content     []byte
		wantCode    int
		wantMsg     string
	}{
		{
			name:        "上传成功",
			fields:      fields,
			filename:    "notes.pdf",
			contentType: "application/pdf",
			content:     []byte("%PDF-1.4 fake"),
			wantCode:    201,
			wantMsg:     "Resource uploaded successfully",
		},
		{
			name:     "没有文件",
			fields:   fields,
			wantCode: 400,
			wantMsg:  "Please upload a file",
		},
		{
			name:        "文件类型不对",
			fields:      fields,
			filename:    "notes.zip",
			contentType: "application/zip",
			content:     []byte("PK"),
			wantCode:    400,
			wantMsg:     "Invalid file type. Only images and PDFs are allowed.",
		},
		{
			name:        "文件太大",
			fields:      fields,
			filename:    "big.pdf",
			contentType: "application/pdf",
			content:     bytes.Repeat([]byte("a"), upload.MaxFileSize+1),
			wantCode:    400,
			wantMsg:     "File too large. Maximum size is 10MB.",
		},
		{
			name:        "缺了必填字段",
			fields:      map[string]string{"title": "notes"},
			filename:    "notes.pdf",
			contentType: "application/pdf",
			content:     []byte("%PDF-1.4 fake"),
			wantCode:    400,
			wantMsg:     "Validation error",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.seedUsers(t)
			req := newUploadRequest(t, "/api/resources",
				tc.fields, tc.filename, tc.contentType, tc.content)
			recorder := test.NewJSONResponseRecorder[web.UploadResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp, err := recorder.Scan()
			require.NoError(t, err)
			assert.Equal(t, tc.wantMsg, resp.Message)
			if tc.wantCode == 201 {
				assert.True(t, resp.Resource.Id > 0)
				assert.True(t, strings.HasPrefix(resp.Resource.FileURL,
					"https://files.test/college_portal/resources/"))
				assert.True(t, strings.HasSuffix(resp.Resource.FileURL, "_notes.pdf"))
				assert.Equal(t, web.Uploader{Id: uid, Name: "Tom"}, resp.Resource.Uploader)
				assert.Equal(t, int64(0), resp.Resource.Likes)
			}
			s.TearDownTest()
		})
	}
}

func (s *HandlerTestSuite) TestList() {
	s.seedUsers(s.T())
	rs := []dao.Resource{
		{Id: 1, Title: "Graph Theory Notes", Branch: "CSE", Semester: 3,
			Subject: "Discrete Maths", FileURL: "u1", UploaderId: uid, Ctime: 100, Utime: 100},
		{Id: 2, Title: "Thermodynamics PYQ", Branch: "ME", Semester: 3,
			Subject: "Thermodynamics", FileURL: "u2", UploaderId: otherUid, Ctime: 200, Utime: 200},
		{Id: 3, Title: "OS Lab Manual", Description: "graph plotting included",
			Branch: "CSE", Semester: 4, Subject: "OS", FileURL: "u3",
			UploaderId: uid, Ctime: 300, Utime: 300},
	}
	for _, r := range rs {
		require.NoError(s.T(), s.db.Create(&r).Error)
	}

	testCases := []struct {
		name    string
		query   string
		wantIds []int64
	}{
		{name: "全量按时间倒序", query: "", wantIds: []int64{3, 2, 1}},
		{name: "按分支和学期过滤", query: "?branch=CSE&semester=3", wantIds: []int64{1}},
		{name: "按学科过滤", query: "?subject=OS", wantIds: []int64{3}},
		{name: "标题和描述里搜索", query: "?search=graph", wantIds: []int64{3, 1}},
		{name: "没有命中", query: "?branch=ECE", wantIds: []int64{}},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/api/resources"+tc.query, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.ListResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			resp, err := recorder.Scan()
			require.NoError(t, err)
			ids := make([]int64, 0, len(resp.Resources))
			for _, r := range resp.Resources {
				ids = append(ids, r.Id)
			}
			assert.Equal(t, tc.wantIds, ids)
		})
	}
}

func (s *HandlerTestSuite) TestDetail() {
	s.seedUsers(s.T())
	require.NoError(s.T(), s.db.Create(&dao.Resource{
		Id: 1, Title: "Graph Theory Notes", Branch: "CSE", Semester: 3,
		Subject: "Discrete Maths", FileURL: "u1", FileType: "application/pdf",
		UploaderId: uid, Likes: 5, Dislikes: 1, Ctime: 100, Utime: 100,
	}).Error)

	req, err := http.NewRequest(http.MethodGet, "/api/resources/1", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ResourceResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp, err := recorder.Scan()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), web.Resource{
		Id:       1,
		Title:    "Graph Theory Notes",
		Branch:   "CSE",
		Semester: 3,
		Subject:  "Discrete Maths",
		FileURL:  "u1",
		FileType: "application/pdf",
		Likes:    5,
		Dislikes: 1,
		Uploader: web.Uploader{Id: uid, Name: "Tom"},
		Ctime:    100,
		Utime:    100,
	}, resp.Resource)

	req, err = http.NewRequest(http.MethodGet, "/api/resources/999", nil)
	require.NoError(s.T(), err)
	notFound := test.NewJSONResponseRecorder[web.ResourceResp]()
	s.server.ServeHTTP(notFound, req)
	assert.Equal(s.T(), 404, notFound.Code)
}

func (s *HandlerTestSuite) TestReact() {
	s.seedUsers(s.T())
	require.NoError(s.T(), s.db.Create(&dao.Resource{
		Id: 1, Title: "Graph Theory Notes", Branch: "CSE", Semester: 3,
		Subject: "Discrete Maths", FileURL: "u1", UploaderId: uid,
		Ctime: 100, Utime: 100,
	}).Error)

	like := func(t *testing.T) web.ReactResp {
		req, err := http.NewRequest(http.MethodPut, "/api/resources/1/like", nil)
		require.NoError(t, err)
		recorder := test.NewJSONResponseRecorder[web.ReactResp]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(t, 200, recorder.Code)
		resp, err := recorder.Scan()
		require.NoError(t, err)
		return resp
	}
	resp := like(s.T())
	assert.Equal(s.T(), "Resource liked", resp.Message)
	assert.Equal(s.T(), int64(1), resp.Resource.Likes)
	// 没有去重，再点一次就是 2
	resp = like(s.T())
	assert.Equal(s.T(), int64(2), resp.Resource.Likes)

	req, err := http.NewRequest(http.MethodPut, "/api/resources/1/dislike", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ReactResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp, err = recorder.Scan()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Resource disliked", resp.Message)
	assert.Equal(s.T(), int64(2), resp.Resource.Likes)
	assert.Equal(s.T(), int64(1), resp.Resource.Dislikes)

	req, err = http.NewRequest(http.MethodPut, "/api/resources/999/like", nil)
	require.NoError(s.T(), err)
	notFound := test.NewJSONResponseRecorder[web.ReactResp]()
	s.server.ServeHTTP(notFound, req)
	assert.Equal(s.T(), 404, notFound.Code)
}

func (s *HandlerTestSuite) TestDelete() {
	testCases := []struct {
		name      string
		operator  int64
		target    string
		wantCode  int
		wantMsg   string
		wantAlive bool
	}{
		{
			name:     "上传者本人删除",
			operator: uid,
			target:   "/api/resources/1",
			wantCode: 200,
			wantMsg:  "Resource deleted successfully",
		},
		{
			name:      "别的学生不能删",
			operator:  otherUid,
			target:    "/api/resources/1",
			wantCode:  403,
			wantMsg:   "Not authorized to delete this resource",
			wantAlive: true,
		},
		{
			name:     "管理员可以删",
			operator: adminUid,
			target:   "/api/resources/1",
			wantCode: 200,
			wantMsg:  "Resource deleted successfully",
		},
		{
			name:      "资料不存在",
			operator:  uid,
			target:    "/api/resources/999",
			wantCode:  404,
			wantMsg:   "Resource not found",
			wantAlive: true,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.seedUsers(t)
			require.NoError(t, s.db.Create(&dao.Resource{
				Id: 1, Title: "Graph Theory Notes", Branch: "CSE", Semester: 3,
				Subject: "Discrete Maths", FileURL: "u1", UploaderId: uid,
				Ctime: 100, Utime: 100,
			}).Error)
			s.uid = tc.operator
			req, err := http.NewRequest(http.MethodDelete, tc.target, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.ReactResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp, err := recorder.Scan()
			require.NoError(t, err)
			assert.Equal(t, tc.wantMsg, resp.Message)

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_, err = s.dao.GetById(ctx, 1)
			if tc.wantAlive {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, dao.ErrDataNotFound)
			}
			s.TearDownTest()
		})
	}
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
