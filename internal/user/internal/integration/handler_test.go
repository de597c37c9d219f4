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
	"github.com/ecodeclub/campus/internal/test"
	testioc "github.com/ecodeclub/campus/internal/test/ioc"
	"github.com/ecodeclub/campus/internal/user/internal/domain"
	"github.com/ecodeclub/campus/internal/user/internal/integration/startup"
	"github.com/ecodeclub/campus/internal/user/internal/repository/dao"
	"github.com/ecodeclub/campus/internal/user/internal/service"
	"github.com/ecodeclub/campus/internal/user/internal/web"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const uid = int64(2051)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.UserDAO
	svc    service.UserService
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule(generator.NewJWTTokenGen("campus", "campus-test-key"))
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ectx.CtxWithUid(ctx, uid)
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMUserDAO(s.db)
	s.svc = module.Svc
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestRegister() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.RegisterReq
		wantCode int
		wantMsg  string
	}{
		{
			name:   "注册成功",
			before: func(t *testing.T) {},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				u, err := s.dao.FindByEmail(ctx, "tom@college.edu")
				require.NoError(t, err)
				assert.Equal(t, "Tom", u.Name)
				assert.Equal(t, "CSE", u.Branch)
				assert.Equal(t, "student", u.Role)
				// 库里存的是 bcrypt 哈希
				assert.NotEqual(t, "secret123", u.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(u.Password), []byte("secret123")))
			},
			req: web.RegisterReq{
				Name:     "Tom",
				Email:    "tom@college.edu",
				Password: "secret123",
				Branch:   "CSE",
				Year:     2,
				Semester: 3,
			},
			wantCode: 201,
			wantMsg:  "User registered successfully",
		},
		{
			name: "邮箱已经注册过",
			before: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_, err := s.dao.Insert(ctx, dao.User{
					Name:     "Jerry",
					Email:    "tom@college.edu",
					Password: "whatever",
				})
				require.NoError(t, err)
			},
			after: func(t *testing.T) {},
			req: web.RegisterReq{
				Name:     "Tom",
				Email:    "tom@college.edu",
				Password: "secret123",
			},
			wantCode: 400,
			wantMsg:  "User already exists with this email",
		},
		{
			name:     "密码太短",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req:      web.RegisterReq{Name: "Tom", Email: "tom@college.edu", Password: "123"},
			wantCode: 400,
			wantMsg:  "Validation error",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/api/auth/register", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.AuthResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp, err := recorder.Scan()
			require.NoError(t, err)
			assert.Equal(t, tc.wantMsg, resp.Message)
			if tc.wantCode == 201 {
				assert.NotEmpty(t, resp.Token)
				assert.True(t, resp.User.Id > 0)
				assert.Equal(t, tc.req.Email, resp.User.Email)
			}
			tc.after(t)
			err = s.db.Exec("TRUNCATE TABLE `users`").Error
			require.NoError(t, err)
		})
	}
}

func (s *HandlerTestSuite) TestLogin() {
	register := func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_, err := s.svc.Register(ctx, domain.User{
			Name:     "Tom",
			Email:    "tom@college.edu",
			Password: "secret123",
		})
		require.NoError(t, err)
	}
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.LoginReq
		wantCode int
		wantMsg  string
	}{
		{
			name:     "登录成功",
			before:   register,
			req:      web.LoginReq{Email: "tom@college.edu", Password: "secret123"},
			wantCode: 200,
			wantMsg:  "Login successful",
		},
		{
			name:     "密码不对",
			before:   register,
			req:      web.LoginReq{Email: "tom@college.edu", Password: "wrong-pass"},
			wantCode: 401,
			wantMsg:  "Invalid email or password",
		},
		{
			// 文案必须和密码错误的一样，不能泄露邮箱是否注册过
			name:     "邮箱没注册",
			before:   func(t *testing.T) {},
			req:      web.LoginReq{Email: "nobody@college.edu", Password: "secret123"},
			wantCode: 401,
			wantMsg:  "Invalid email or password",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/api/auth/login", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.AuthResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp, err := recorder.Scan()
			require.NoError(t, err)
			assert.Equal(t, tc.wantMsg, resp.Message)
			if tc.wantCode == 200 {
				assert.NotEmpty(t, resp.Token)
			}
			err = s.db.Exec("TRUNCATE TABLE `users`").Error
			require.NoError(t, err)
		})
	}
}

func (s *HandlerTestSuite) TestProfile() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.db.WithContext(ctx).Create(&dao.User{
		Id:       uid,
		Name:     "Tom",
		Email:    "tom@college.edu",
		Password: "hashed",
		Branch:   "CSE",
		Year:     2,
		Semester: 3,
		Role:     "student",
		Bio:      "hello",
	}).Error
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ProfileResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp, err := recorder.Scan()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), web.User{
		Id:       uid,
		Name:     "Tom",
		Email:    "tom@college.edu",
		Branch:   "CSE",
		Year:     2,
		Semester: 3,
		Role:     "student",
		Bio:      "hello",
	}, resp.User)
}

func (s *HandlerTestSuite) TestUpdateProfile() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.db.WithContext(ctx).Create(&dao.User{
		Id:       uid,
		Name:     "Tom",
		Email:    "tom@college.edu",
		Password: "hashed",
		Branch:   "CSE",
		Year:     2,
		Role:     "student",
	}).Error
	require.NoError(s.T(), err)

	name := "Tommy"
	bio := "final year"
	req, err := http.NewRequest(http.MethodPut,
		"/api/auth/profile", iox.NewJSONReader(web.UpdateProfileReq{
			Name: &name,
			Bio:  &bio,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.UpdateProfileResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp, err := recorder.Scan()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Profile updated successfully", resp.Message)
	assert.Equal(s.T(), "Tommy", resp.User.Name)
	assert.Equal(s.T(), "final year", resp.User.Bio)
	// 没传的字段保持原样
	assert.Equal(s.T(), "CSE", resp.User.Branch)
	assert.Equal(s.T(), 2, resp.User.Year)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
