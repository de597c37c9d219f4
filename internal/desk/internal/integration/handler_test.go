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
	"net/http"
	"testing"

	"github.com/ecodeclub/campus/internal/desk/internal/integration/startup"
	"github.com/ecodeclub/campus/internal/desk/internal/repository/dao"
	"github.com/ecodeclub/campus/internal/desk/internal/web"
	"github.com/ecodeclub/campus/internal/pkg/ectx"
	"github.com/ecodeclub/campus/internal/test"
	testioc "github.com/ecodeclub/campus/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2051)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.DeskDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ectx.CtxWithUid(ctx, uid)
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMDeskDAO(s.db)
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `desks`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `desks`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) getDesk(t *testing.T) web.DeskResp {
	req, err := http.NewRequest(http.MethodGet, "/api/desk", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.DeskResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp, err := recorder.Scan()
	require.NoError(t, err)
	return resp
}

func (s *HandlerTestSuite) TestDesk() {
	// 第一次访问会懒创建一个空工作台
	resp := s.getDesk(s.T())
	assert.Equal(s.T(), uid, resp.Desk.UserId)
	assert.Equal(s.T(), []any{}, resp.Desk.Folders)
	assert.Equal(s.T(), []any{}, resp.Desk.Files)
	assert.Equal(s.T(), map[string]any{}, resp.Desk.Layout)

	// 第二次访问拿到的是同一个
	again := s.getDesk(s.T())
	assert.Equal(s.T(), resp.Desk.Id, again.Desk.Id)
}

func (s *HandlerTestSuite) TestUpdate() {
	folders := []any{map[string]any{"name": "Sem 3", "color": "blue"}}
	layout := map[string]any{"theme": "dark"}

	// 工作台还不存在时直接更新也能创建出来
	req, err := http.NewRequest(http.MethodPut,
		"/api/desk", iox.NewJSONReader(web.UpdateReq{
			Folders: &folders,
			Layout:  &layout,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.DeskResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp, err := recorder.Scan()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Desk updated successfully", resp.Message)
	assert.Equal(s.T(), folders, resp.Desk.Folders)
	assert.Equal(s.T(), layout, resp.Desk.Layout)
	assert.Equal(s.T(), []any{}, resp.Desk.Files)

	// 部分更新不会动其他字段
	files := []any{map[string]any{"name": "notes.pdf"}}
	req, err = http.NewRequest(http.MethodPut,
		"/api/desk", iox.NewJSONReader(web.UpdateReq{
			Files: &files,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[web.DeskResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp, err = recorder.Scan()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), files, resp.Desk.Files)
	assert.Equal(s.T(), folders, resp.Desk.Folders)
	assert.Equal(s.T(), layout, resp.Desk.Layout)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
