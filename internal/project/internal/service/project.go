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

package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ecodeclub/campus/internal/pkg/objstore"
	"github.com/ecodeclub/campus/internal/project/internal/domain"
	"github.com/ecodeclub/campus/internal/project/internal/repository"
	"github.com/ecodeclub/campus/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProjectNotFound  = repository.ErrProjectNotFound
	ErrPermissionDenied = errors.New("没有操作该项目的权限")
	ErrUserNotFound     = user.ErrUserNotFound
	ErrAlreadyMember    = errors.New("已经是项目成员")
)

//go:generate mockgen -source=./project.go -destination=../../mocks/project.mock.go -package=projectmocks -typed=true ProjectService
type ProjectService interface {
	Create(ctx context.Context, p domain.Project) (domain.Project, error)
	List(ctx context.Context, status, search string) ([]domain.Project, error)
	// Detail 会把成员 uid 展开成完整摘要，并带上项目内的资料
	Detail(ctx context.Context, id int64) (domain.Project, error)
	// Update 创建者和成员都可以改
	Update(ctx context.Context, id, uid int64, upd domain.ProjectUpdate) (domain.Project, error)
	// AddMember 只有创建者可以加人
	AddMember(ctx context.Context, id, uid, targetUid int64) (domain.Project, error)
	// UploadResource 只有成员可以传，文件可以没有
	UploadResource(ctx context.Context, uid int64,
		res domain.Resource, file io.Reader, filename string) (domain.Resource, error)
}

type projectService struct {
	repo    repository.ProjectRepository
	store   objstore.Uploader
	userSvc user.UserService
}

func NewProjectService(repo repository.ProjectRepository,
	store objstore.Uploader,
	userSvc user.UserService) ProjectService {
	return &projectService{
		repo:    repo,
		store:   store,
		userSvc: userSvc,
	}
}

func (s *projectService) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	// 创建者自动成为第一个成员
	p.Members = []int64{p.Creator.Id}
	if p.Status == "" {
		p.Status = domain.StatusPlanning
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Project{}, err
	}
	created, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	return s.attachCreator(ctx, created)
}

func (s *projectService) List(ctx context.Context, status, search string) ([]domain.Project, error) {
	res, err := s.repo.List(ctx, status, search)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return res, nil
	}
	uids := slice.Map(res, func(idx int, src domain.Project) int64 {
		return src.Creator.Id
	})
	creators, err := s.summaries(ctx, uids)
	if err != nil {
		return nil, err
	}
	for i := range res {
		if c, ok := creators[res[i].Creator.Id]; ok {
			res[i].Creator = c
		}
	}
	return res, nil
}

func (s *projectService) Detail(ctx context.Context, id int64) (domain.Project, error) {
	p, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return domain.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}
	var eg errgroup.Group
	var members []user.User
	var resources []domain.Resource
	eg.Go(func() error {
		var eerr error
		members, eerr = s.userSvc.FindByIds(ctx, append(p.Members, p.Creator.Id))
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		resources, eerr = s.repo.ResourcesByProject(ctx, id)
		if eerr != nil {
			return eerr
		}
		resources, eerr = s.attachUploaders(ctx, resources)
		return eerr
	})
	if err = eg.Wait(); err != nil {
		return domain.Project{}, err
	}
	byId := make(map[int64]user.User, len(members))
	for _, m := range members {
		byId[m.Id] = m
	}
	if c, ok := byId[p.Creator.Id]; ok {
		p.Creator = domain.UserSummary{Id: c.Id, Name: c.Name, Avatar: c.Avatar}
	}
	// 按成员列表的顺序展开
	p.MemberDetails = make([]domain.Member, 0, len(p.Members))
	for _, uid := range p.Members {
		if m, ok := byId[uid]; ok {
			p.MemberDetails = append(p.MemberDetails, domain.Member{
				Id:     m.Id,
				Name:   m.Name,
				Avatar: m.Avatar,
				Branch: m.Branch,
				Year:   m.Year,
			})
		}
	}
	p.Resources = resources
	return p, nil
}

func (s *projectService) Update(ctx context.Context,
	id, uid int64, upd domain.ProjectUpdate) (domain.Project, error) {
	p, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return domain.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}
	if p.Creator.Id != uid && !p.IsMember(uid) {
		return domain.Project{}, ErrPermissionDenied
	}
	if err = s.repo.Update(ctx, id, upd); err != nil {
		return domain.Project{}, err
	}
	updated, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	return s.attachCreator(ctx, updated)
}

func (s *projectService) AddMember(ctx context.Context,
	id, uid, targetUid int64) (domain.Project, error) {
	p, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return domain.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}
	if p.Creator.Id != uid {
		return domain.Project{}, ErrPermissionDenied
	}
	if _, err = s.userSvc.Profile(ctx, targetUid); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return domain.Project{}, ErrUserNotFound
		}
		return domain.Project{}, err
	}
	if p.IsMember(targetUid) {
		return domain.Project{}, ErrAlreadyMember
	}
	// 读改写，没有乐观锁，两个并发加人可能丢一个
	if err = s.repo.UpdateMembers(ctx, id, append(p.Members, targetUid)); err != nil {
		return domain.Project{}, err
	}
	updated, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	return s.attachCreator(ctx, updated)
}

func (s *projectService) UploadResource(ctx context.Context, uid int64,
	res domain.Resource, file io.Reader, filename string) (domain.Resource, error) {
	p, err := s.repo.FindById(ctx, res.ProjectId)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return domain.Resource{}, ErrProjectNotFound
	}
	if err != nil {
		return domain.Resource{}, err
	}
	if !p.IsMember(uid) {
		return domain.Resource{}, ErrPermissionDenied
	}
	res.Uploader = domain.UserSummary{Id: uid}
	if file != nil {
		key := fmt.Sprintf("college_portal/projects/%d/%s_%s",
			p.Id, shortuuid.New(), filename)
		url, uerr := s.store.Upload(ctx, key, file)
		if uerr != nil {
			return domain.Resource{}, fmt.Errorf("上传对象存储失败: %w", uerr)
		}
		res.FileURL = url
	}
	id, err := s.repo.CreateResource(ctx, res)
	if err != nil {
		return domain.Resource{}, err
	}
	created, err := s.repo.FindResourceById(ctx, id)
	if err != nil {
		return domain.Resource{}, err
	}
	list, err := s.attachUploaders(ctx, []domain.Resource{created})
	if err != nil {
		return domain.Resource{}, err
	}
	return list[0], nil
}

func (s *projectService) attachCreator(ctx context.Context, p domain.Project) (domain.Project, error) {
	creators, err := s.summaries(ctx, []int64{p.Creator.Id})
	if err != nil {
		return domain.Project{}, err
	}
	if c, ok := creators[p.Creator.Id]; ok {
		p.Creator = c
	}
	return p, nil
}

func (s *projectService) attachUploaders(ctx context.Context,
	res []domain.Resource) ([]domain.Resource, error) {
	if len(res) == 0 {
		return res, nil
	}
	uids := slice.Map(res, func(idx int, src domain.Resource) int64 {
		return src.Uploader.Id
	})
	uploaders, err := s.summaries(ctx, uids)
	if err != nil {
		return nil, err
	}
	for i := range res {
		if up, ok := uploaders[res[i].Uploader.Id]; ok {
			res[i].Uploader = up
		}
	}
	return res, nil
}

func (s *projectService) summaries(ctx context.Context, uids []int64) (map[int64]domain.UserSummary, error) {
	users, err := s.userSvc.FindByIds(ctx, uids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.UserSummary, len(users))
	for _, u := range users {
		res[u.Id] = domain.UserSummary{Id: u.Id, Name: u.Name, Avatar: u.Avatar}
	}
	return res, nil
}
