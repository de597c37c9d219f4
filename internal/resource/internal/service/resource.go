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
	"github.com/ecodeclub/campus/internal/resource/internal/domain"
	"github.com/ecodeclub/campus/internal/resource/internal/event"
	"github.com/ecodeclub/campus/internal/resource/internal/repository"
	"github.com/ecodeclub/campus/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrResourceNotFound = repository.ErrResourceNotFound
	ErrPermissionDenied = errors.New("没有操作该资料的权限")
)

//go:generate mockgen -source=./resource.go -destination=../../mocks/resource.mock.go -package=resourcemocks -typed=true ResourceService
type ResourceService interface {
	// Upload 先把文件传到对象存储，拿到 URL 之后再落库
	Upload(ctx context.Context, res domain.Resource, file io.Reader, filename string) (domain.Resource, error)
	List(ctx context.Context, q domain.Query) ([]domain.Resource, error)
	Detail(ctx context.Context, id int64) (domain.Resource, error)
	Like(ctx context.Context, id int64) (domain.Resource, error)
	Dislike(ctx context.Context, id int64) (domain.Resource, error)
	// Delete 只有上传者本人和管理员可以删
	Delete(ctx context.Context, id, uid int64) error
}

type resourceService struct {
	repo     repository.ResourceRepository
	store    objstore.Uploader
	userSvc  user.UserService
	producer event.SyncEventProducer
	logger   *elog.Component
}

func NewResourceService(repo repository.ResourceRepository,
	store objstore.Uploader,
	userSvc user.UserService,
	producer event.SyncEventProducer) ResourceService {
	return &resourceService{
		repo:     repo,
		store:    store,
		userSvc:  userSvc,
		producer: producer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("ResourceService")),
	}
}

func (s *resourceService) Upload(ctx context.Context,
	res domain.Resource, file io.Reader, filename string) (domain.Resource, error) {
	key := fmt.Sprintf("college_portal/resources/%s_%s", shortuuid.New(), filename)
	url, err := s.store.Upload(ctx, key, file)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("上传对象存储失败: %w", err)
	}
	res.FileURL = url
	id, err := s.repo.Create(ctx, res)
	if err != nil {
		return domain.Resource{}, err
	}
	created, err := s.Detail(ctx, id)
	if err != nil {
		return domain.Resource{}, err
	}
	// 同步消息只是尽力而为，失败不影响主流程
	evt := event.ResourceEvent{
		Id:       created.Id,
		Title:    created.Title,
		Branch:   created.Branch,
		Semester: created.Semester,
		Subject:  created.Subject,
		Uid:      created.Uploader.Id,
	}
	if err = s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送资料同步消息失败",
			elog.Int64("rid", created.Id), elog.FieldErr(err))
	}
	return created, nil
}

func (s *resourceService) List(ctx context.Context, q domain.Query) ([]domain.Resource, error) {
	res, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return s.attachUploaders(ctx, res)
}

func (s *resourceService) Detail(ctx context.Context, id int64) (domain.Resource, error) {
	res, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrResourceNotFound) {
		return domain.Resource{}, ErrResourceNotFound
	}
	if err != nil {
		return domain.Resource{}, err
	}
	list, err := s.attachUploaders(ctx, []domain.Resource{res})
	if err != nil {
		return domain.Resource{}, err
	}
	return list[0], nil
}

func (s *resourceService) Like(ctx context.Context, id int64) (domain.Resource, error) {
	if err := s.repo.IncrLike(ctx, id); err != nil {
		return domain.Resource{}, err
	}
	return s.Detail(ctx, id)
}

func (s *resourceService) Dislike(ctx context.Context, id int64) (domain.Resource, error) {
	if err := s.repo.IncrDislike(ctx, id); err != nil {
		return domain.Resource{}, err
	}
	return s.Detail(ctx, id)
}

func (s *resourceService) Delete(ctx context.Context, id, uid int64) error {
	res, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrResourceNotFound) {
		return ErrResourceNotFound
	}
	if err != nil {
		return err
	}
	if res.Uploader.Id != uid {
		operator, err := s.userSvc.Profile(ctx, uid)
		if err != nil {
			return err
		}
		if operator.Role != user.RoleAdmin {
			return ErrPermissionDenied
		}
	}
	return s.repo.Delete(ctx, id)
}

// attachUploaders 批量把 uploader id 解析成 {id, name, avatar} 摘要
func (s *resourceService) attachUploaders(ctx context.Context,
	res []domain.Resource) ([]domain.Resource, error) {
	if len(res) == 0 {
		return res, nil
	}
	uids := slice.Map(res, func(idx int, src domain.Resource) int64 {
		return src.Uploader.Id
	})
	users, err := s.userSvc.FindByIds(ctx, uids)
	if err != nil {
		return nil, err
	}
	uploaders := make(map[int64]domain.Uploader, len(users))
	for _, u := range users {
		uploaders[u.Id] = domain.Uploader{
			Id:     u.Id,
			Name:   u.Name,
			Avatar: u.Avatar,
		}
	}
	for i := range res {
		if up, ok := uploaders[res[i].Uploader.Id]; ok {
			res[i].Uploader = up
		}
	}
	return res, nil
}
