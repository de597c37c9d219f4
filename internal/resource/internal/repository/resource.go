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

package repository

import (
	"context"

	"github.com/ecodeclub/campus/internal/resource/internal/domain"
	"github.com/ecodeclub/campus/internal/resource/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrResourceNotFound = dao.ErrDataNotFound

type ResourceRepository interface {
	Create(ctx context.Context, r domain.Resource) (int64, error)
	List(ctx context.Context, q domain.Query) ([]domain.Resource, error)
	FindById(ctx context.Context, id int64) (domain.Resource, error)
	IncrLike(ctx context.Context, id int64) error
	IncrDislike(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type resourceRepository struct {
	dao dao.ResourceDAO
}

func NewResourceRepository(d dao.ResourceDAO) ResourceRepository {
	return &resourceRepository{dao: d}
}

func (r *resourceRepository) Create(ctx context.Context, res domain.Resource) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(res))
}

func (r *resourceRepository) List(ctx context.Context, q domain.Query) ([]domain.Resource, error) {
	res, err := r.dao.List(ctx, q.Branch, q.Semester, q.Subject, q.Search)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Resource) domain.Resource {
		return r.toDomain(src)
	}), nil
}

func (r *resourceRepository) FindById(ctx context.Context, id int64) (domain.Resource, error) {
	res, err := r.dao.GetById(ctx, id)
	return r.toDomain(res), err
}

func (r *resourceRepository) IncrLike(ctx context.Context, id int64) error {
	return r.dao.IncrLike(ctx, id)
}

func (r *resourceRepository) IncrDislike(ctx context.Context, id int64) error {
	return r.dao.IncrDislike(ctx, id)
}

func (r *resourceRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *resourceRepository) toEntity(res domain.Resource) dao.Resource {
	return dao.Resource{
		Id:          res.Id,
		Title:       res.Title,
		Description: res.Description,
		Branch:      res.Branch,
		Semester:    res.Semester,
		Subject:     res.Subject,
		FileURL:     res.FileURL,
		FileType:    res.FileType,
		UploaderId:  res.Uploader.Id,
		Likes:       res.Likes,
		Dislikes:    res.Dislikes,
	}
}

func (r *resourceRepository) toDomain(res dao.Resource) domain.Resource {
	return domain.Resource{
		Id:          res.Id,
		Title:       res.Title,
		Description: res.Description,
		Branch:      res.Branch,
		Semester:    res.Semester,
		Subject:     res.Subject,
		FileURL:     res.FileURL,
		FileType:    res.FileType,
		Uploader:    domain.Uploader{Id: res.UploaderId},
		Likes:       res.Likes,
		Dislikes:    res.Dislikes,
		Ctime:       res.Ctime,
		Utime:       res.Utime,
	}
}
