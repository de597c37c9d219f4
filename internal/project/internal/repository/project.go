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

	"github.com/ecodeclub/campus/internal/project/internal/domain"
	"github.com/ecodeclub/campus/internal/project/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

var ErrProjectNotFound = dao.ErrDataNotFound

type ProjectRepository interface {
	Create(ctx context.Context, p domain.Project) (int64, error)
	List(ctx context.Context, status, search string) ([]domain.Project, error)
	FindById(ctx context.Context, id int64) (domain.Project, error)
	// Update 稀疏更新，只下发 upd 里非 nil 的字段
	Update(ctx context.Context, id int64, upd domain.ProjectUpdate) error
	UpdateMembers(ctx context.Context, id int64, members []int64) error
	CreateResource(ctx context.Context, r domain.Resource) (int64, error)
	FindResourceById(ctx context.Context, id int64) (domain.Resource, error)
	ResourcesByProject(ctx context.Context, pid int64) ([]domain.Resource, error)
}

type projectRepository struct {
	dao dao.ProjectDAO
}

func NewProjectRepository(d dao.ProjectDAO) ProjectRepository {
	return &projectRepository{dao: d}
}

func (r *projectRepository) Create(ctx context.Context, p domain.Project) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(p))
}

func (r *projectRepository) List(ctx context.Context, status, search string) ([]domain.Project, error) {
	res, err := r.dao.List(ctx, status, search)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Project) domain.Project {
		return r.toDomain(src)
	}), nil
}

func (r *projectRepository) FindById(ctx context.Context, id int64) (domain.Project, error) {
	p, err := r.dao.GetById(ctx, id)
	return r.toDomain(p), err
}

func (r *projectRepository) Update(ctx context.Context, id int64, upd domain.ProjectUpdate) error {
	fields := make(map[string]any, 6)
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Status != nil {
		fields["status"] = *upd.Status
	}
	if upd.StartDate != nil {
		fields["start_date"] = *upd.StartDate
	}
	if upd.EndDate != nil {
		fields["end_date"] = *upd.EndDate
	}
	if upd.Tags != nil {
		fields["tags"] = sqlx.JsonColumn[[]string]{Val: *upd.Tags, Valid: true}
	}
	if len(fields) == 0 {
		return nil
	}
	return r.dao.Update(ctx, id, fields)
}

func (r *projectRepository) UpdateMembers(ctx context.Context, id int64, members []int64) error {
	return r.dao.Update(ctx, id, map[string]any{
		"members": sqlx.JsonColumn[[]int64]{Val: members, Valid: true},
	})
}

func (r *projectRepository) CreateResource(ctx context.Context, res domain.Resource) (int64, error) {
	return r.dao.InsertResource(ctx, dao.ProjectResource{
		ProjectId:   res.ProjectId,
		Title:       res.Title,
		Description: res.Description,
		FileURL:     res.FileURL,
		FileType:    res.FileType,
		UploaderId:  res.Uploader.Id,
	})
}

func (r *projectRepository) FindResourceById(ctx context.Context, id int64) (domain.Resource, error) {
	res, err := r.dao.GetResourceById(ctx, id)
	return r.resourceToDomain(res), err
}

func (r *projectRepository) ResourcesByProject(ctx context.Context, pid int64) ([]domain.Resource, error) {
	res, err := r.dao.ResourcesByProject(ctx, pid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.ProjectResource) domain.Resource {
		return r.resourceToDomain(src)
	}), nil
}

func (r *projectRepository) toEntity(p domain.Project) dao.Project {
	return dao.Project{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		CreatorId:   p.Creator.Id,
		Members:     sqlx.JsonColumn[[]int64]{Val: p.Members, Valid: true},
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Tags:        sqlx.JsonColumn[[]string]{Val: p.Tags, Valid: true},
	}
}

func (r *projectRepository) toDomain(p dao.Project) domain.Project {
	return domain.Project{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Creator:     domain.UserSummary{Id: p.CreatorId},
		Members:     p.Members.Val,
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Tags:        p.Tags.Val,
		Ctime:       p.Ctime,
		Utime:       p.Utime,
	}
}

func (r *projectRepository) resourceToDomain(res dao.ProjectResource) domain.Resource {
	return domain.Resource{
		Id:          res.Id,
		ProjectId:   res.ProjectId,
		Title:       res.Title,
		Description: res.Description,
		FileURL:     res.FileURL,
		FileType:    res.FileType,
		Uploader:    domain.UserSummary{Id: res.UploaderId},
		Ctime:       res.Ctime,
		Utime:       res.Utime,
	}
}
