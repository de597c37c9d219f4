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

	"github.com/ecodeclub/campus/internal/desk/internal/domain"
	"github.com/ecodeclub/campus/internal/desk/internal/repository/dao"
	"github.com/ecodeclub/ekit/sqlx"
)

var (
	ErrDeskNotFound  = dao.ErrDataNotFound
	ErrDeskDuplicate = dao.ErrDeskDuplicate
)

type DeskRepository interface {
	FindByUid(ctx context.Context, uid int64) (domain.Desk, error)
	Create(ctx context.Context, d domain.Desk) (int64, error)
	// Update 稀疏更新，nil 字段不下发
	Update(ctx context.Context, uid int64, upd domain.DeskUpdate) error
}

type deskRepository struct {
	dao dao.DeskDAO
}

func NewDeskRepository(d dao.DeskDAO) DeskRepository {
	return &deskRepository{dao: d}
}

func (r *deskRepository) FindByUid(ctx context.Context, uid int64) (domain.Desk, error) {
	d, err := r.dao.FindByUid(ctx, uid)
	return r.toDomain(d), err
}

func (r *deskRepository) Create(ctx context.Context, d domain.Desk) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(d))
}

func (r *deskRepository) Update(ctx context.Context, uid int64, upd domain.DeskUpdate) error {
	fields := make(map[string]any, 3)
	if upd.Folders != nil {
		fields["folders"] = sqlx.JsonColumn[[]any]{Val: *upd.Folders, Valid: true}
	}
	if upd.Files != nil {
		fields["files"] = sqlx.JsonColumn[[]any]{Val: *upd.Files, Valid: true}
	}
	if upd.Layout != nil {
		fields["layout"] = sqlx.JsonColumn[map[string]any]{Val: *upd.Layout, Valid: true}
	}
	if len(fields) == 0 {
		return nil
	}
	return r.dao.Update(ctx, uid, fields)
}

func (r *deskRepository) toEntity(d domain.Desk) dao.Desk {
	return dao.Desk{
		Id:      d.Id,
		Uid:     d.Uid,
		Folders: sqlx.JsonColumn[[]any]{Val: d.Folders, Valid: true},
		Files:   sqlx.JsonColumn[[]any]{Val: d.Files, Valid: true},
		Layout:  sqlx.JsonColumn[map[string]any]{Val: d.Layout, Valid: true},
	}
}

func (r *deskRepository) toDomain(d dao.Desk) domain.Desk {
	return domain.Desk{
		Id:      d.Id,
		Uid:     d.Uid,
		Folders: d.Folders.Val,
		Files:   d.Files.Val,
		Layout:  d.Layout.Val,
		Ctime:   d.Ctime,
		Utime:   d.Utime,
	}
}
