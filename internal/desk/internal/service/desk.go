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

	"github.com/ecodeclub/campus/internal/desk/internal/domain"
	"github.com/ecodeclub/campus/internal/desk/internal/repository"
)

//go:generate mockgen -source=./desk.go -destination=../../mocks/desk.mock.go -package=deskmocks -typed=true DeskService
type DeskService interface {
	// Desk 第一次访问时懒创建一个空工作台
	Desk(ctx context.Context, uid int64) (domain.Desk, error)
	Update(ctx context.Context, uid int64, upd domain.DeskUpdate) (domain.Desk, error)
}

type deskService struct {
	repo repository.DeskRepository
}

func NewDeskService(repo repository.DeskRepository) DeskService {
	return &deskService{repo: repo}
}

func (s *deskService) Desk(ctx context.Context, uid int64) (domain.Desk, error) {
	d, err := s.repo.FindByUid(ctx, uid)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, repository.ErrDeskNotFound) {
		return domain.Desk{}, err
	}
	return s.create(ctx, domain.NewDesk(uid))
}

func (s *deskService) Update(ctx context.Context,
	uid int64, upd domain.DeskUpdate) (domain.Desk, error) {
	_, err := s.repo.FindByUid(ctx, uid)
	if errors.Is(err, repository.ErrDeskNotFound) {
		d := domain.NewDesk(uid)
		if upd.Folders != nil {
			d.Folders = *upd.Folders
		}
		if upd.Files != nil {
			d.Files = *upd.Files
		}
		if upd.Layout != nil {
			d.Layout = *upd.Layout
		}
		return s.create(ctx, d)
	}
	if err != nil {
		return domain.Desk{}, err
	}
	if err = s.repo.Update(ctx, uid, upd); err != nil {
		return domain.Desk{}, err
	}
	return s.repo.FindByUid(ctx, uid)
}

// create 并发懒创建可能撞唯一索引，撞了就读已有的那行
func (s *deskService) create(ctx context.Context, d domain.Desk) (domain.Desk, error) {
	_, err := s.repo.Create(ctx, d)
	if errors.Is(err, repository.ErrDeskDuplicate) {
		return s.repo.FindByUid(ctx, d.Uid)
	}
	if err != nil {
		return domain.Desk{}, err
	}
	return s.repo.FindByUid(ctx, d.Uid)
}
