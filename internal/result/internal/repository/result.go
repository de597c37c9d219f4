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

	"github.com/ecodeclub/campus/internal/result/internal/domain"
	"github.com/ecodeclub/campus/internal/result/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type ResultRepository interface {
	CreateBatch(ctx context.Context, rs []domain.Result) ([]domain.Result, error)
	ListByStudent(ctx context.Context,
		studentId int64, semester int, academicYear string) ([]domain.Result, error)
}

type resultRepository struct {
	dao dao.ResultDAO
}

func NewResultRepository(d dao.ResultDAO) ResultRepository {
	return &resultRepository{dao: d}
}

func (r *resultRepository) CreateBatch(ctx context.Context,
	rs []domain.Result) ([]domain.Result, error) {
	entities := slice.Map(rs, func(idx int, src domain.Result) dao.Result {
		return r.toEntity(src)
	})
	created, err := r.dao.BatchInsert(ctx, entities)
	if err != nil {
		return nil, err
	}
	return slice.Map(created, func(idx int, src dao.Result) domain.Result {
		return r.toDomain(src)
	}), nil
}

func (r *resultRepository) ListByStudent(ctx context.Context,
	studentId int64, semester int, academicYear string) ([]domain.Result, error) {
	res, err := r.dao.ListByStudent(ctx, studentId, semester, academicYear)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Result) domain.Result {
		return r.toDomain(src)
	}), nil
}

func (r *resultRepository) toEntity(res domain.Result) dao.Result {
	return dao.Result{
		Id:           res.Id,
		StudentId:    res.StudentId,
		Semester:     res.Semester,
		Subject:      res.Subject,
		Marks:        res.Marks,
		Grade:        res.Grade,
		Credits:      res.Credits,
		AcademicYear: res.AcademicYear,
	}
}

func (r *resultRepository) toDomain(res dao.Result) domain.Result {
	return domain.Result{
		Id:           res.Id,
		StudentId:    res.StudentId,
		Semester:     res.Semester,
		Subject:      res.Subject,
		Marks:        res.Marks,
		Grade:        res.Grade,
		Credits:      res.Credits,
		AcademicYear: res.AcademicYear,
		Ctime:        res.Ctime,
		Utime:        res.Utime,
	}
}
