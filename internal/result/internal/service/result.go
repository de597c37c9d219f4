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

	"github.com/ecodeclub/campus/internal/result/internal/domain"
	"github.com/ecodeclub/campus/internal/result/internal/repository"
	"github.com/ecodeclub/campus/internal/user"
	"github.com/ecodeclub/ekit/slice"
)

var ErrStudentNotFound = errors.New("学生不存在")

//go:generate mockgen -source=./result.go -destination=../../mocks/result.mock.go -package=resultmocks -typed=true ResultService
type ResultService interface {
	// Declare 录入一个学生一个学期的一批成绩，等级在这里算好落库
	Declare(ctx context.Context, studentId int64, semester int,
		academicYear string, entries []domain.Entry) ([]domain.Result, error)
	// Report 查成绩单，semester 和 academicYear 为零值时不过滤
	Report(ctx context.Context, studentId int64,
		semester int, academicYear string) (domain.Report, error)
}

type resultService struct {
	repo    repository.ResultRepository
	userSvc user.UserService
}

func NewResultService(repo repository.ResultRepository,
	userSvc user.UserService) ResultService {
	return &resultService{
		repo:    repo,
		userSvc: userSvc,
	}
}

func (s *resultService) Declare(ctx context.Context, studentId int64, semester int,
	academicYear string, entries []domain.Entry) ([]domain.Result, error) {
	if _, err := s.userSvc.Profile(ctx, studentId); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	rs := slice.Map(entries, func(idx int, src domain.Entry) domain.Result {
		credits := src.Credits
		if credits <= 0 {
			credits = domain.DefaultCredits
		}
		return domain.Result{
			StudentId:    studentId,
			Semester:     semester,
			Subject:      src.Subject,
			Marks:        src.Marks,
			Grade:        domain.GradeOf(src.Marks),
			Credits:      credits,
			AcademicYear: academicYear,
		}
	})
	return s.repo.CreateBatch(ctx, rs)
}

func (s *resultService) Report(ctx context.Context, studentId int64,
	semester int, academicYear string) (domain.Report, error) {
	res, err := s.repo.ListByStudent(ctx, studentId, semester, academicYear)
	if err != nil {
		return domain.Report{}, err
	}
	return domain.NewReport(res), nil
}
