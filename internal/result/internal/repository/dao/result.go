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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type ResultDAO interface {
	// BatchInsert 一次录入一批成绩，返回带 id 的记录
	BatchInsert(ctx context.Context, rs []Result) ([]Result, error)
	ListByStudent(ctx context.Context,
		studentId int64, semester int, academicYear string) ([]Result, error)
}

type GORMResultDAO struct {
	db *egorm.Component
}

func NewGORMResultDAO(db *egorm.Component) ResultDAO {
	return &GORMResultDAO{db: db}
}

func (dao *GORMResultDAO) BatchInsert(ctx context.Context, rs []Result) ([]Result, error) {
	now := time.Now().UnixMilli()
	for i := range rs {
		rs[i].Ctime = now
		rs[i].Utime = now
	}
	err := dao.db.WithContext(ctx).Create(&rs).Error
	return rs, err
}

func (dao *GORMResultDAO) ListByStudent(ctx context.Context,
	studentId int64, semester int, academicYear string) ([]Result, error) {
	db := dao.db.WithContext(ctx).Model(&Result{}).Where("student_id = ?", studentId)
	if semester > 0 {
		db = db.Where("semester = ?", semester)
	}
	if academicYear != "" {
		db = db.Where("academic_year = ?", academicYear)
	}
	var res []Result
	err := db.Order("semester ASC, subject ASC").Find(&res).Error
	return res, err
}

type Result struct {
	Id           int64   `gorm:"primaryKey,autoIncrement"`
	StudentId    int64   `gorm:"not null;index:idx_student_semester,priority:1"`
	Semester     int     `gorm:"not null;index:idx_student_semester,priority:2"`
	Subject      string  `gorm:"type:varchar(128);not null"`
	Marks        float64 `gorm:"type:decimal(5,2);not null"`
	Grade        string  `gorm:"type:varchar(4);not null"`
	Credits      int     `gorm:"not null;default:3"`
	AcademicYear string  `gorm:"type:varchar(32);not null"`
	Ctime        int64
	Utime        int64
}

func (Result) TableName() string {
	return "results"
}
