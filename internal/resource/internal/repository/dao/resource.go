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
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type ResourceDAO interface {
	Insert(ctx context.Context, r Resource) (int64, error)
	List(ctx context.Context, branch string, semester int, subject, search string) ([]Resource, error)
	GetById(ctx context.Context, id int64) (Resource, error)
	IncrLike(ctx context.Context, id int64) error
	IncrDislike(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type GORMResourceDAO struct {
	db *egorm.Component
}

func NewGORMResourceDAO(db *egorm.Component) ResourceDAO {
	return &GORMResourceDAO{db: db}
}

func (dao *GORMResourceDAO) Insert(ctx context.Context, r Resource) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := dao.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (dao *GORMResourceDAO) List(ctx context.Context,
	branch string, semester int, subject, search string) ([]Resource, error) {
	db := dao.db.WithContext(ctx).Model(&Resource{})
	if branch != "" {
		db = db.Where("branch = ?", branch)
	}
	if semester > 0 {
		db = db.Where("semester = ?", semester)
	}
	if subject != "" {
		db = db.Where("subject = ?", subject)
	}
	if search != "" {
		pattern := "%" + search + "%"
		db = db.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	var res []Resource
	err := db.Order("ctime DESC").Find(&res).Error
	return res, err
}

func (dao *GORMResourceDAO) GetById(ctx context.Context, id int64) (Resource, error) {
	var r Resource
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (dao *GORMResourceDAO) IncrLike(ctx context.Context, id int64) error {
	return dao.incrCounter(ctx, id, "likes")
}

func (dao *GORMResourceDAO) IncrDislike(ctx context.Context, id int64) error {
	return dao.incrCounter(ctx, id, "dislikes")
}

// incrCounter 单语句自增，不做去重，也不记录是谁点的
func (dao *GORMResourceDAO) incrCounter(ctx context.Context, id int64, column string) error {
	res := dao.db.WithContext(ctx).Model(&Resource{}).
		Where("id = ?", id).
		Updates(map[string]any{
			column:  gorm.Expr("`"+column+"` + 1"),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (dao *GORMResourceDAO) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Where("id = ?", id).Delete(&Resource{}).Error
}

type Resource struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Title       string `gorm:"type:varchar(256);not null"`
	Description string `gorm:"type:text"`
	Branch      string `gorm:"type:varchar(128);not null;index"`
	Semester    int    `gorm:"not null;index"`
	Subject     string `gorm:"type:varchar(128);not null;index"`
	FileURL     string `gorm:"type:varchar(512);not null"`
	FileType    string `gorm:"type:varchar(128)"`
	UploaderId  int64  `gorm:"not null;index"`
	Likes       int64  `gorm:"not null;default:0"`
	Dislikes    int64  `gorm:"not null;default:0"`
	Ctime       int64
	Utime       int64
}

func (Resource) TableName() string {
	return "resources"
}
