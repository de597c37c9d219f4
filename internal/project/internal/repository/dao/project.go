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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type ProjectDAO interface {
	Insert(ctx context.Context, p Project) (int64, error)
	List(ctx context.Context, status, search string) ([]Project, error)
	GetById(ctx context.Context, id int64) (Project, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	InsertResource(ctx context.Context, r ProjectResource) (int64, error)
	GetResourceById(ctx context.Context, id int64) (ProjectResource, error)
	ResourcesByProject(ctx context.Context, pid int64) ([]ProjectResource, error)
}

type GORMProjectDAO struct {
	db *egorm.Component
}

func NewGORMProjectDAO(db *egorm.Component) ProjectDAO {
	return &GORMProjectDAO{db: db}
}

func (dao *GORMProjectDAO) Insert(ctx context.Context, p Project) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := dao.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (dao *GORMProjectDAO) List(ctx context.Context, status, search string) ([]Project, error) {
	db := dao.db.WithContext(ctx).Model(&Project{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if search != "" {
		pattern := "%" + search + "%"
		db = db.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	var res []Project
	err := db.Order("ctime DESC").Find(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) GetById(ctx context.Context, id int64) (Project, error) {
	var p Project
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (dao *GORMProjectDAO) Update(ctx context.Context, id int64, fields map[string]any) error {
	fields["utime"] = time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Model(&Project{}).
		Where("id = ?", id).Updates(fields).Error
}

func (dao *GORMProjectDAO) InsertResource(ctx context.Context, r ProjectResource) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := dao.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (dao *GORMProjectDAO) GetResourceById(ctx context.Context, id int64) (ProjectResource, error) {
	var r ProjectResource
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (dao *GORMProjectDAO) ResourcesByProject(ctx context.Context, pid int64) ([]ProjectResource, error) {
	var res []ProjectResource
	err := dao.db.WithContext(ctx).
		Where("project_id = ?", pid).
		Order("ctime DESC").Find(&res).Error
	return res, err
}

type Project struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Title       string `gorm:"type:varchar(256);not null"`
	Description string `gorm:"type:text"`
	CreatorId   int64  `gorm:"not null;index"`
	// Members 成员 uid 的 JSON 数组，创建者在首位
	Members sqlx.JsonColumn[[]int64] `gorm:"type:json"`
	Status  string                   `gorm:"type:enum('planning','in-progress','completed','on-hold');default:'planning';index"`
	// 日期直接透传客户端给的字符串
	StartDate string                    `gorm:"type:varchar(64)"`
	EndDate   string                    `gorm:"type:varchar(64)"`
	Tags      sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Ctime     int64
	Utime     int64
}

func (Project) TableName() string {
	return "projects"
}

type ProjectResource struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	ProjectId   int64  `gorm:"not null;index"`
	Title       string `gorm:"type:varchar(256);not null"`
	Description string `gorm:"type:text"`
	FileURL     string `gorm:"type:varchar(512)"`
	FileType    string `gorm:"type:varchar(128)"`
	UploaderId  int64  `gorm:"not null;index"`
	Ctime       int64
	Utime       int64
}

func (ProjectResource) TableName() string {
	return "project_resources"
}
