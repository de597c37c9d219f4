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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrDeskDuplicate 并发的懒创建撞到了 user_id 唯一索引
	ErrDeskDuplicate = errors.New("工作台已经存在")
)

type DeskDAO interface {
	FindByUid(ctx context.Context, uid int64) (Desk, error)
	Insert(ctx context.Context, d Desk) (int64, error)
	// Update 只更新 fields 里出现的列
	Update(ctx context.Context, uid int64, fields map[string]any) error
}

type GORMDeskDAO struct {
	db *egorm.Component
}

func NewGORMDeskDAO(db *egorm.Component) DeskDAO {
	return &GORMDeskDAO{db: db}
}

func (dao *GORMDeskDAO) FindByUid(ctx context.Context, uid int64) (Desk, error) {
	var d Desk
	err := dao.db.WithContext(ctx).First(&d, "uid = ?", uid).Error
	return d, err
}

func (dao *GORMDeskDAO) Insert(ctx context.Context, d Desk) (int64, error) {
	now := time.Now().UnixMilli()
	d.Ctime = now
	d.Utime = now
	err := dao.db.WithContext(ctx).Create(&d).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDeskDuplicate
		}
	}
	return d.Id, err
}

func (dao *GORMDeskDAO) Update(ctx context.Context, uid int64, fields map[string]any) error {
	fields["utime"] = time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Model(&Desk{}).
		Where("uid = ?", uid).Updates(fields).Error
}

type Desk struct {
	Id      int64                           `gorm:"primaryKey,autoIncrement"`
	Uid     int64                           `gorm:"not null;uniqueIndex"`
	Folders sqlx.JsonColumn[[]any]          `gorm:"type:json"`
	Files   sqlx.JsonColumn[[]any]          `gorm:"type:json"`
	Layout  sqlx.JsonColumn[map[string]any] `gorm:"type:json"`
	Ctime   int64
	Utime   int64
}

func (Desk) TableName() string {
	return "desks"
}
