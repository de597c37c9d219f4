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

package domain

const (
	StatusPlanning   = "planning"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusOnHold     = "on-hold"
)

// UserSummary 创建者和上传者的摘要信息
type UserSummary struct {
	Id     int64
	Name   string
	Avatar string
}

// Member 项目详情里展开的成员信息
type Member struct {
	Id     int64
	Name   string
	Avatar string
	Branch string
	Year   int
}

type Project struct {
	Id          int64
	Title       string
	Description string
	Creator     UserSummary
	// Members 成员 uid 列表，创建者永远在首位
	Members []int64
	// MemberDetails 只在详情里填充
	MemberDetails []Member
	Status        string
	StartDate     string
	EndDate       string
	Tags          []string
	// Resources 只在详情里填充
	Resources []Resource
	Ctime     int64
	Utime     int64
}

func (p Project) IsMember(uid int64) bool {
	for _, m := range p.Members {
		if m == uid {
			return true
		}
	}
	return false
}

// ProjectUpdate 部分更新，nil 字段表示没传，不动
type ProjectUpdate struct {
	Title       *string
	Description *string
	Status      *string
	StartDate   *string
	EndDate     *string
	Tags        *[]string
}

// Resource 项目内部共享的资料，文件可以没有
type Resource struct {
	Id          int64
	ProjectId   int64
	Title       string
	Description string
	FileURL     string
	FileType    string
	Uploader    UserSummary
	Ctime       int64
	Utime       int64
}
