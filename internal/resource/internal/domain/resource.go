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

// Uploader 上传者摘要，不会带上任何敏感字段
type Uploader struct {
	Id     int64
	Name   string
	Avatar string
}

type Resource struct {
	Id          int64
	Title       string
	Description string
	Branch      string
	Semester    int
	Subject     string
	FileURL     string
	FileType    string
	Uploader    Uploader
	Likes       int64
	Dislikes    int64
	Ctime       int64
	Utime       int64
}

// Query 列表查询条件，零值字段不参与过滤
type Query struct {
	Branch   string
	Semester int
	Subject  string
	// Search 对标题和描述做子串匹配
	Search string
}
