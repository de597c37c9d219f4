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

// Desk 每个用户一行的自由工作台。
// folders/files/layout 都是前端自己定义的 JSON，后端不解释内容
type Desk struct {
	Id      int64
	Uid     int64
	Folders []any
	Files   []any
	Layout  map[string]any
	Ctime   int64
	Utime   int64
}

// NewDesk 第一次访问时创建的空工作台
func NewDesk(uid int64) Desk {
	return Desk{
		Uid:     uid,
		Folders: []any{},
		Files:   []any{},
		Layout:  map[string]any{},
	}
}

// DeskUpdate nil 字段不动，非 nil 字段整体替换，不做字段内合并
type DeskUpdate struct {
	Folders *[]any
	Files   *[]any
	Layout  *map[string]any
}
