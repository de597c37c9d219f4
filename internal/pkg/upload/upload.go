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

package upload

import (
	"errors"
	"mime/multipart"
	"strings"
)

// MaxFileSize 上传文件大小上限
const MaxFileSize = 10 << 20

var (
	ErrFileTooLarge    = errors.New("文件超过大小限制")
	ErrInvalidFileType = errors.New("不支持的文件类型")
)

// Validate 在任何存储和数据库操作之前校验上传文件。
// 只接受图片和 PDF，大小不超过 10MB。
func Validate(fh *multipart.FileHeader) error {
	if fh.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	contentType := fh.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "image/") ||
		contentType == "application/pdf" {
		return nil
	}
	return ErrInvalidFileType
}
