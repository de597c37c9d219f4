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
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		size        int64
		contentType string
		wantErr     error
	}{
		{
			name:        "PNG 图片",
			size:        1024,
			contentType: "image/png",
		},
		{
			name:        "JPEG 图片",
			size:        1024,
			contentType: "image/jpeg",
		},
		{
			name:        "PDF",
			size:        1024,
			contentType: "application/pdf",
		},
		{
			name:        "刚好 10MB",
			size:        MaxFileSize,
			contentType: "application/pdf",
		},
		{
			name:        "超过 10MB",
			size:        MaxFileSize + 1,
			contentType: "application/pdf",
			wantErr:     ErrFileTooLarge,
		},
		{
			name:        "压缩包",
			size:        1024,
			contentType: "application/zip",
			wantErr:     ErrInvalidFileType,
		},
		{
			name:        "没有 Content-Type",
			size:        1024,
			contentType: "",
			wantErr:     ErrInvalidFileType,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			header := make(textproto.MIMEHeader)
			if tc.contentType != "" {
				header.Set("Content-Type", tc.contentType)
			}
			fh := &multipart.FileHeader{
				Filename: "notes.bin",
				Size:     tc.size,
				Header:   header,
			}
			assert.ErrorIs(t, Validate(fh), tc.wantErr)
		})
	}
}
