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

package objstore

import (
	"context"
	"fmt"
	"io"

	"github.com/kurin/blazer/b2"
)

// Uploader 对象存储的上传抽象，方便在测试里面用内存实现替换掉
//
//go:generate mockgen -source=./b2.go -package=objstoremocks -destination=mocks/objstore.mock.go Uploader
type Uploader interface {
	// Upload 上传对象并返回外部可访问的 URL
	Upload(ctx context.Context, key string, r io.Reader) (string, error)
}

type B2Storage struct {
	bucket *b2.Bucket
}

func NewB2Storage(ctx context.Context, accountID, appKey, bucketName string) (*B2Storage, error) {
	client, err := b2.NewClient(ctx, accountID, appKey)
	if err != nil {
		return nil, fmt.Errorf("创建 b2 客户端失败: %w", err)
	}
	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("获取 bucket 失败: %w", err)
	}
	return &B2Storage{bucket: bucket}, nil
}

func (s *B2Storage) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
	obj := s.bucket.Object(key)
	w := obj.NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		return "", fmt.Errorf("写入对象失败: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("关闭 writer 失败: %w", err)
	}
	return downloadURL(s.bucket.BaseURL(), s.bucket.Name(), key), nil
}

// downloadURL 拼出 b2 friendly URL 形式的下载地址
func downloadURL(baseURL, bucket, key string) string {
	return fmt.Sprintf("%s/file/%s/%s", baseURL, bucket, key)
}
