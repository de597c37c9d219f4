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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/campus/config"
	"github.com/ecodeclub/campus/internal/pkg/objstore"
	"github.com/gotomicro/ego/core/econf"
)

func InitStorage() objstore.Uploader {
	var cfg config.B2Config
	err := econf.UnmarshalKey("b2", &cfg)
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	store, err := objstore.NewB2Storage(ctx, cfg.AccountId, cfg.ApplicationKey, cfg.Bucket)
	if err != nil {
		panic(err)
	}
	return store
}
