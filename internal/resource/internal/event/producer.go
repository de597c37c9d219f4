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

package event

import (
	"context"

	"github.com/ecodeclub/campus/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const SyncTopic = "resource_sync_events"

// ResourceEvent 资料上传成功之后发出去，给搜索之类的下游消费
type ResourceEvent struct {
	Id       int64  `json:"id"`
	Title    string `json:"title"`
	Branch   string `json:"branch"`
	Semester int    `json:"semester"`
	Subject  string `json:"subject"`
	Uid      int64  `json:"uid"`
}

type SyncEventProducer interface {
	Produce(ctx context.Context, evt ResourceEvent) error
}

func NewSyncEventProducer(q mq.MQ) (SyncEventProducer, error) {
	return mqx.NewGeneralProducer[ResourceEvent](q, SyncTopic)
}
