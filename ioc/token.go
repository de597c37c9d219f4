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
	"github.com/ecodeclub/campus/config"
	"github.com/ecodeclub/campus/internal/pkg/token/generator"
	"github.com/ecodeclub/campus/internal/pkg/token/validator"
	"github.com/gotomicro/ego/core/econf"
)

func InitTokenGenerator() generator.TokenGenerator {
	return generator.NewJWTTokenGen("campus", tokenKey())
}

func InitTokenVerifier() validator.Verifier {
	return validator.NewJWTTokenVerifier(tokenKey())
}

func tokenKey() string {
	var cfg config.TokenConfig
	if err := econf.UnmarshalKey("token", &cfg); err != nil {
		panic(err)
	}
	if cfg.Key == "" {
		panic("token.key 没有配置")
	}
	return cfg.Key
}
