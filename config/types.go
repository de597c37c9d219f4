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

package config

// DBConfig 对应配置里的 mysql 段
type DBConfig struct {
	DSN string `yaml:"dsn"`
}

// TokenConfig 对应配置里的 token 段
type TokenConfig struct {
	Key string `yaml:"key"`
}

// B2Config 对应配置里的 b2 段
type B2Config struct {
	AccountId      string `yaml:"accountId"`
	ApplicationKey string `yaml:"applicationKey"`
	Bucket         string `yaml:"bucket"`
}
