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

import (
	"strings"
	"testing"

	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUnmarshalKey(t *testing.T) {
	raw := `
mysql:
  dsn: "root:root@tcp(localhost:13316)/campus"

token:
  key: "campus-test-key"

b2:
  accountId: "acct-1"
  applicationKey: "app-key-1"
  bucket: "campus"
`
	require.NoError(t, econf.LoadFromReader(strings.NewReader(raw), yaml.Unmarshal))

	var db DBConfig
	require.NoError(t, econf.UnmarshalKey("mysql", &db))
	assert.Equal(t, "root:root@tcp(localhost:13316)/campus", db.DSN)

	var token TokenConfig
	require.NoError(t, econf.UnmarshalKey("token", &token))
	assert.Equal(t, "campus-test-key", token.Key)

	var b2 B2Config
	require.NoError(t, econf.UnmarshalKey("b2", &b2))
	assert.Equal(t, B2Config{
		AccountId:      "acct-1",
		ApplicationKey: "app-key-1",
		Bucket:         "campus",
	}, b2)
}
