// Copyright 2025 The packetd Authors
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

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	opts := NewOptions()
	opts.Merge("concurrency", "4")
	opts.Merge("multistream", "false")
	opts.Merge("broken", "abc")

	assert.Equal(t, 4, opts.GetIntOr("concurrency", 1))
	assert.False(t, opts.GetBoolOr("multistream", true))
	assert.Equal(t, 7, opts.GetIntOr("broken", 7))
	assert.Equal(t, 3, opts.GetIntOr("missing", 3))
	assert.True(t, opts.GetBoolOr("missing", true))

	s, err := opts.GetString("concurrency")
	assert.NoError(t, err)
	assert.Equal(t, "4", s)
}

func TestGetBuildInfo(t *testing.T) {
	bi := GetBuildInfo()
	assert.Equal(t, Version, bi.Version)
	assert.Contains(t, bi.String(), App)
}
