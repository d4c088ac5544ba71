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

package cache

import (
	"testing"
	"time"

	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC)
	val := domain.Summary{
		TotalItems: 3,
		DateRange:  "2024-06-01 - 2024-06-10",
	}
	data, err := marshalEnvelope(val, now, 5*time.Minute)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		readAt  time.Time
		wantErr error
	}{
		{
			name:   "刚写入就读",
			readAt: now,
		},
		{
			name:   "临过期一毫秒",
			readAt: now.Add(5*time.Minute - time.Millisecond),
		},
		{
			name:    "恰好到过期点视为不存在",
			readAt:  now.Add(5 * time.Minute),
			wantErr: ErrKeyNotFound,
		},
		{
			name:    "过期之后视为不存在",
			readAt:  now.Add(time.Hour),
			wantErr: ErrKeyNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var res domain.Summary
			err := unmarshalEnvelope(data, tc.readAt, &res)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, val, res)
		})
	}
}

func TestEnvelope_Malformed(t *testing.T) {
	t.Parallel()
	var res domain.Summary
	err := unmarshalEnvelope("not a json", time.Now(), &res)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}
