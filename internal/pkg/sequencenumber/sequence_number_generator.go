// Copyright 2024 picklebay
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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// TimestampGenerateFunc produces the millisecond timestamp prefix.
type TimestampGenerateFunc func(time.Time) int64

// ShortUUIDGenerateFunc produces the random suffix.
type ShortUUIDGenerateFunc func() string

// Generator builds order codes. The decimal millisecond prefix keeps codes
// sortable by creation time, the shortuuid suffix keeps them unique.
type Generator struct {
	timestampGenFunc TimestampGenerateFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

func NewGeneratorWith(timestampGen TimestampGenerateFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		timestampGenFunc: timestampGen,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(func(t time.Time) int64 { return t.UnixMilli() }, func() string { return shortuuid.New() })
}

// Generate returns a 32 character order code.
func (s *Generator) Generate() (string, error) {
	timestamp := s.timestampGenFunc(time.Now())
	uuid := s.shortUUIDGenFunc()
	return fmt.Sprintf("%d%s", timestamp, uuid)[:32], nil
}
