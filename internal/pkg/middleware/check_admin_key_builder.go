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

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const adminKeyHeader = "X-Admin-Key"

// CheckAdminKeyBuilder guards the admin server with a shared secret header.
// The comparison is constant-time so the key cannot be probed byte by byte.
type CheckAdminKeyBuilder struct {
	key string
}

func NewCheckAdminKeyBuilder(key string) *CheckAdminKeyBuilder {
	return &CheckAdminKeyBuilder{key: key}
}

func (a *CheckAdminKeyBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		got := ctx.GetHeader(adminKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(a.key)) != 1 {
			elog.Error("rejected admin request with bad key")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{
				Code: 401001,
				Msg:  "invalid admin key",
			})
			return
		}
	}
}
