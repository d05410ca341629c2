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

package ioc

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"

	"github.com/picklebay/picklebay/internal/order"
	"github.com/picklebay/picklebay/internal/pkg/middleware"
)

type AdminServer *egin.Component

func InitAdminServer(orderAdminHdl *order.AdminHandler, metrics *middleware.MetricsBuilder) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Admin-Key", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "picklebay.in")
		},
	}))
	res.Use(metrics.Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	res.Use(middleware.NewCheckAdminKeyBuilder(econf.GetString("security.adminKey")).Build())
	orderAdminHdl.PrivateRoutes(res.Engine)
	return res
}
