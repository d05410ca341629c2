package ioc

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"

	"github.com/picklebay/picklebay/internal/order"
	"github.com/picklebay/picklebay/internal/payment"
	"github.com/picklebay/picklebay/internal/pkg/middleware"
	"github.com/picklebay/picklebay/internal/product"
)

func initGinxServer(
	orderHdl *order.Handler,
	productHdl *product.Handler,
	razorpayHdl *payment.RazorpayHandler,
	phonePeHdl *payment.PhonePeHandler,
	metrics *middleware.MetricsBuilder,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
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
	orderHdl.PublicRoutes(res.Engine)
	productHdl.PublicRoutes(res.Engine)
	razorpayHdl.PublicRoutes(res.Engine)
	phonePeHdl.PublicRoutes(res.Engine)
	return res
}
