//go:build wireinject

package ioc

import (
	"github.com/google/wire"

	"github.com/picklebay/picklebay/internal/order"
	"github.com/picklebay/picklebay/internal/payment"
	"github.com/picklebay/picklebay/internal/pkg/middleware"
	"github.com/picklebay/picklebay/internal/product"
)

var BaseSet = wire.NewSet(InitDB, InitMQ, InitCache)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitEmailService,
		InitNotificationService,
		payment.InitModule,
		product.InitModule,
		order.InitModule,
		wire.FieldsOf(new(*payment.Module), "RazorpayHdl", "PhonePeHdl"),
		wire.FieldsOf(new(*product.Module), "Hdl"),
		wire.FieldsOf(new(*order.Module), "AdminHdl"),
		wire.FieldsOf(new(*order.Module), "Hdl"),
		middleware.NewMetricsBuilder,
		initMQConsumers,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
