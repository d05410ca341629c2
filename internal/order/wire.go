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

//go:build wireinject

package order

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"

	"github.com/picklebay/picklebay/internal/notification"
	"github.com/picklebay/picklebay/internal/order/internal/consumer"
	"github.com/picklebay/picklebay/internal/order/internal/event"
	"github.com/picklebay/picklebay/internal/order/internal/repository"
	"github.com/picklebay/picklebay/internal/order/internal/repository/dao"
	"github.com/picklebay/picklebay/internal/order/internal/service"
	"github.com/picklebay/picklebay/internal/order/internal/web"
	"github.com/picklebay/picklebay/internal/payment"
	"github.com/picklebay/picklebay/internal/pkg/sequencenumber"
	"github.com/picklebay/picklebay/internal/product"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	cache ecache.Cache,
	notificationSvc notification.Service,
	paymentModule *payment.Module,
	productModule *product.Module) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		wire.FieldsOf(new(*payment.Module), "Svc"),
		wire.FieldsOf(new(*product.Module), "Svc"),
		initDAO,
		sequencenumber.NewGenerator,
		event.NewOrderEventProducer,
		consumer.NewPaymentEventConsumer,
		repository.NewRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
	)
	return new(Module), nil
}

func initDAO(db *egorm.Component) dao.OrderDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewOrderGORMDAO(db)
}
