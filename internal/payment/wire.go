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

package payment

import (
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"

	"github.com/picklebay/picklebay/internal/payment/internal/event"
	"github.com/picklebay/picklebay/internal/payment/internal/service"
	"github.com/picklebay/picklebay/internal/payment/internal/web"
	"github.com/picklebay/picklebay/internal/payment/ioc"
)

func InitModule(q mq.MQ) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		ioc.InitRazorpayConfig,
		ioc.InitRazorpayAPI,
		ioc.InitRazorpayService,
		ioc.InitPhonePeConfig,
		ioc.InitPhonePeClient,
		ioc.InitRedirectConfig,
		event.NewPaymentEventProducer,
		service.NewService,
		web.NewRazorpayHandler,
		web.NewPhonePeHandler,
	)
	return new(Module), nil
}
