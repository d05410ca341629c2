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

package order

import (
	"github.com/picklebay/picklebay/internal/order/internal/consumer"
	"github.com/picklebay/picklebay/internal/order/internal/domain"
	"github.com/picklebay/picklebay/internal/order/internal/service"
	"github.com/picklebay/picklebay/internal/order/internal/web"
)

type (
	Service              = service.Service
	Order                = domain.Order
	OrderItem            = domain.OrderItem
	OrderStatus          = domain.OrderStatus
	Handler              = web.Handler
	AdminHandler         = web.AdminHandler
	PaymentEventConsumer = consumer.PaymentEventConsumer
)

const (
	StatusPending              = domain.StatusPending
	StatusProcessing           = domain.StatusProcessing
	StatusShipped              = domain.StatusShipped
	StatusDelivered            = domain.StatusDelivered
	StatusCancelled            = domain.StatusCancelled
	StatusRefunded             = domain.StatusRefunded
	StatusCancelledAndRefunded = domain.StatusCancelledAndRefunded
	StatusFailed               = domain.StatusFailed
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
	Consumer *PaymentEventConsumer
}
