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

package payment

import (
	"github.com/picklebay/picklebay/internal/payment/internal/domain"
	"github.com/picklebay/picklebay/internal/payment/internal/event"
	"github.com/picklebay/picklebay/internal/payment/internal/service"
	"github.com/picklebay/picklebay/internal/payment/internal/web"
)

type (
	Service           = service.Service
	Channel           = domain.Channel
	TransactionStatus = domain.TransactionStatus
	VerifyResult      = domain.VerifyResult
	PaymentEvent      = event.PaymentEvent
	RazorpayHandler   = web.RazorpayHandler
	PhonePeHandler    = web.PhonePeHandler
)

const (
	ChannelCOD      = domain.ChannelCOD
	ChannelRazorpay = domain.ChannelRazorpay
	ChannelPhonePe  = domain.ChannelPhonePe

	StatusPending = domain.StatusPending
	StatusSuccess = domain.StatusSuccess
	StatusFailed  = domain.StatusFailed

	PaymentEventName = event.PaymentEventName
)

type Module struct {
	Svc         Service
	RazorpayHdl *RazorpayHandler
	PhonePeHdl  *PhonePeHandler
}
