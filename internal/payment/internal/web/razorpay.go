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

package web

import (
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"

	"github.com/picklebay/picklebay/internal/payment/internal/domain"
	"github.com/picklebay/picklebay/internal/payment/internal/event"
	"github.com/picklebay/picklebay/internal/payment/internal/service/razorpay"
)

const razorpaySignatureHeader = "X-Razorpay-Signature"

var _ ginx.Handler = &RazorpayHandler{}

// RazorpayHandler terminates the server-to-server webhook. The signature is
// verified over the raw body before the payload is even parsed; a bad
// signature mutates nothing.
type RazorpayHandler struct {
	svc      *razorpay.Service
	producer event.PaymentEventProducer
	l        *elog.Component

	// payment.captured / payment.failed are the only events we act on.
	eventToTransactionStatus map[string]domain.TransactionStatus
}

func NewRazorpayHandler(svc *razorpay.Service, producer event.PaymentEventProducer) *RazorpayHandler {
	return &RazorpayHandler{
		svc:      svc,
		producer: producer,
		l:        elog.DefaultLogger,
		eventToTransactionStatus: map[string]domain.TransactionStatus{
			"payment.captured": domain.StatusSuccess,
			"payment.failed":   domain.StatusFailed,
		},
	}
}

func (h *RazorpayHandler) PrivateRoutes(_ *gin.Engine) {}

func (h *RazorpayHandler) PublicRoutes(server *gin.Engine) {
	server.POST("/pay/razorpay/webhook", ginx.W(h.HandleWebhook))
}

func (h *RazorpayHandler) HandleWebhook(ctx *ginx.Context) (ginx.Result, error) {
	body, err := ctx.GetRawData()
	if err != nil {
		return systemErrorResult, err
	}
	if err = h.svc.VerifyWebhookSignature(body, ctx.GetHeader(razorpaySignatureHeader)); err != nil {
		return badSignatureResult, err
	}

	var payload razorpayWebhookPayload
	if err = json.Unmarshal(body, &payload); err != nil {
		return systemErrorResult, err
	}

	status, ok := h.eventToTransactionStatus[payload.Event]
	if !ok {
		// Not a terminal outcome; acknowledge so razorpay stops retrying.
		h.l.Warn("ignoring razorpay webhook event",
			elog.String("event", payload.Event))
		return ginx.Result{Msg: "OK"}, nil
	}

	entity := payload.Payload.Payment.Entity
	orderSN := entity.Notes["order_sn"]
	if orderSN == "" {
		// Fail the delivery so razorpay retries it. Acknowledging here would
		// silently drop a terminal outcome.
		return systemErrorResult, fmt.Errorf("razorpay webhook without order_sn note, payment %s", entity.ID)
	}

	evt := event.PaymentEvent{
		OrderSN:      orderSN,
		PaymentNO3rd: entity.ID,
		Channel:      string(domain.ChannelRazorpay),
		Status:       status.ToUint8(),
	}
	if err = h.producer.Produce(ctx.Request.Context(), evt); err != nil {
		// Let razorpay retry the delivery.
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
