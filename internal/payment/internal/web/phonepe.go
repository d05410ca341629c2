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
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"

	"github.com/picklebay/picklebay/internal/payment/internal/domain"
	"github.com/picklebay/picklebay/internal/payment/internal/event"
	"github.com/picklebay/picklebay/internal/payment/internal/service/phonepe"
)

var _ ginx.Handler = &PhonePeHandler{}

// RedirectConfig holds the storefront pages the checkout lands on after the
// status poll resolves.
type RedirectConfig struct {
	SuccessURL string
	FailureURL string
	PendingURL string
}

// PhonePeHandler serves the redirect-flow status poll: the storefront calls
// it after checkout until the gateway reports a terminal state.
type PhonePeHandler struct {
	client   *phonepe.Client
	producer event.PaymentEventProducer
	redirect RedirectConfig
	l        *elog.Component
}

func NewPhonePeHandler(client *phonepe.Client, producer event.PaymentEventProducer, redirect RedirectConfig) *PhonePeHandler {
	return &PhonePeHandler{
		client:   client,
		producer: producer,
		redirect: redirect,
		l:        elog.DefaultLogger,
	}
}

func (h *PhonePeHandler) PrivateRoutes(_ *gin.Engine) {}

func (h *PhonePeHandler) PublicRoutes(server *gin.Engine) {
	server.POST("/pay/phonepe/status", ginx.B[PhonePeStatusReq](h.CheckStatus))
}

func (h *PhonePeHandler) CheckStatus(ctx *ginx.Context, req PhonePeStatusReq) (ginx.Result, error) {
	if req.OrderSN == "" {
		return systemErrorResult, nil
	}
	res, err := h.client.Verify(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		return systemErrorResult, err
	}

	if res.Status == domain.StatusSuccess || res.Status == domain.StatusFailed {
		evt := event.PaymentEvent{
			OrderSN:      req.OrderSN,
			PaymentNO3rd: res.TransactionID,
			Channel:      string(domain.ChannelPhonePe),
			Status:       res.Status.ToUint8(),
		}
		if err = h.producer.Produce(ctx.Request.Context(), evt); err != nil {
			h.l.Error("failed to publish phonepe payment event",
				elog.String("orderSN", req.OrderSN),
				elog.FieldErr(err))
		}
	}

	return ginx.Result{Data: h.toStatusResp(res.Status)}, nil
}

func (h *PhonePeHandler) toStatusResp(status domain.TransactionStatus) PhonePeStatusResp {
	switch status {
	case domain.StatusSuccess:
		return PhonePeStatusResp{Status: "success", RedirectURL: h.redirect.SuccessURL}
	case domain.StatusFailed:
		return PhonePeStatusResp{Status: "failed", RedirectURL: h.redirect.FailureURL}
	default:
		return PhonePeStatusResp{Status: "pending", RedirectURL: h.redirect.PendingURL}
	}
}
