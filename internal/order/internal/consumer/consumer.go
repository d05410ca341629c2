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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"

	"github.com/picklebay/picklebay/internal/order/internal/service"
)

const paymentEventName = "payment_events"

const (
	paymentStatusSuccess uint8 = 2
	paymentStatusFailed  uint8 = 3
)

// paymentEvent mirrors the payload the payment module publishes on the
// payment_events topic.
type paymentEvent struct {
	OrderSN      string `json:"orderSN"`
	PaymentNO3rd string `json:"paymentNO3rd"`
	Channel      string `json:"channel"`
	Status       uint8  `json:"status"`
}

// PaymentEventConsumer applies gateway outcomes to orders: a successful
// payment moves the order to processing, a failed one to failed.
type PaymentEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentEventConsumer(svc service.Service, q mq.MQ) (*PaymentEventConsumer, error) {
	const groupID = "order"
	consumer, err := q.Consumer(paymentEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PaymentEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("failed to consume payment event", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PaymentEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("failed to get message: %w", err)
	}

	var evt paymentEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	switch evt.Status {
	case paymentStatusSuccess:
		err = c.svc.MarkPaid(ctx, evt.OrderSN, evt.PaymentNO3rd)
	case paymentStatusFailed:
		err = c.svc.MarkPaymentFailed(ctx, evt.OrderSN)
	default:
		// Pending outcomes carry no state change.
		return nil
	}
	if err != nil {
		c.logger.Warn("failed to apply payment outcome",
			elog.FieldErr(err),
			elog.String("order_sn", evt.OrderSN),
			elog.String("channel", evt.Channel))
	}
	return err
}
