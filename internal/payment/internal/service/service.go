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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/picklebay/picklebay/internal/payment/internal/domain"
	"github.com/picklebay/picklebay/internal/payment/internal/service/phonepe"
	"github.com/picklebay/picklebay/internal/payment/internal/service/razorpay"
)

var ErrNoGateway = errors.New("payment channel has no gateway")

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go -typed Service
type Service interface {
	// Verify resolves the gateway for channel and checks the transaction.
	Verify(ctx context.Context, channel domain.Channel, paymentID string) (domain.VerifyResult, error)
	// Refund refunds amount (paisa) against the given gateway transaction.
	Refund(ctx context.Context, channel domain.Channel, paymentID string, amount int64) (string, error)
	// VerifyAuthorization validates a client-side checkout signature before
	// an order is accepted with a pre-authorized payment attached.
	VerifyAuthorization(ctx context.Context, channel domain.Channel, orderRef, paymentID, signature string) error
}

func NewService(rzp *razorpay.Service, pp *phonepe.Client) Service {
	return &service{rzp: rzp, pp: pp}
}

type service struct {
	rzp *razorpay.Service
	pp  *phonepe.Client
}

func (s *service) Verify(ctx context.Context, channel domain.Channel, paymentID string) (domain.VerifyResult, error) {
	switch channel {
	case domain.ChannelRazorpay:
		return s.rzp.Verify(ctx, paymentID)
	case domain.ChannelPhonePe:
		return s.pp.Verify(ctx, paymentID)
	default:
		return domain.VerifyResult{}, fmt.Errorf("%w: %s", ErrNoGateway, channel)
	}
}

func (s *service) Refund(ctx context.Context, channel domain.Channel, paymentID string, amount int64) (string, error) {
	switch channel {
	case domain.ChannelRazorpay:
		return s.rzp.Refund(ctx, paymentID, amount)
	case domain.ChannelPhonePe:
		return s.pp.Refund(ctx, paymentID, amount)
	default:
		return "", fmt.Errorf("%w: %s", ErrNoGateway, channel)
	}
}

func (s *service) VerifyAuthorization(ctx context.Context, channel domain.Channel, orderRef, paymentID, signature string) error {
	// Only the razorpay checkout hands the client a signature; the phonepe
	// redirect flow confirms through the status poll instead.
	if channel != domain.ChannelRazorpay {
		return fmt.Errorf("%w: %s", ErrNoGateway, channel)
	}
	return s.rzp.VerifyAuthorization(orderRef, paymentID, signature)
}
