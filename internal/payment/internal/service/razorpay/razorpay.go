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

package razorpay

import (
	"context"
	"errors"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	pkgerrors "github.com/pkg/errors"
	"github.com/razorpay/razorpay-go/utils"

	"github.com/picklebay/picklebay/internal/payment/internal/domain"
)

var (
	ErrBadSignature      = errors.New("razorpay signature mismatch")
	errMissingPaymentID  = errors.New("missing razorpay payment id")
	errMalformedResponse = errors.New("malformed razorpay response")
)

// PaymentAPI is the slice of the razorpay-go SDK this service needs.
//
//go:generate mockgen -source=./razorpay.go -package=razorpaymocks -destination=./mocks/razorpay.mock.go PaymentAPI
type PaymentAPI interface {
	Fetch(paymentID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
	Refund(paymentID string, amount int, data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type Service struct {
	api           PaymentAPI
	keySecret     string
	webhookSecret string
	l             *elog.Component

	// Razorpay payment entity states:
	// created, authorized, captured, refunded, failed.
	stateToTransactionStatus map[string]domain.TransactionStatus
}

func NewService(api PaymentAPI, keySecret, webhookSecret string) *Service {
	return &Service{
		api:           api,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
		l:             elog.DefaultLogger,
		stateToTransactionStatus: map[string]domain.TransactionStatus{
			"captured":   domain.StatusSuccess,
			"refunded":   domain.StatusSuccess,
			"failed":     domain.StatusFailed,
			"created":    domain.StatusPending,
			"authorized": domain.StatusPending,
		},
	}
}

// Verify fetches the payment entity and maps its state to the tri-state result.
func (s *Service) Verify(ctx context.Context, paymentID string) (domain.VerifyResult, error) {
	if paymentID == "" {
		return domain.VerifyResult{}, errMissingPaymentID
	}
	body, err := s.api.Fetch(paymentID, nil, nil)
	if err != nil {
		return domain.VerifyResult{}, pkgerrors.Wrapf(err, "failed to fetch razorpay payment %s", paymentID)
	}
	state, ok := body["status"].(string)
	if !ok {
		return domain.VerifyResult{}, errMalformedResponse
	}
	status, ok := s.stateToTransactionStatus[state]
	if !ok {
		s.l.Warn("unknown razorpay payment state",
			elog.String("paymentID", paymentID),
			elog.String("state", state))
		status = domain.StatusPending
	}
	return domain.VerifyResult{Status: status, TransactionID: paymentID}, nil
}

// Refund issues a refund for amount paisa against the captured payment.
func (s *Service) Refund(ctx context.Context, paymentID string, amount int64) (string, error) {
	if paymentID == "" {
		return "", errMissingPaymentID
	}
	body, err := s.api.Refund(paymentID, int(amount), map[string]interface{}{}, nil)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to refund razorpay payment %s", paymentID)
	}
	refundID, ok := body["id"].(string)
	if !ok {
		return "", errMalformedResponse
	}
	return refundID, nil
}

// VerifyWebhookSignature checks the X-Razorpay-Signature HMAC over the raw
// webhook body. Nothing in the payload may be trusted before this passes.
func (s *Service) VerifyWebhookSignature(body []byte, signature string) error {
	if signature == "" || !utils.VerifyWebhookSignature(string(body), signature, s.webhookSecret) {
		return ErrBadSignature
	}
	return nil
}

// VerifyAuthorization checks the checkout signature the storefront presents
// for a payment that was authorized client-side.
func (s *Service) VerifyAuthorization(orderRef, paymentID, signature string) error {
	params := map[string]interface{}{
		"razorpay_order_id":   orderRef,
		"razorpay_payment_id": paymentID,
	}
	if !utils.VerifyPaymentSignature(params, signature, s.keySecret) {
		return fmt.Errorf("%w: payment %s", ErrBadSignature, paymentID)
	}
	return nil
}
