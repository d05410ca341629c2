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
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/picklebay/picklebay/internal/payment/internal/domain"
	razorpaymocks "github.com/picklebay/picklebay/internal/payment/internal/service/razorpay/mocks"
)

func TestService_Verify(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		paymentID  string
		mock       func(ctrl *gomock.Controller) PaymentAPI
		wantResult domain.VerifyResult
		wantErr    bool
	}{
		{
			name:      "captured maps to success",
			paymentID: "pay_NlgG8MPUeVG3t2",
			mock: func(ctrl *gomock.Controller) PaymentAPI {
				api := razorpaymocks.NewMockPaymentAPI(ctrl)
				api.EXPECT().Fetch("pay_NlgG8MPUeVG3t2", nil, nil).
					Return(map[string]any{"status": "captured"}, nil)
				return api
			},
			wantResult: domain.VerifyResult{Status: domain.StatusSuccess, TransactionID: "pay_NlgG8MPUeVG3t2"},
		},
		{
			name:      "failed maps to failed",
			paymentID: "pay_failed01",
			mock: func(ctrl *gomock.Controller) PaymentAPI {
				api := razorpaymocks.NewMockPaymentAPI(ctrl)
				api.EXPECT().Fetch("pay_failed01", nil, nil).
					Return(map[string]any{"status": "failed"}, nil)
				return api
			},
			wantResult: domain.VerifyResult{Status: domain.StatusFailed, TransactionID: "pay_failed01"},
		},
		{
			name:      "authorized maps to pending",
			paymentID: "pay_auth01",
			mock: func(ctrl *gomock.Controller) PaymentAPI {
				api := razorpaymocks.NewMockPaymentAPI(ctrl)
				api.EXPECT().Fetch("pay_auth01", nil, nil).
					Return(map[string]any{"status": "authorized"}, nil)
				return api
			},
			wantResult: domain.VerifyResult{Status: domain.StatusPending, TransactionID: "pay_auth01"},
		},
		{
			name:      "unknown state maps to pending",
			paymentID: "pay_weird01",
			mock: func(ctrl *gomock.Controller) PaymentAPI {
				api := razorpaymocks.NewMockPaymentAPI(ctrl)
				api.EXPECT().Fetch("pay_weird01", nil, nil).
					Return(map[string]any{"status": "disputed"}, nil)
				return api
			},
			wantResult: domain.VerifyResult{Status: domain.StatusPending, TransactionID: "pay_weird01"},
		},
		{
			name:      "empty payment id",
			paymentID: "",
			mock: func(ctrl *gomock.Controller) PaymentAPI {
				return razorpaymocks.NewMockPaymentAPI(ctrl)
			},
			wantErr: true,
		},
		{
			name:      "fetch fails",
			paymentID: "pay_gone01",
			mock: func(ctrl *gomock.Controller) PaymentAPI {
				api := razorpaymocks.NewMockPaymentAPI(ctrl)
				api.EXPECT().Fetch("pay_gone01", nil, nil).
					Return(nil, errors.New("network down"))
				return api
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)
			svc := NewService(tc.mock(ctrl), "key_secret", "webhook_secret")
			result, err := svc.Verify(context.Background(), tc.paymentID)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, result)
		})
	}
}

func TestService_Refund(t *testing.T) {
	t.Parallel()

	t.Run("returns refund id", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		api := razorpaymocks.NewMockPaymentAPI(ctrl)
		api.EXPECT().Refund("pay_NlgG8MPUeVG3t2", 70280, gomock.Any(), nil).
			Return(map[string]any{"id": "rfnd_FP8QHiV938haTz", "status": "processed"}, nil)
		svc := NewService(api, "key_secret", "webhook_secret")
		refundID, err := svc.Refund(context.Background(), "pay_NlgG8MPUeVG3t2", 70280)
		require.NoError(t, err)
		assert.Equal(t, "rfnd_FP8QHiV938haTz", refundID)
	})

	t.Run("gateway refuses", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		api := razorpaymocks.NewMockPaymentAPI(ctrl)
		api.EXPECT().Refund("pay_bad01", 100, gomock.Any(), nil).
			Return(nil, errors.New("BAD_REQUEST_ERROR: fully refunded already"))
		svc := NewService(api, "key_secret", "webhook_secret")
		_, err := svc.Refund(context.Background(), "pay_bad01", 100)
		assert.Error(t, err)
	})

	t.Run("missing payment id", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		svc := NewService(razorpaymocks.NewMockPaymentAPI(ctrl), "key_secret", "webhook_secret")
		_, err := svc.Refund(context.Background(), "", 100)
		assert.Error(t, err)
	})
}

func TestService_VerifyWebhookSignature(t *testing.T) {
	t.Parallel()
	const secret = "webhook_secret"
	body := []byte(`{"event":"payment.captured","payload":{}}`)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	goodSignature := hex.EncodeToString(mac.Sum(nil))

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	svc := NewService(razorpaymocks.NewMockPaymentAPI(ctrl), "key_secret", secret)

	assert.NoError(t, svc.VerifyWebhookSignature(body, goodSignature))
	assert.ErrorIs(t, svc.VerifyWebhookSignature(body, "deadbeef"), ErrBadSignature)
	assert.ErrorIs(t, svc.VerifyWebhookSignature(body, ""), ErrBadSignature)
	// Signature over a different body must not validate.
	assert.ErrorIs(t, svc.VerifyWebhookSignature([]byte(`{"event":"payment.failed"}`), goodSignature), ErrBadSignature)
}

func TestService_VerifyAuthorization(t *testing.T) {
	t.Parallel()
	const keySecret = "key_secret"
	orderRef := "order_IluGWxBm9U8zJ8"
	paymentID := "pay_G3P9vcIhRs3NV4"
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderRef + "|" + paymentID))
	goodSignature := hex.EncodeToString(mac.Sum(nil))

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	svc := NewService(razorpaymocks.NewMockPaymentAPI(ctrl), keySecret, "webhook_secret")

	assert.NoError(t, svc.VerifyAuthorization(orderRef, paymentID, goodSignature))
	assert.ErrorIs(t, svc.VerifyAuthorization(orderRef, paymentID, "bogus"), ErrBadSignature)
}
