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
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/picklebay/picklebay/internal/payment/internal/event"
	evtmocks "github.com/picklebay/picklebay/internal/payment/internal/event/mocks"
	"github.com/picklebay/picklebay/internal/payment/internal/service/razorpay"
)

const testWebhookSecret = "whsec_test"

type result struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newWebhookServer(t *testing.T) (*gin.Engine, *evtmocks.MockPaymentEventProducer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	producer := evtmocks.NewMockPaymentEventProducer(ctrl)
	// The webhook path never touches the payment API, only the secrets.
	svc := razorpay.NewService(nil, "key_secret", testWebhookSecret)
	server := gin.New()
	NewRazorpayHandler(svc, producer).PublicRoutes(server)
	return server, producer
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func webhookBody(t *testing.T, eventName, paymentID, orderSN string) []byte {
	t.Helper()
	notes := map[string]string{}
	if orderSN != "" {
		notes["order_sn"] = orderSN
	}
	body, err := json.Marshal(map[string]any{
		"event": eventName,
		"payload": map[string]any{
			"payment": map[string]any{
				"entity": map[string]any{
					"id":    paymentID,
					"notes": notes,
				},
			},
		},
	})
	require.NoError(t, err)
	return body
}

func postWebhook(server *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/pay/razorpay/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(razorpaySignatureHeader, signature)
	}
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func decodeResult(t *testing.T, recorder *httptest.ResponseRecorder) result {
	t.Helper()
	var res result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	return res
}

func TestRazorpayHandler_HandleWebhook(t *testing.T) {
	t.Parallel()

	t.Run("bad signature produces nothing", func(t *testing.T) {
		t.Parallel()
		server, _ := newWebhookServer(t)
		// The producer mock has no expectations: any Produce call fails
		// the test.
		body := webhookBody(t, "payment.captured", "pay_abc", "SN001")

		recorder := postWebhook(server, body, "deadbeef")
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 401002, decodeResult(t, recorder).Code)
	})

	t.Run("missing signature produces nothing", func(t *testing.T) {
		t.Parallel()
		server, _ := newWebhookServer(t)
		body := webhookBody(t, "payment.captured", "pay_abc", "SN001")

		recorder := postWebhook(server, body, "")
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 401002, decodeResult(t, recorder).Code)
	})

	t.Run("captured payment becomes a success event", func(t *testing.T) {
		t.Parallel()
		server, producer := newWebhookServer(t)
		producer.EXPECT().Produce(gomock.Any(), event.PaymentEvent{
			OrderSN:      "SN001",
			PaymentNO3rd: "pay_abc",
			Channel:      "razorpay",
			Status:       2,
		}).Return(nil)
		body := webhookBody(t, "payment.captured", "pay_abc", "SN001")

		recorder := postWebhook(server, body, sign(body))
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 0, decodeResult(t, recorder).Code)
	})

	t.Run("failed payment becomes a failure event", func(t *testing.T) {
		t.Parallel()
		server, producer := newWebhookServer(t)
		producer.EXPECT().Produce(gomock.Any(), event.PaymentEvent{
			OrderSN:      "SN002",
			PaymentNO3rd: "pay_def",
			Channel:      "razorpay",
			Status:       3,
		}).Return(nil)
		body := webhookBody(t, "payment.failed", "pay_def", "SN002")

		recorder := postWebhook(server, body, sign(body))
		require.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("non-terminal event is acknowledged and ignored", func(t *testing.T) {
		t.Parallel()
		server, _ := newWebhookServer(t)
		body := webhookBody(t, "payment.authorized", "pay_abc", "SN001")

		recorder := postWebhook(server, body, sign(body))
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "OK", decodeResult(t, recorder).Msg)
	})

	t.Run("missing order_sn fails the delivery for a retry", func(t *testing.T) {
		t.Parallel()
		server, _ := newWebhookServer(t)
		body := webhookBody(t, "payment.captured", "pay_abc", "")

		recorder := postWebhook(server, body, sign(body))
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 504001, decodeResult(t, recorder).Code)
	})
}
