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

package phonepe

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picklebay/picklebay/internal/payment/internal/domain"
)

const (
	testMerchantID = "PICKLEBAYUAT"
	testSaltKey    = "099eb0cd-02cf-4e2a-8aca-3e6c6aff0399"
	testSaltIndex  = "1"
)

func expectedChecksum(payload string) string {
	sum := sha256.Sum256([]byte(payload + testSaltKey))
	return hex.EncodeToString(sum[:]) + "###" + testSaltIndex
}

func TestClient_Verify(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		code       string
		wantStatus domain.TransactionStatus
	}{
		{name: "success", code: "PAYMENT_SUCCESS", wantStatus: domain.StatusSuccess},
		{name: "declined", code: "PAYMENT_DECLINED", wantStatus: domain.StatusFailed},
		{name: "error", code: "PAYMENT_ERROR", wantStatus: domain.StatusFailed},
		{name: "timed out", code: "TIMED_OUT", wantStatus: domain.StatusFailed},
		{name: "pending", code: "PAYMENT_PENDING", wantStatus: domain.StatusPending},
		{name: "unknown code treated as pending", code: "INTERNAL_SERVER_ERROR", wantStatus: domain.StatusPending},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			const orderSN = "1712345678901KwSysDpxcBU9FNhGkn2"
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				wantPath := fmt.Sprintf("/pg/v1/status/%s/%s", testMerchantID, orderSN)
				assert.Equal(t, wantPath, r.URL.Path)
				assert.Equal(t, testMerchantID, r.Header.Get("X-MERCHANT-ID"))
				assert.Equal(t, expectedChecksum(wantPath), r.Header.Get("X-VERIFY"))
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success": true,
					"code":    tc.code,
					"data": map[string]any{
						"merchantTransactionId": orderSN,
						"transactionId":         "T2404091234567890123456",
					},
				})
			}))
			t.Cleanup(srv.Close)

			c := NewClient(srv.Client(), srv.URL, testMerchantID, testSaltKey, testSaltIndex)
			result, err := c.Verify(context.Background(), orderSN)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, result.Status)
			assert.Equal(t, "T2404091234567890123456", result.TransactionID)
		})
	}
}

func TestClient_Verify_HTTPError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL, testMerchantID, testSaltKey, testSaltIndex)
	_, err := c.Verify(context.Background(), "ORDER123")
	assert.Error(t, err)
}

func TestClient_Refund(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/pg/v1/refund", r.URL.Path)

			var envelope map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
			encoded := envelope["request"]
			assert.Equal(t, expectedChecksum(encoded+"/pg/v1/refund"), r.Header.Get("X-VERIFY"))

			raw, err := base64.StdEncoding.DecodeString(encoded)
			require.NoError(t, err)
			var req refundRequest
			require.NoError(t, json.Unmarshal(raw, &req))
			assert.Equal(t, testMerchantID, req.MerchantID)
			assert.Equal(t, "T2404091234567890123456", req.OriginalTransactionID)
			assert.Equal(t, int64(70280), req.Amount)
			assert.NotEmpty(t, req.MerchantTransactionID)

			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"code":    "PAYMENT_SUCCESS",
				"data":    map[string]any{"transactionId": "R2404091234567890123"},
			})
		}))
		t.Cleanup(srv.Close)

		c := NewClient(srv.Client(), srv.URL, testMerchantID, testSaltKey, testSaltIndex)
		refundID, err := c.Refund(context.Background(), "T2404091234567890123456", 70280)
		require.NoError(t, err)
		assert.Equal(t, "R2404091234567890123", refundID)
	})

	t.Run("gateway refuses", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"code":    "EXCESS_REFUND_AMOUNT",
			})
		}))
		t.Cleanup(srv.Close)

		c := NewClient(srv.Client(), srv.URL, testMerchantID, testSaltKey, testSaltIndex)
		_, err := c.Refund(context.Background(), "T2404091234567890123456", 999999999)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "EXCESS_REFUND_AMOUNT")
	})
}
