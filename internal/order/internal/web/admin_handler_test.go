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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/picklebay/picklebay/internal/order/internal/domain"
	"github.com/picklebay/picklebay/internal/order/internal/service"
	ordermocks "github.com/picklebay/picklebay/internal/order/mocks"
)

type result struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newAdminServer(t *testing.T) (*gin.Engine, *ordermocks.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	svc := ordermocks.NewMockService(ctrl)
	server := gin.New()
	NewAdminHandler(svc).PrivateRoutes(server)
	return server, svc
}

func postJSON(t *testing.T, server *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
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

func sampleOrder(sn string, status domain.OrderStatus) domain.Order {
	return domain.Order{
		SN:       sn,
		Customer: domain.Customer{Name: "Meera Pillai", Email: "meera@example.com"},
		Items: []domain.OrderItem{
			{ProductSN: "PKL-MANGO-250", Name: "Cut Mango Pickle", Weight: "250g", UnitPrice: 27400, Quantity: 2},
		},
		Subtotal:      54800,
		Taxes:         2740,
		ShippingFee:   5000,
		TotalAmount:   62540,
		PaymentMethod: "razorpay",
		Status:        status,
	}
}

func TestAdminHandler_UpdateOrderStatus(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().UpdateStatus(gomock.Any(), "SN001", domain.StatusShipped).
			Return(sampleOrder("SN001", domain.StatusShipped), nil)

		recorder := postJSON(t, server, "/order/status/update",
			UpdateOrderStatusReq{SN: "SN001", Status: "shipped"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var vo Order
		res := decodeResult(t, recorder)
		require.NoError(t, json.Unmarshal(res.Data, &vo))
		assert.Equal(t, "shipped", vo.Status)
		assert.Equal(t, "SN001", vo.SN)
	})

	t.Run("unknown status name", func(t *testing.T) {
		t.Parallel()
		server, _ := newAdminServer(t)
		recorder := postJSON(t, server, "/order/status/update",
			UpdateOrderStatusReq{SN: "SN001", Status: "completed"})
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 402001, decodeResult(t, recorder).Code)
	})

	t.Run("forbidden transition", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().UpdateStatus(gomock.Any(), "SN001", domain.StatusDelivered).
			Return(domain.Order{}, fmt.Errorf("%w: pending -> delivered", service.ErrInvalidStatusTransition))

		recorder := postJSON(t, server, "/order/status/update",
			UpdateOrderStatusReq{SN: "SN001", Status: "delivered"})
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 402002, decodeResult(t, recorder).Code)
	})

	t.Run("order not found", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().UpdateStatus(gomock.Any(), "NOPE", domain.StatusProcessing).
			Return(domain.Order{}, service.ErrOrderNotFound)

		recorder := postJSON(t, server, "/order/status/update",
			UpdateOrderStatusReq{SN: "NOPE", Status: "processing"})
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 402404, decodeResult(t, recorder).Code)
	})
}

func TestAdminHandler_CancelOrder(t *testing.T) {
	t.Parallel()

	t.Run("cancel with failed refund reports partial success", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().CancelOrder(gomock.Any(), "SN002").
			Return(service.CancelResult{
				Order:           sampleOrder("SN002", domain.StatusCancelled),
				RefundAttempted: true,
				RefundFailure:   "gateway timeout",
			}, nil)

		recorder := postJSON(t, server, "/order/cancel", CancelOrderReq{SN: "SN002"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp CancelOrderResp
		res := decodeResult(t, recorder)
		require.NoError(t, json.Unmarshal(res.Data, &resp))
		assert.Equal(t, "cancelled", resp.Order.Status)
		assert.True(t, resp.RefundAttempted)
		assert.False(t, resp.RefundSucceeded)
		assert.Equal(t, "gateway timeout", resp.RefundFailure)
	})

	t.Run("cancel and refund", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().CancelOrder(gomock.Any(), "SN003").
			Return(service.CancelResult{
				Order:           sampleOrder("SN003", domain.StatusCancelledAndRefunded),
				RefundAttempted: true,
				RefundSucceeded: true,
				RefundID:        "rfnd_FP8QHiV938haTz",
			}, nil)

		recorder := postJSON(t, server, "/order/cancel", CancelOrderReq{SN: "SN003"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp CancelOrderResp
		require.NoError(t, json.Unmarshal(decodeResult(t, recorder).Data, &resp))
		assert.Equal(t, "cancelled_and_refunded", resp.Order.Status)
		assert.Equal(t, "rfnd_FP8QHiV938haTz", resp.RefundID)
	})
}

func TestAdminHandler_RefundOrder(t *testing.T) {
	t.Parallel()

	t.Run("passes amount and payment id through", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().RefundOrder(gomock.Any(), "SN004", int64(62540), "pay_real").
			Return(sampleOrder("SN004", domain.StatusRefunded), nil)

		recorder := postJSON(t, server, "/order/refund",
			RefundOrderReq{SN: "SN004", Amount: 62540, PaymentID: "pay_real"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var vo Order
		require.NoError(t, json.Unmarshal(decodeResult(t, recorder).Data, &vo))
		assert.Equal(t, "refunded", vo.Status)
	})

	t.Run("amount above the total is a validation error", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().RefundOrder(gomock.Any(), "SN005", int64(99999999), "pay_real").
			Return(domain.Order{}, fmt.Errorf("%w: amount 99999999 against total 62540", service.ErrRefundMismatch))

		recorder := postJSON(t, server, "/order/refund",
			RefundOrderReq{SN: "SN005", Amount: 99999999, PaymentID: "pay_real"})
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 402001, decodeResult(t, recorder).Code)
	})

	t.Run("wrong payment id is a validation error", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().RefundOrder(gomock.Any(), "SN006", int64(62540), "pay_WRONG").
			Return(domain.Order{}, fmt.Errorf("%w: payment id %q is not the captured one", service.ErrRefundMismatch, "pay_WRONG"))

		recorder := postJSON(t, server, "/order/refund",
			RefundOrderReq{SN: "SN006", Amount: 62540, PaymentID: "pay_WRONG"})
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 402001, decodeResult(t, recorder).Code)
	})

	t.Run("missing amount or payment id never reaches the service", func(t *testing.T) {
		t.Parallel()
		server, _ := newAdminServer(t)
		recorder := postJSON(t, server, "/order/refund", RefundOrderReq{SN: "SN007"})
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 402001, decodeResult(t, recorder).Code)
	})

	t.Run("cod order with nothing captured", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().RefundOrder(gomock.Any(), "SN008", int64(62540), "pay_x").
			Return(domain.Order{}, service.ErrNothingToRefund)

		recorder := postJSON(t, server, "/order/refund",
			RefundOrderReq{SN: "SN008", Amount: 62540, PaymentID: "pay_x"})
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 402001, decodeResult(t, recorder).Code)
	})
}

func TestAdminHandler_BulkUpdateStatus(t *testing.T) {
	t.Parallel()
	server, svc := newAdminServer(t)
	svc.EXPECT().BulkUpdateStatus(gomock.Any(), []string{"SN010", "SN011"}, domain.StatusShipped).
		Return(service.BulkResult{
			Updated: []domain.Order{sampleOrder("SN010", domain.StatusShipped)},
			Failed:  []service.BulkFailure{{SN: "SN011", Reason: "invalid status transition: delivered -> shipped", Status: "delivered"}},
		}, nil)

	recorder := postJSON(t, server, "/order/bulk/status",
		BulkUpdateStatusReq{SNs: []string{"SN010", "SN011"}, Status: "shipped"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp BulkUpdateStatusResp
	require.NoError(t, json.Unmarshal(decodeResult(t, recorder).Data, &resp))
	require.Len(t, resp.Updated, 1)
	assert.Equal(t, "SN010", resp.Updated[0].SN)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, "SN011", resp.Failed[0].SN)
	assert.Equal(t, "delivered", resp.Failed[0].Status)
}

func TestAdminHandler_ExportOrders(t *testing.T) {
	t.Parallel()

	t.Run("streams csv", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().ListOrders(gomock.Any(), 0, exportPageSize, domain.OrderStatus(0), "").
			Return([]domain.Order{sampleOrder("SN020", domain.StatusProcessing)}, int64(1), nil)

		req := httptest.NewRequest(http.MethodGet, "/order/export", nil)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
		body := recorder.Body.String()
		assert.Contains(t, body, "sn,status,customer_name")
		assert.Contains(t, body, "SN020,processing,Meera Pillai")
		assert.Contains(t, body, "Cut Mango Pickle (250g) x2 @274.00")
		assert.Contains(t, body, "625.40")
	})

	t.Run("status all exports everything", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().ListOrders(gomock.Any(), 0, exportPageSize, domain.OrderStatus(0), "").
			Return([]domain.Order{sampleOrder("SN021", domain.StatusDelivered)}, int64(1), nil)

		req := httptest.NewRequest(http.MethodGet, "/order/export?status=all", nil)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "SN021,delivered")
	})
}

func TestAdminHandler_ListOrders(t *testing.T) {
	t.Parallel()

	t.Run("defaults and status filter", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().ListOrders(gomock.Any(), 0, defaultPageSize, domain.StatusPending, "meera").
			Return([]domain.Order{sampleOrder("SN030", domain.StatusPending)}, int64(1), nil)

		recorder := postJSON(t, server, "/order/list",
			ListOrdersReq{Status: "pending", Keyword: "meera"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp ListOrdersResp
		require.NoError(t, json.Unmarshal(decodeResult(t, recorder).Data, &resp))
		assert.Equal(t, int64(1), resp.Total)
		require.Len(t, resp.Orders, 1)
		assert.Equal(t, "pending", resp.Orders[0].Status)
	})

	t.Run("status all means no filter", func(t *testing.T) {
		t.Parallel()
		server, svc := newAdminServer(t)
		svc.EXPECT().ListOrders(gomock.Any(), 0, defaultPageSize, domain.OrderStatus(0), "").
			Return(nil, int64(0), nil)

		recorder := postJSON(t, server, "/order/list", ListOrdersReq{Status: "all"})
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 0, decodeResult(t, recorder).Code)
	})

	t.Run("bad status filter", func(t *testing.T) {
		t.Parallel()
		server, _ := newAdminServer(t)
		recorder := postJSON(t, server, "/order/list", ListOrdersReq{Status: "archived"})
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 402001, decodeResult(t, recorder).Code)
	})
}
