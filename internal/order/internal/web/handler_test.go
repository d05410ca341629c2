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
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ecache/memory/lru"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/picklebay/picklebay/internal/order/internal/domain"
	ordermocks "github.com/picklebay/picklebay/internal/order/mocks"
	"github.com/picklebay/picklebay/internal/payment"
	paymentmocks "github.com/picklebay/picklebay/internal/payment/mocks"
	"github.com/picklebay/picklebay/internal/pkg/sequencenumber"
	productdomain "github.com/picklebay/picklebay/internal/product"
	productmocks "github.com/picklebay/picklebay/internal/product/mocks"
)

type handlerDeps struct {
	svc        *ordermocks.MockService
	productSvc *productmocks.MockService
	paymentSvc *paymentmocks.MockService
}

func newPublicServer(t *testing.T) (*gin.Engine, handlerDeps) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	deps := handlerDeps{
		svc:        ordermocks.NewMockService(ctrl),
		productSvc: productmocks.NewMockService(ctrl),
		paymentSvc: paymentmocks.NewMockService(ctrl),
	}
	hdl := NewHandler(deps.svc, deps.productSvc, deps.paymentSvc,
		sequencenumber.NewGenerator(), lru.NewCache(128))
	server := gin.New()
	hdl.PublicRoutes(server)
	return server, deps
}

func mangoVariant() productdomain.Variant {
	return productdomain.Variant{
		ID:        11,
		ProductID: 1,
		SN:        "PKL-MANGO-250",
		Name:      "Cut Mango Pickle 250g",
		Weight:    "250g",
		Price:     27400,
		Stock:     40,
		Status:    productdomain.StatusOnShelf,
	}
}

func createReq(requestID string) CreateOrderReq {
	return CreateOrderReq{
		RequestID: requestID,
		Customer: Customer{
			Name:    "Meera Pillai",
			Email:   "meera@example.com",
			Phone:   "+919876543210",
			Address: "14 Beach Road",
			City:    "Kochi",
			State:   "Kerala",
			Pincode: "682001",
		},
		Items:         []CartItem{{SN: "PKL-MANGO-250", Quantity: 2}},
		PaymentMethod: "razorpay",
		Taxes:         2740,
		ShippingFee:   5000,
		TotalAmount:   62540,
	}
}

func TestHandler_CreateOrder(t *testing.T) {
	t.Parallel()

	t.Run("prices come from the catalog and stock is decremented", func(t *testing.T) {
		t.Parallel()
		server, deps := newPublicServer(t)
		deps.productSvc.EXPECT().FindVariantBySN(gomock.Any(), "PKL-MANGO-250").
			Return(mangoVariant(), nil)
		deps.svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order domain.Order) (domain.Order, error) {
				assert.NotEmpty(t, order.SN)
				assert.Empty(t, order.PaymentID)
				assert.Equal(t, int64(54800), order.Subtotal)
				assert.Equal(t, int64(62540), order.TotalAmount)
				require.Len(t, order.Items, 1)
				assert.Equal(t, int64(27400), order.Items[0].UnitPrice)
				order.Status = domain.StatusPending
				return order, nil
			})
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), "PKL-MANGO-250", int64(2)).
			Return(nil)

		recorder := postJSON(t, server, "/order/create", createReq("req-001"))
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp CreateOrderResp
		res := decodeResult(t, recorder)
		require.NoError(t, json.Unmarshal(res.Data, &resp))
		assert.NotEmpty(t, resp.SN)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("duplicate request id is rejected", func(t *testing.T) {
		t.Parallel()
		server, deps := newPublicServer(t)
		deps.productSvc.EXPECT().FindVariantBySN(gomock.Any(), "PKL-MANGO-250").
			Return(mangoVariant(), nil)
		deps.svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order domain.Order) (domain.Order, error) {
				order.Status = domain.StatusPending
				return order, nil
			})
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), "PKL-MANGO-250", int64(2)).
			Return(nil)

		first := postJSON(t, server, "/order/create", createReq("req-dup"))
		require.Equal(t, http.StatusOK, first.Code)

		second := postJSON(t, server, "/order/create", createReq("req-dup"))
		require.Equal(t, http.StatusInternalServerError, second.Code)
		assert.Equal(t, 402001, decodeResult(t, second).Code)
	})

	t.Run("verified pre-captured payment rides along", func(t *testing.T) {
		t.Parallel()
		server, deps := newPublicServer(t)
		req := createReq("req-pre")
		req.PaymentID = "pay_pre"
		req.PaymentOrderRef = "order_rzp"
		req.PaymentSignature = "sig_ok"
		deps.paymentSvc.EXPECT().
			VerifyAuthorization(gomock.Any(), payment.Channel("razorpay"), "order_rzp", "pay_pre", "sig_ok").
			Return(nil)
		deps.productSvc.EXPECT().FindVariantBySN(gomock.Any(), "PKL-MANGO-250").
			Return(mangoVariant(), nil)
		deps.svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order domain.Order) (domain.Order, error) {
				assert.Equal(t, "pay_pre", order.PaymentID)
				order.Status = domain.StatusProcessing
				return order, nil
			})
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), "PKL-MANGO-250", int64(2)).
			Return(nil)

		recorder := postJSON(t, server, "/order/create", req)
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp CreateOrderResp
		require.NoError(t, json.Unmarshal(decodeResult(t, recorder).Data, &resp))
		assert.Equal(t, "processing", resp.Status)
	})

	t.Run("forged checkout signature never creates an order", func(t *testing.T) {
		t.Parallel()
		server, deps := newPublicServer(t)
		req := createReq("req-forged")
		req.PaymentID = "pay_forged"
		req.PaymentOrderRef = "order_rzp"
		req.PaymentSignature = "sig_bad"
		deps.paymentSvc.EXPECT().
			VerifyAuthorization(gomock.Any(), payment.Channel("razorpay"), "order_rzp", "pay_forged", "sig_bad").
			Return(errors.New("razorpay signature mismatch"))

		recorder := postJSON(t, server, "/order/create", req)
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 402001, decodeResult(t, recorder).Code)
	})

	t.Run("total mismatch is rejected", func(t *testing.T) {
		t.Parallel()
		server, deps := newPublicServer(t)
		deps.productSvc.EXPECT().FindVariantBySN(gomock.Any(), "PKL-MANGO-250").
			Return(mangoVariant(), nil)

		req := createReq("req-mismatch")
		req.TotalAmount = 100
		recorder := postJSON(t, server, "/order/create", req)
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 402001, decodeResult(t, recorder).Code)
	})

	t.Run("quantity above stock is rejected", func(t *testing.T) {
		t.Parallel()
		server, deps := newPublicServer(t)
		deps.productSvc.EXPECT().FindVariantBySN(gomock.Any(), "PKL-MANGO-250").
			Return(mangoVariant(), nil)

		req := createReq("req-overstock")
		req.Items[0].Quantity = 100
		recorder := postJSON(t, server, "/order/create", req)
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 402001, decodeResult(t, recorder).Code)
	})

	t.Run("stock decrement failure does not fail the order", func(t *testing.T) {
		t.Parallel()
		server, deps := newPublicServer(t)
		deps.productSvc.EXPECT().FindVariantBySN(gomock.Any(), "PKL-MANGO-250").
			Return(mangoVariant(), nil)
		deps.svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order domain.Order) (domain.Order, error) {
				order.Status = domain.StatusPending
				return order, nil
			})
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), "PKL-MANGO-250", int64(2)).
			Return(errors.New("stock decrement lost"))

		recorder := postJSON(t, server, "/order/create", createReq("req-stockfail"))
		require.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestHandler_RetrieveOrderStatus(t *testing.T) {
	t.Parallel()
	server, deps := newPublicServer(t)
	deps.svc.EXPECT().FindOrderBySN(gomock.Any(), "SN900").
		Return(domain.Order{SN: "SN900", Status: domain.StatusShipped}, nil)

	recorder := postJSON(t, server, "/order/status", OrderStatusReq{SN: "SN900"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp OrderStatusResp
	require.NoError(t, json.Unmarshal(decodeResult(t, recorder).Data, &resp))
	assert.Equal(t, "shipped", resp.Status)
}
