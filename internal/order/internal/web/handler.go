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
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"

	"github.com/picklebay/picklebay/internal/order/internal/domain"
	"github.com/picklebay/picklebay/internal/order/internal/service"
	"github.com/picklebay/picklebay/internal/payment"
	"github.com/picklebay/picklebay/internal/pkg/sequencenumber"
	"github.com/picklebay/picklebay/internal/product"
)

// requestIDTTL bounds the dedup window for storefront retries.
const requestIDTTL = 24 * time.Hour

var _ ginx.Handler = &Handler{}

// Handler serves the storefront: guest checkout and order status polling.
type Handler struct {
	svc         service.Service
	productSvc  product.Service
	paymentSvc  payment.Service
	snGenerator *sequencenumber.Generator
	cache       ecache.Cache
	l           *elog.Component
}

func NewHandler(svc service.Service,
	productSvc product.Service,
	paymentSvc payment.Service,
	snGenerator *sequencenumber.Generator,
	cache ecache.Cache) *Handler {
	return &Handler{
		svc:         svc,
		productSvc:  productSvc,
		paymentSvc:  paymentSvc,
		snGenerator: snGenerator,
		cache:       cache,
		l:           elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.B[CreateOrderReq](h.CreateOrder))
	g.POST("/status", ginx.B[OrderStatusReq](h.RetrieveOrderStatus))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// CreateOrder places a guest order. Prices come from the catalog, never from
// the request, the client totals are only cross-checked.
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return validationErrorResult, fmt.Errorf("bad request id: %w", err)
	}
	if err := validateCustomer(req.Customer); err != nil {
		return validationErrorResult, err
	}
	if !payment.Channel(req.PaymentMethod).Valid() {
		return validationErrorResult, fmt.Errorf("unknown payment method %q", req.PaymentMethod)
	}
	if req.Coupon.Percent < 0 || req.Coupon.Percent > 100 {
		return validationErrorResult, fmt.Errorf("coupon percent %d out of range", req.Coupon.Percent)
	}
	if req.Taxes < 0 || req.ShippingFee < 0 || req.OtherFees < 0 {
		return validationErrorResult, errors.New("negative fee amounts")
	}
	// An online checkout may hand the storefront a captured payment before
	// the order exists. The signature proves the capture is ours.
	if req.PaymentID != "" {
		err := h.paymentSvc.VerifyAuthorization(ctx.Request.Context(),
			payment.Channel(req.PaymentMethod), req.PaymentOrderRef, req.PaymentID, req.PaymentSignature)
		if err != nil {
			return validationErrorResult, fmt.Errorf("payment authorization rejected: %w", err)
		}
	}

	items, subtotal, err := h.resolveItems(ctx.Request.Context(), req.Items)
	if err != nil {
		return validationErrorResult, err
	}
	discount := subtotal * req.Coupon.Percent / 100
	total := subtotal - discount + req.Taxes + req.ShippingFee + req.OtherFees
	if total != req.TotalAmount {
		return validationErrorResult, fmt.Errorf("total mismatch: computed %d, claimed %d", total, req.TotalAmount)
	}

	sn, err := h.snGenerator.Generate()
	if err != nil {
		return systemErrorResult, fmt.Errorf("failed to generate order sn: %w", err)
	}

	order, err := h.svc.CreateOrder(ctx.Request.Context(), domain.Order{
		SN: sn,
		Customer: domain.Customer{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
			City:    req.Customer.City,
			State:   req.Customer.State,
			Pincode: req.Customer.Pincode,
		},
		Items:         items,
		Subtotal:      subtotal,
		Discount:      discount,
		Taxes:         req.Taxes,
		ShippingFee:   req.ShippingFee,
		OtherFees:     req.OtherFees,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		PaymentID:     req.PaymentID,
		Coupon: domain.Coupon{
			Code:    req.Coupon.Code,
			Percent: req.Coupon.Percent,
		},
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("failed to create order: %w", err)
	}
	h.decrementStock(ctx.Request.Context(), order)
	return ginx.Result{
		Data: CreateOrderResp{
			SN:     order.SN,
			Status: order.Status.String(),
		},
	}, nil
}

// decrementStock takes the ordered quantities off the catalog. Best-effort:
// the order is already committed, a miss here means an oversold variant to
// restock manually, not a failed order.
func (h *Handler) decrementStock(ctx context.Context, order domain.Order) {
	for _, item := range order.Items {
		if err := h.productSvc.DecrementStock(ctx, item.ProductSN, item.Quantity); err != nil {
			h.l.Warn("failed to decrement stock",
				elog.String("order_sn", order.SN),
				elog.String("variant_sn", item.ProductSN),
				elog.Int64("quantity", item.Quantity),
				elog.FieldErr(err))
		}
	}
}

// RetrieveOrderStatus lets the storefront poll where an order stands.
func (h *Handler) RetrieveOrderStatus(ctx *ginx.Context, req OrderStatusReq) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySN(ctx.Request.Context(), req.SN)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, fmt.Errorf("order %s not found: %w", req.SN, err)
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: OrderStatusResp{
			SN:     order.SN,
			Status: order.Status.String(),
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return errors.New("empty request id")
	}
	key := fmt.Sprintf("order:create:%s", requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return errors.New("duplicate request")
	}
	if err := h.cache.Set(ctx, key, requestID, requestIDTTL); err != nil {
		return fmt.Errorf("failed to cache request id: %w", err)
	}
	return nil
}

func (h *Handler) resolveItems(ctx context.Context, items []CartItem) ([]domain.OrderItem, int64, error) {
	if len(items) == 0 {
		return nil, 0, errors.New("empty cart")
	}
	orderItems := make([]domain.OrderItem, 0, len(items))
	var subtotal int64
	for _, item := range items {
		variant, err := h.productSvc.FindVariantBySN(ctx, item.SN)
		if err != nil {
			return nil, 0, fmt.Errorf("unknown product variant %q: %w", item.SN, err)
		}
		if item.Quantity < 1 || item.Quantity > variant.Stock {
			return nil, 0, fmt.Errorf("bad quantity %d for variant %q", item.Quantity, item.SN)
		}
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: variant.ProductID,
			ProductSN: variant.SN,
			Name:      variant.Name,
			Weight:    variant.Weight,
			UnitPrice: variant.Price,
			Quantity:  item.Quantity,
		})
		subtotal += variant.Price * item.Quantity
	}
	return orderItems, subtotal, nil
}

func validateCustomer(c Customer) error {
	if c.Name == "" || c.Phone == "" || c.Address == "" || c.City == "" || c.State == "" || c.Pincode == "" {
		return errors.New("incomplete customer details")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("bad customer email %q: %w", c.Email, err)
	}
	return nil
}
