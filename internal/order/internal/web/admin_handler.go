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
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"

	"github.com/picklebay/picklebay/internal/order/internal/domain"
	"github.com/picklebay/picklebay/internal/order/internal/service"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// exportPageSize is the batch size when streaming the CSV export.
	exportPageSize = 500
)

// AdminHandler serves the back-office console. The admin server guards every
// route with the X-Admin-Key middleware, so there is no per-route auth here.
type AdminHandler struct {
	svc    service.Service
	logger *elog.Component
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc, logger: elog.DefaultLogger}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.B[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/status/update", ginx.B[UpdateOrderStatusReq](h.UpdateOrderStatus))
	g.POST("/cancel", ginx.B[CancelOrderReq](h.CancelOrder))
	g.POST("/refund", ginx.B[RefundOrderReq](h.RefundOrder))
	g.POST("/bulk/status", ginx.B[BulkUpdateStatusReq](h.BulkUpdateStatus))
	g.GET("/export", h.ExportOrders)
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) ListOrders(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	status, err := parseStatusFilter(req.Status)
	if err != nil {
		return validationErrorResult, err
	}
	if req.Limit <= 0 {
		req.Limit = defaultPageSize
	}
	if req.Limit > maxPageSize {
		req.Limit = maxPageSize
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit, status, req.Keyword)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySN(ctx.Request.Context(), req.SN)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, fmt.Errorf("order %s not found: %w", req.SN, err)
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(order)},
	}, nil
}

func (h *AdminHandler) UpdateOrderStatus(ctx *ginx.Context, req UpdateOrderStatusReq) (ginx.Result, error) {
	target, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		return validationErrorResult, err
	}
	order, err := h.svc.UpdateStatus(ctx.Request.Context(), req.SN, target)
	if err != nil {
		return h.mapLifecycleError(req.SN, err)
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

func (h *AdminHandler) CancelOrder(ctx *ginx.Context, req CancelOrderReq) (ginx.Result, error) {
	result, err := h.svc.CancelOrder(ctx.Request.Context(), req.SN)
	if err != nil {
		return h.mapLifecycleError(req.SN, err)
	}
	return ginx.Result{
		Data: CancelOrderResp{
			Order:           toOrderVO(result.Order),
			RefundAttempted: result.RefundAttempted,
			RefundSucceeded: result.RefundSucceeded,
			RefundID:        result.RefundID,
			RefundFailure:   result.RefundFailure,
		},
	}, nil
}

func (h *AdminHandler) RefundOrder(ctx *ginx.Context, req RefundOrderReq) (ginx.Result, error) {
	if req.Amount <= 0 || req.PaymentID == "" {
		return validationErrorResult, fmt.Errorf("refund for %s needs a positive amount and the payment id", req.SN)
	}
	order, err := h.svc.RefundOrder(ctx.Request.Context(), req.SN, req.Amount, req.PaymentID)
	if err != nil {
		if errors.Is(err, service.ErrNothingToRefund) || errors.Is(err, service.ErrRefundMismatch) {
			return validationErrorResult, fmt.Errorf("order %s: %w", req.SN, err)
		}
		return h.mapLifecycleError(req.SN, err)
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

func (h *AdminHandler) BulkUpdateStatus(ctx *ginx.Context, req BulkUpdateStatusReq) (ginx.Result, error) {
	if len(req.SNs) == 0 {
		return validationErrorResult, errors.New("no order sns given")
	}
	target, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		return validationErrorResult, err
	}
	result, err := h.svc.BulkUpdateStatus(ctx.Request.Context(), req.SNs, target)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: BulkUpdateStatusResp{
			Updated: slice.Map(result.Updated, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
			Failed: slice.Map(result.Failed, func(idx int, src service.BulkFailure) BulkFailure {
				return BulkFailure{SN: src.SN, Reason: src.Reason, Status: src.Status}
			}),
		},
	}, nil
}

// ExportOrders streams every order matching the optional status filter as
// CSV, one row per order with items flattened into a single column.
func (h *AdminHandler) ExportOrders(ctx *gin.Context) {
	status, err := parseStatusFilter(ctx.Query("status"))
	if err != nil {
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}

	filename := fmt.Sprintf("orders-%s.csv", time.Now().Format("20060102-150405"))
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	w := csv.NewWriter(ctx.Writer)
	header := []string{
		"sn", "status", "customer_name", "customer_email", "customer_phone",
		"address", "city", "state", "pincode", "items",
		"subtotal", "discount", "taxes", "shipping_fee", "other_fees",
		"total_amount", "payment_method", "payment_id", "coupon_code", "created_at",
	}
	if err = w.Write(header); err != nil {
		h.logger.Error("failed to write csv header", elog.FieldErr(err))
		return
	}

	for offset := 0; ; offset += exportPageSize {
		orders, _, err := h.svc.ListOrders(ctx.Request.Context(), offset, exportPageSize, status, ctx.Query("keyword"))
		if err != nil {
			h.logger.Error("failed to list orders for export", elog.FieldErr(err))
			return
		}
		if len(orders) == 0 {
			break
		}
		for _, order := range orders {
			if err = w.Write(h.toCSVRow(order)); err != nil {
				h.logger.Error("failed to write csv row",
					elog.String("order_sn", order.SN),
					elog.FieldErr(err))
				return
			}
		}
		w.Flush()
		if len(orders) < exportPageSize {
			break
		}
	}
	w.Flush()
}

func (h *AdminHandler) toCSVRow(order domain.Order) []string {
	items := ""
	for i, item := range order.Items {
		if i > 0 {
			items += "; "
		}
		items += fmt.Sprintf("%s (%s) x%d @%s", item.Name, item.Weight, item.Quantity, paisaToRupees(item.UnitPrice))
	}
	return []string{
		order.SN,
		order.Status.String(),
		order.Customer.Name,
		order.Customer.Email,
		order.Customer.Phone,
		order.Customer.Address,
		order.Customer.City,
		order.Customer.State,
		order.Customer.Pincode,
		items,
		paisaToRupees(order.Subtotal),
		paisaToRupees(order.Discount),
		paisaToRupees(order.Taxes),
		paisaToRupees(order.ShippingFee),
		paisaToRupees(order.OtherFees),
		paisaToRupees(order.TotalAmount),
		order.PaymentMethod,
		order.PaymentID,
		order.Coupon.Code,
		time.UnixMilli(order.Ctime).UTC().Format(time.RFC3339),
	}
}

func (h *AdminHandler) mapLifecycleError(sn string, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, fmt.Errorf("order %s not found: %w", sn, err)
	case errors.Is(err, service.ErrInvalidStatusTransition):
		return invalidTransitionResult, fmt.Errorf("order %s: %w", sn, err)
	default:
		return systemErrorResult, err
	}
}

func parseStatusFilter(status string) (domain.OrderStatus, error) {
	if status == "" || status == "all" {
		return 0, nil
	}
	return domain.ParseOrderStatus(status)
}

func paisaToRupees(paisa int64) string {
	return fmt.Sprintf("%d.%02d", paisa/100, paisa%100)
}
