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
	"github.com/ecodeclub/ekit/slice"

	"github.com/picklebay/picklebay/internal/order/internal/domain"
)

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type Coupon struct {
	Code    string `json:"code"`
	Percent int64  `json:"percent"`
}

type CartItem struct {
	SN       string `json:"sn"`
	Quantity int64  `json:"quantity"`
}

type CreateOrderReq struct {
	RequestID     string     `json:"requestID"`
	Customer      Customer   `json:"customer"`
	Items         []CartItem `json:"items"`
	Coupon        Coupon     `json:"coupon"`
	PaymentMethod string     `json:"paymentMethod"`

	// Set when the gateway checkout already captured the payment
	// client-side. The signature is verified before the order is accepted.
	PaymentID        string `json:"paymentID"`
	PaymentOrderRef  string `json:"paymentOrderRef"`
	PaymentSignature string `json:"paymentSignature"`

	// Amounts in paisa. Subtotal and discount are recomputed server-side,
	// the client values are only cross-checked.
	Taxes       int64 `json:"taxes"`
	ShippingFee int64 `json:"shippingFee"`
	OtherFees   int64 `json:"otherFees"`
	TotalAmount int64 `json:"totalAmount"`
}

type CreateOrderResp struct {
	SN     string `json:"sn"`
	Status string `json:"status"`
}

type OrderStatusReq struct {
	SN string `json:"sn"`
}

type OrderStatusResp struct {
	SN     string `json:"sn"`
	Status string `json:"status"`
}

type ListOrdersReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	// Status filters by lifecycle status, empty means all.
	Status string `json:"status"`
	// Keyword matches order sn, customer name, email or phone.
	Keyword string `json:"keyword"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type RetrieveOrderDetailReq struct {
	SN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type UpdateOrderStatusReq struct {
	SN     string `json:"sn"`
	Status string `json:"status"`
}

type CancelOrderReq struct {
	SN string `json:"sn"`
}

type CancelOrderResp struct {
	Order           Order  `json:"order"`
	RefundAttempted bool   `json:"refundAttempted"`
	RefundSucceeded bool   `json:"refundSucceeded"`
	RefundID        string `json:"refundID,omitempty"`
	RefundFailure   string `json:"refundFailure,omitempty"`
}

type RefundOrderReq struct {
	SN string `json:"sn"`
	// Amount in paisa, at most the order total.
	Amount int64 `json:"amount"`
	// PaymentID restates the gateway transaction id being refunded and must
	// match the one stored on the order.
	PaymentID string `json:"paymentID"`
}

type BulkUpdateStatusReq struct {
	SNs    []string `json:"sns"`
	Status string   `json:"status"`
}

type BulkUpdateStatusResp struct {
	Updated []Order       `json:"updated"`
	Failed  []BulkFailure `json:"failed"`
}

type BulkFailure struct {
	SN     string `json:"sn"`
	Reason string `json:"reason"`
	// Status is the persisted status after the batch, for reconciling the
	// console's optimistic view.
	Status string `json:"status"`
}

type Order struct {
	SN            string      `json:"sn"`
	Customer      Customer    `json:"customer"`
	Items         []OrderItem `json:"items"`
	Subtotal      int64       `json:"subtotal"`
	Discount      int64       `json:"discount"`
	Taxes         int64       `json:"taxes"`
	ShippingFee   int64       `json:"shippingFee"`
	OtherFees     int64       `json:"otherFees"`
	TotalAmount   int64       `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentID     string      `json:"paymentID"`
	Coupon        Coupon      `json:"coupon"`
	Status        string      `json:"status"`
	Ctime         int64       `json:"ctime"`
	Utime         int64       `json:"utime"`
}

type OrderItem struct {
	ProductSN string `json:"productSN"`
	Name      string `json:"name"`
	Weight    string `json:"weight"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

func toOrderVO(order domain.Order) Order {
	return Order{
		SN: order.SN,
		Customer: Customer{
			Name:    order.Customer.Name,
			Email:   order.Customer.Email,
			Phone:   order.Customer.Phone,
			Address: order.Customer.Address,
			City:    order.Customer.City,
			State:   order.Customer.State,
			Pincode: order.Customer.Pincode,
		},
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductSN: src.ProductSN,
				Name:      src.Name,
				Weight:    src.Weight,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
			}
		}),
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		Taxes:         order.Taxes,
		ShippingFee:   order.ShippingFee,
		OtherFees:     order.OtherFees,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		PaymentID:     order.PaymentID,
		Coupon: Coupon{
			Code:    order.Coupon.Code,
			Percent: order.Coupon.Percent,
		},
		Status: order.Status.String(),
		Ctime:  order.Ctime,
		Utime:  order.Utime,
	}
}
