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

package event

const (
	orderEventName = "order_events"

	TypeNewOrder     = "newOrder"
	TypeOrderUpdated = "orderUpdated"
)

// OrderEvent fans order lifecycle changes out to live listeners: the admin
// console dashboard and any other subscriber of the order_events topic. Both
// event types carry the full order snapshot, never a diff, so a listener
// needs no read-back to render the change.
type OrderEvent struct {
	Type  string `json:"type"`
	Order Order  `json:"order"`
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
	CouponCode    string      `json:"couponCode"`
	CouponPercent int64       `json:"couponPercent"`
	Status        string      `json:"status"`
	Ctime         int64       `json:"ctime"`
	Utime         int64       `json:"utime"`
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type OrderItem struct {
	ProductSN string `json:"productSN"`
	Name      string `json:"name"`
	Weight    string `json:"weight"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}
