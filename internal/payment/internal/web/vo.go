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

// PhonePeStatusReq asks for the current gateway state of an order's payment.
type PhonePeStatusReq struct {
	OrderSN string `json:"orderSN"`
}

// PhonePeStatusResp drives the storefront redirect after checkout.
type PhonePeStatusResp struct {
	Status      string `json:"status"` // success, failed, pending
	RedirectURL string `json:"redirectURL"`
}

// razorpayWebhookPayload is the slice of the webhook body we consume.
// notes.order_sn carries our order code, set when checkout opens.
type razorpayWebhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string            `json:"id"`
				OrderID string            `json:"order_id"`
				Status  string            `json:"status"`
				Notes   map[string]string `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}
