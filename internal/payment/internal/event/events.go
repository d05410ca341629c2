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

const PaymentEventName = "payment_events"

// PaymentEvent reports a terminal gateway outcome to the order module.
type PaymentEvent struct {
	OrderSN      string `json:"orderSN"`
	PaymentNO3rd string `json:"paymentNO3rd"`
	Channel      string `json:"channel"`
	// Status uses domain.TransactionStatus values.
	Status uint8 `json:"status"`
}
