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

package domain

// Channel is the payment method tag stored on an order.
type Channel string

const (
	ChannelCOD      Channel = "cod"
	ChannelRazorpay Channel = "razorpay"
	ChannelPhonePe  Channel = "phonepe"
)

func (c Channel) IsOnline() bool {
	return c == ChannelRazorpay || c == ChannelPhonePe
}

func (c Channel) Valid() bool {
	return c == ChannelCOD || c == ChannelRazorpay || c == ChannelPhonePe
}

type TransactionStatus uint8

func (s TransactionStatus) ToUint8() uint8 {
	return uint8(s)
}

// Tri-state verify result. Anything the gateway reports that is not a
// terminal success or failure collapses to pending.
const (
	StatusPending TransactionStatus = iota + 1
	StatusSuccess
	StatusFailed
)

type VerifyResult struct {
	Status TransactionStatus
	// TransactionID is the gateway-side transaction identifier. For the
	// redirect flow it is discovered here and copied onto the order.
	TransactionID string
}
