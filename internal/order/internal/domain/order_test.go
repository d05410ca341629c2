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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()
	allowed := []struct {
		from, to OrderStatus
	}{
		{StatusPending, StatusProcessing},
		{StatusPending, StatusCancelled},
		{StatusPending, StatusFailed},
		{StatusPending, StatusRefunded},
		{StatusPending, StatusCancelledAndRefunded},
		{StatusProcessing, StatusShipped},
		{StatusProcessing, StatusCancelled},
		{StatusProcessing, StatusRefunded},
		{StatusProcessing, StatusCancelledAndRefunded},
		{StatusShipped, StatusDelivered},
		{StatusShipped, StatusRefunded},
		{StatusShipped, StatusCancelledAndRefunded},
		{StatusCancelled, StatusCancelledAndRefunded},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to),
			"%s -> %s should be allowed", tc.from, tc.to)
	}

	forbidden := []struct {
		from, to OrderStatus
	}{
		{StatusPending, StatusShipped},
		{StatusPending, StatusDelivered},
		{StatusProcessing, StatusPending},
		{StatusProcessing, StatusDelivered},
		{StatusShipped, StatusProcessing},
		{StatusShipped, StatusCancelled},
		{StatusDelivered, StatusShipped},
		{StatusDelivered, StatusRefunded},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusRefunded},
		{StatusRefunded, StatusCancelledAndRefunded},
		{StatusCancelledAndRefunded, StatusRefunded},
		{StatusFailed, StatusPending},
		{StatusFailed, StatusProcessing},
	}
	for _, tc := range forbidden {
		assert.False(t, tc.from.CanTransitionTo(tc.to),
			"%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusRefunded.IsTerminal())
	assert.True(t, StatusCancelledAndRefunded.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusProcessing.IsTerminal())
	assert.False(t, StatusShipped.IsTerminal())
	assert.False(t, StatusCancelled.IsTerminal())
	assert.False(t, OrderStatus(0).IsTerminal())
}

func TestOrderStatus_Cancellable(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusPending.Cancellable())
	assert.True(t, StatusProcessing.Cancellable())
	assert.True(t, StatusShipped.Cancellable())

	assert.False(t, StatusDelivered.Cancellable())
	assert.False(t, StatusCancelled.Cancellable())
	assert.False(t, StatusRefunded.Cancellable())
	assert.False(t, StatusCancelledAndRefunded.Cancellable())
	assert.False(t, StatusFailed.Cancellable())
}

func TestParseOrderStatus(t *testing.T) {
	t.Parallel()
	for status, name := range map[OrderStatus]string{
		StatusPending:              "pending",
		StatusProcessing:           "processing",
		StatusShipped:              "shipped",
		StatusDelivered:            "delivered",
		StatusCancelled:            "cancelled",
		StatusRefunded:             "refunded",
		StatusCancelledAndRefunded: "cancelled_and_refunded",
		StatusFailed:               "failed",
	} {
		parsed, err := ParseOrderStatus(name)
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
		assert.Equal(t, name, status.String())
	}

	_, err := ParseOrderStatus("completed")
	assert.Error(t, err)
	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}
