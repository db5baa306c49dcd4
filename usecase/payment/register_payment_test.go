package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaguilar/cobranza-sync/entity"
)

func testRegisterRequest() entity.RegisterPaymentRequest {
	return entity.RegisterPaymentRequest{
		CreditNumber:     "123456",
		Cycle:            "3",
		Amount:           decimal.RequireFromString("350.00"),
		PaymentTypeCode:  "P",
		Comments:         "pago semanal",
		Latitude:         19.43,
		Longitude:        -99.13,
		CaptureTimestamp: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		UserID:           "EJ042",
	}
}

func TestRegisterPaymentDeliveredRemotely(t *testing.T) {
	u := newTestUsecase(newFakeDao(), &fakeSubmitter{})

	result := u.RegisterPayment(context.Background(), testRegisterRequest())

	assert.True(t, result.Success)
	assert.False(t, result.SavedLocally)
	assert.NotEmpty(t, result.PaymentID)

	// Nothing was queued.
	all, err := u.ListAllPending()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRegisterPaymentFallsBackToQueue(t *testing.T) {
	u := newTestUsecase(newFakeDao(), &fakeSubmitter{failAll: true})

	result := u.RegisterPayment(context.Background(), testRegisterRequest())

	assert.True(t, result.Success)
	assert.True(t, result.SavedLocally)

	all, err := u.ListAllPending()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, result.PaymentID, all[0].ID)
}

func TestRegisterPaymentRetryDedupsInQueue(t *testing.T) {
	u := newTestUsecase(newFakeDao(), &fakeSubmitter{failAll: true})
	req := testRegisterRequest()

	first := u.RegisterPayment(context.Background(), req)
	second := u.RegisterPayment(context.Background(), req)

	// The deterministic ID makes the retry hit the dedup path.
	assert.Equal(t, first.PaymentID, second.PaymentID)
	assert.True(t, second.SavedLocally)
	assert.True(t, second.Duplicate)

	all, err := u.ListAllPending()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRegisterPaymentHardFailureWhenStorageBroken(t *testing.T) {
	d := newFakeDao()
	d.failStorage = true
	u := newTestUsecase(d, &fakeSubmitter{failAll: true})

	result := u.RegisterPayment(context.Background(), testRegisterRequest())

	assert.False(t, result.Success)
	assert.False(t, result.SavedLocally)
	assert.NotEmpty(t, result.Error)
}
