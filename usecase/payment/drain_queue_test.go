package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaguilar/cobranza-sync/consts"
)

func TestDrainQueuePartialFailure(t *testing.T) {
	d := newFakeDao()
	s := &fakeSubmitter{failIDs: map[string]string{"pago-2": "invalid credit"}}
	u := newTestUsecase(d, s)

	for _, id := range []string{"pago-1", "pago-2", "pago-3"} {
		_, _, err := u.appendPending(testRecord(id, "123456", "100.00"))
		require.NoError(t, err)
	}

	result, err := u.DrainQueue(context.Background(), "test")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Succeeded, 2)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "pago-2", result.Failed[0].PaymentID)
	assert.Equal(t, "invalid credit", result.Failed[0].Error)

	// Processing is strictly sequential in storage order.
	assert.Equal(t, []string{"pago-1", "pago-2", "pago-3"}, s.attempts)

	// Only the failed record stays queued for the next drain.
	remaining, err := u.ListAllPending()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "pago-2", remaining[0].ID)
}

func TestDrainQueueAllDelivered(t *testing.T) {
	u := newTestUsecase(newFakeDao(), &fakeSubmitter{})

	_, _, err := u.appendPending(testRecord("pago-1", "123456", "100.00"))
	require.NoError(t, err)

	result, err := u.DrainQueue(context.Background(), "test")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Len(t, result.Succeeded, 1)
	assert.Empty(t, result.Failed)

	remaining, err := u.ListAllPending()
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDrainQueueEmptyQueueSucceeds(t *testing.T) {
	s := &fakeSubmitter{}
	u := newTestUsecase(newFakeDao(), s)

	result, err := u.DrainQueue(context.Background(), "test")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Zero(t, result.Total)
	assert.Empty(t, s.attempts)
}

func TestDrainQueueRejectsConcurrentRun(t *testing.T) {
	u := newTestUsecase(newFakeDao(), &fakeSubmitter{})

	require.True(t, u.locker.TryAcquire(consts.DrainLockKey))
	defer u.locker.Release(consts.DrainLockKey)

	_, err := u.DrainQueue(context.Background(), "test")
	assert.ErrorIs(t, err, ErrSyncInProgress)
}

func TestDrainQueueWritesRunLog(t *testing.T) {
	d := newFakeDao()
	u := newTestUsecase(d, &fakeSubmitter{failIDs: map[string]string{"pago-2": "rejected"}})

	for _, id := range []string{"pago-1", "pago-2"} {
		_, _, err := u.appendPending(testRecord(id, "123456", "100.00"))
		require.NoError(t, err)
	}

	result, err := u.DrainQueue(context.Background(), "test")
	require.NoError(t, err)
	require.NotZero(t, result.RunID)

	runLog, err := u.GetSyncRunLog(result.RunID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), runLog.TotalPending)
	assert.Equal(t, int64(1), runLog.Succeeded)
	assert.Equal(t, int64(1), runLog.Failed)
	assert.Equal(t, consts.StatusFinished, runLog.Status)
	assert.Contains(t, runLog.Result, "pago-2")
	assert.Equal(t, "test", runLog.CreateBy)
}
