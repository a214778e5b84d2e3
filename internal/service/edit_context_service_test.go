package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEditContextServiceTakeIsReadOnce(t *testing.T) {
	_, client := testRedis(t)
	svc := NewEditContextService(client, time.Minute, testLogger())

	require.NoError(t, svc.Set(context.Background(), 1, 42))

	miembroID, pendiente, err := svc.Take(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, pendiente)
	require.Equal(t, uint(42), miembroID)

	_, pendiente, err = svc.Take(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, pendiente, "the flag must not survive a second read")
}

func TestEditContextServiceIsScopedPerMonitor(t *testing.T) {
	_, client := testRedis(t)
	svc := NewEditContextService(client, time.Minute, testLogger())

	require.NoError(t, svc.Set(context.Background(), 1, 42))

	_, pendiente, err := svc.Take(context.Background(), 2)
	require.NoError(t, err)
	require.False(t, pendiente, "another session must not see the flag")

	_, pendiente, err = svc.Take(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, pendiente)
}

func TestEditContextServiceExpires(t *testing.T) {
	server, client := testRedis(t)
	svc := NewEditContextService(client, time.Minute, testLogger())

	require.NoError(t, svc.Set(context.Background(), 1, 42))
	server.FastForward(2 * time.Minute)

	_, pendiente, err := svc.Take(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, pendiente)
}

func TestEditContextServiceClear(t *testing.T) {
	_, client := testRedis(t)
	svc := NewEditContextService(client, time.Minute, testLogger())

	require.NoError(t, svc.Set(context.Background(), 1, 42))
	require.NoError(t, svc.Clear(context.Background(), 1))

	_, pendiente, err := svc.Take(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, pendiente)
}
