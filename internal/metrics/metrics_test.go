package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCommand(t *testing.T) {
	before := testutil.ToFloat64(Commands.WithLabelValues("get", "ok"))
	RecordCommand("get", nil)
	assert.Equal(t, before+1, testutil.ToFloat64(Commands.WithLabelValues("get", "ok")))

	before = testutil.ToFloat64(Commands.WithLabelValues("rgb", "error"))
	RecordCommand("rgb", errors.New("bad"))
	assert.Equal(t, before+1, testutil.ToFloat64(Commands.WithLabelValues("rgb", "error")))
}

func TestServeUntilCancelled(t *testing.T) {
	RecordCommand("size", nil)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- serve(ctx, listener)
	}()

	response, err := http.Get("http://" + listener.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(response.Body)
	response.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "shades_commands_total")

	cancel()
	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}

func TestServeFailsWhenAddressIsTaken(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	result := make(chan error, 1)
	go func() {
		// Never cancelled, the call has to return on its own.
		result <- Serve(context.Background(), taken.Addr().String())
	}()

	select {
	case err := <-result:
		assert.Error(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return")
	}
}
