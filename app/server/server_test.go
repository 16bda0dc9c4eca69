package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"blogapi/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerLifecycle(t *testing.T) {
	cfg := config.Config{Port: "0", DBPath: ""}

	srv, err := New(cfg)
	require.NoError(t, err)

	require.NoError(t, srv.Start())
	require.NotEmpty(t, srv.Addr())

	_, port, err := net.SplitHostPort(srv.Addr())
	require.NoError(t, err)
	base := "http://127.0.0.1:" + port

	resp, err := http.Get(base + "/authors")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var views []json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&views))
	assert.Empty(t, views)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	_, err = http.Get(base + "/authors")
	assert.Error(t, err)
}

func TestStartFailsFastOnBindError(t *testing.T) {
	first, err := New(config.Config{Port: "0", DBPath: ""})
	require.NoError(t, err)
	require.NoError(t, first.Start())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		first.Stop(ctx)
	}()

	_, port, err := net.SplitHostPort(first.Addr())
	require.NoError(t, err)

	second, err := New(config.Config{Port: port, DBPath: ""})
	require.NoError(t, err)
	assert.Error(t, second.Start())
}
