package main

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemoDefaultKeys(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), nil, &out, io.Discard))

	assert.Equal(t, "10\n"+
		"5 15\n"+
		"3 7 20\n"+
		"4 6\n"+
		"\n"+
		"pre order:  10 5 3 4 7 6 15 20\n"+
		"in order:   3 4 5 6 7 10 15 20\n"+
		"post order: 4 3 6 7 5 20 15 10\n"+
		"\n"+
		"8 nodes, max depth 4, min depth 3\n", out.String())
}

func TestRunDemoEmpty(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"--keys=", "demo"}, &out, io.Discard))

	assert.Equal(t, "empty tree\n", out.String())
}

func TestRunRender(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"--keys=1,0,2", "render"}, &out, io.Discard))

	assert.Equal(t,
		"       /------+ 2\n"+
			"|------+ 1\n"+
			"       \\------+ 0\n",
		out.String())
}

func TestRunUnknownMode(t *testing.T) {
	var stderr bytes.Buffer

	err := run(context.Background(), []string{"dance"}, io.Discard, &stderr)

	assert.EqualError(t, err, `unknown mode "dance"`)
	assert.Contains(t, stderr.String(), "Modes:")
	assert.Contains(t, stderr.String(), "Usage:")
	assert.Contains(t, stderr.String(), "--keys")
}

func TestRunServe(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, []string{"--http-listen=" + addr, "serve"}, io.Discard, io.Discard)
	}()

	var res *http.Response
	require.Eventually(t, func() bool {
		res, err = http.Get("http://" + addr + "/stats")
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
