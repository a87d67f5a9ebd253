// internal/pkg/redis/client_test.go
package redis

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	return &Client{scripts: make(map[string]*goredis.Script)}
}

func TestLoadScriptFromContent(t *testing.T) {
	c := newTestClient()

	require.NoError(t, c.LoadScriptFromContent("seq", `return 1`))

	// 同名脚本不允许覆盖注册
	err := c.LoadScriptFromContent("seq", `return 2`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	require.NoError(t, c.LoadScriptFromContent("other", `return 3`))
}

func TestRunScriptRequiresRegistration(t *testing.T) {
	c := newTestClient()

	_, err := c.RunScript(context.Background(), "missing", []string{"k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}
