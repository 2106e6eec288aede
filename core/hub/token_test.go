package hub_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/centrifuge/core/hub"
	"github.com/dmitrymomot/centrifuge/core/logger"
)

func TestClient_GenerateToken(t *testing.T) {
	t.Parallel()

	c, err := hub.New(testConfig(), hub.WithLogger(logger.Discard()))
	require.NoError(t, err)

	info, err := json.Marshal(map[string]string{"first_name": "Nikita", "last_name": "Stenin"})
	require.NoError(t, err)

	assert.Equal(t, "558880399d21bd215e4d1558dd95efad9b82f829a1d44910fb611eeeffac3c50",
		c.GenerateToken("1", "1491650279", ""))
	assert.Equal(t, "37722e22cee00160d777fd8d594dd831a9d5404016d5515a2cffc7c102ea67ee",
		c.GenerateToken("1", "1491650279", string(info)))
	assert.Equal(t, "02fc39b64c252108e80cfdcab2ef774f13a181f5149d21cebabd6eca08d231d2",
		c.GenerateChannelSign("0c951315-be0e-4516-b99e-05e60b0cc307", "test-channel", ""))
	assert.Equal(t, "11950468714031c2e0b95e284482ba6e8d9e17e1a6115eb0db6feded7581ebba",
		c.GenerateAPISign([]byte(`{"method":"publish","params":{"channel":"test-channel"}}`)))
}

func TestClient_Connection(t *testing.T) {
	t.Parallel()

	clock := func() time.Time { return time.Unix(1491650279, 0) }

	cfg := testConfig()
	cfg.URL = "http://localhost:8000/"
	c, err := hub.New(cfg, hub.WithLogger(logger.Discard()), hub.WithClock(clock))
	require.NoError(t, err)

	settings := c.Connection("1")
	assert.Equal(t, hub.ConnectionSettings{
		URL:       "http://localhost:8000",
		User:      "1",
		Timestamp: "1491650279",
		Token:     "558880399d21bd215e4d1558dd95efad9b82f829a1d44910fb611eeeffac3c50",
	}, settings)

	info := `{"first_name":"Nikita","last_name":"Stenin"}`
	sockJS := c.Connection("1", hub.WithSockJS(), hub.WithInfo(info))
	assert.Equal(t, "http://localhost:8000/connection", sockJS.URL)
	assert.Equal(t, info, sockJS.Info)
	assert.Equal(t, "37722e22cee00160d777fd8d594dd831a9d5404016d5515a2cffc7c102ea67ee", sockJS.Token)

	anonymous := c.Connection("")
	assert.Empty(t, anonymous.User)
	assert.Equal(t, c.GenerateToken("", "1491650279", ""), anonymous.Token)
}
