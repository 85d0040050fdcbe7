package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Alijeyrad/notifications/config"
)

func TestFromCentralConfig(t *testing.T) {
	got := FromCentralConfig(config.RedisConfig{Addr: "cache:6379", DB: 2, ReadTimeoutSeconds: 9})

	assert.Equal(t, "cache:6379", got.Addr)
	assert.Equal(t, 2, got.DB)
	assert.Equal(t, 9*time.Second, got.ReadTimeout)
	assert.Equal(t, DefaultConfig().PoolSize, got.PoolSize)
	assert.Equal(t, DefaultConfig().WriteTimeout, got.WriteTimeout)
}
