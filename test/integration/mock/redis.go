package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis starts an embedded miniredis and returns a client bound to it.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		redisConn = openRedis()
	})
	return redisConn
}

func openRedis() *redis.Client {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(&redis.Options{Addr: server.Addr()})
}

// ClearRedis flushes every key so rate-limit counters do not leak
// between scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
