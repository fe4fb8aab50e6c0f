package redis

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Config holds Redis connection settings
type Config struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns sensible defaults for local development
func DefaultConfig() *Config {
	return &Config{
		Addr:         "localhost:6379",
		PoolSize:     50,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// Client wraps the go-redis client. Redis is a soft dependency here: the
// hot position cache degrades when it is down, so connection failure is
// surfaced through Available() rather than a constructor error.
type Client struct {
	rdb       *goredis.Client
	available atomic.Bool
}

// NewClient creates a Redis client and probes connectivity once.
// A failed probe does not return an error; the client starts unavailable
// and recovers on the next successful operation.
func NewClient(ctx context.Context, cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	c := &Client{rdb: rdb}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	c.available.Store(rdb.Ping(pingCtx).Err() == nil)

	return c
}

// Available reports whether the cache responded to the last probe or
// operation. Callers must treat reads while unavailable as "unknown",
// not as absence of data.
func (c *Client) Available() bool {
	return c.available.Load()
}

// Ping probes the server and updates availability
func (c *Client) Ping(ctx context.Context) error {
	err := c.rdb.Ping(ctx).Err()
	c.available.Store(err == nil)
	return err
}

// Raw returns the underlying go-redis client
func (c *Client) Raw() *goredis.Client {
	return c.rdb
}

// Observe records the outcome of an operation against availability.
// Pass through the operation error unchanged.
func (c *Client) Observe(err error) error {
	if err != nil && err != goredis.Nil {
		c.available.Store(false)
	} else {
		c.available.Store(true)
	}
	return err
}

// Close closes the connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// ErrNil is the go-redis sentinel for a missing key
var ErrNil = goredis.Nil

// String formats the config address for logs
func (cfg *Config) String() string {
	return fmt.Sprintf("redis://%s/%d", cfg.Addr, cfg.DB)
}
