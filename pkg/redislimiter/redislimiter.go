package redislimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Limiter 基于Redis的固定窗口计数限流器
type Limiter struct {
	client      *redis.Client
	maxAttempts int
	keyPrefix   string
	window      time.Duration
}

// New 创建限流器
func New(client *redis.Client, maxAttempts int, keyPrefix string, window time.Duration) *Limiter {
	return &Limiter{
		client:      client,
		maxAttempts: maxAttempts,
		keyPrefix:   keyPrefix,
		window:      window,
	}
}

// Allow 记录一次尝试并判断是否放行
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.keyPrefix + key

	// 使用Lua脚本保证计数与过期时间设置的原子性
	// 1. 计数加一
	// 2. 首次出现时设置窗口过期时间
	// 3. 返回当前计数
	script := redis.NewScript(
		`local count = redis.call('INCR', KEYS[1])
		if count == 1 then
			redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
		end
		return count`,
	)

	result, err := script.Run(ctx, l.client, []string{redisKey}, int(l.window.Seconds())).Result()
	if err != nil {
		return false, fmt.Errorf("执行Lua脚本失败: %w", err)
	}

	count := result.(int64)
	return count <= int64(l.maxAttempts), nil
}

// Reset 清除计数，验证成功后调用
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.keyPrefix+key).Err()
}

// Current 获取当前窗口内的计数
func (l *Limiter) Current(ctx context.Context, key string) (int, error) {
	count, err := l.client.Get(ctx, l.keyPrefix+key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("获取计数失败: %w", err)
	}
	return count, nil
}
