// Package history 提供会话近期消息的 Redis 缓存
// 数据库是事实来源，缓存未命中或 Redis 不可用时退回数据库读取
package history

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/notesaura/notesaura-ai/internal/model"
)

const (
	// 缓存过期时间（24小时）
	historyTTL = 24 * time.Hour
	// Redis key 前缀
	keyPrefix = "history:"
)

// Cache 近期消息缓存
// window 为上下文窗口大小，缓存只保留每个会话最近 window 条
type Cache struct {
	redis  *redis.Client
	window int
}

// NewCache 创建缓存
func NewCache(redisClient *redis.Client, window int) *Cache {
	return &Cache{
		redis:  redisClient,
		window: window,
	}
}

// Get 读取会话近期消息，未命中返回 false
func (c *Cache) Get(ctx context.Context, sessionID string) ([]*model.Message, bool) {
	if c.redis == nil {
		return nil, false
	}

	data, err := c.redis.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		return nil, false
	}

	var messages []*model.Message
	if err := json.Unmarshal([]byte(data), &messages); err != nil {
		return nil, false
	}
	return messages, true
}

// Set 写入会话近期消息（只保留最近 window 条）
func (c *Cache) Set(ctx context.Context, sessionID string, messages []*model.Message) {
	if c.redis == nil {
		return
	}

	if len(messages) > c.window {
		messages = messages[len(messages)-c.window:]
	}

	data, err := json.Marshal(messages)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, keyPrefix+sessionID, data, historyTTL).Err(); err != nil {
		log.Printf("Warning: failed to cache history for session %s: %v", sessionID, err)
	}
}

// Append 向已缓存的会话追加一条消息
// 未缓存的会话不做处理，下次读取时从数据库重建
func (c *Cache) Append(ctx context.Context, sessionID string, msg *model.Message) {
	if c.redis == nil {
		return
	}

	messages, ok := c.Get(ctx, sessionID)
	if !ok {
		return
	}
	c.Set(ctx, sessionID, append(messages, msg))
}

// Invalidate 删除会话缓存
func (c *Cache) Invalidate(ctx context.Context, sessionID string) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		log.Printf("Warning: failed to invalidate history for session %s: %v", sessionID, err)
	}
}

// InvalidateAll 清空全部会话缓存（配合批量清空会话）
func (c *Cache) InvalidateAll(ctx context.Context) {
	if c.redis == nil {
		return
	}

	iter := c.redis.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.redis.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("Warning: failed to delete history key %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("Warning: failed to scan history keys: %v", err)
	}
}
