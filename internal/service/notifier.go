package service

import (
	"context"
	"encoding/json"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisNotifier 将告警/触点事件发布到 Redis 频道
// 下游通知服务订阅该频道后自行决定推送方式
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
}

func NewRedisNotifier(rdb *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, channel: channel}
}

type pathwayEvent struct {
	Event   string      `json:"event"`
	UserID  uint        `json:"userId"`
	Payload interface{} `json:"payload"`
}

func (n *RedisNotifier) publish(event string, userID uint, payload interface{}) {
	body, err := json.Marshal(pathwayEvent{Event: event, UserID: userID, Payload: payload})
	if err != nil {
		logger.Log.Error("failed to encode pathway event", zap.String("event", event), zap.Error(err))
		return
	}
	if err := n.rdb.Publish(context.Background(), n.channel, body).Err(); err != nil {
		logger.Log.Error("failed to publish pathway event", zap.String("event", event), zap.Error(err))
	}
}

func (n *RedisNotifier) AlertCreated(alert *model.EarlyAlert) {
	n.publish("alert.created", alert.UserID, alert)
}

func (n *RedisNotifier) TouchpointCreated(tp *model.SocialTouchpoint) {
	n.publish("touchpoint.created", tp.UserID, tp)
}
