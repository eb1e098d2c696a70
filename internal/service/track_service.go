package service

import (
	"context"
	"encoding/json"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/repository"
	"pathway_edu_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const trackCacheKey = "pathway:tracks:enabled"

// TrackService 职业方向查询，列表走 Redis 旁路缓存
// 方向数据基本只读，缓存失效靠 TTL 即可
type TrackService struct {
	TrackRepo *repository.CareerTrackRepository
	Redis     *redis.Client
	CacheTTL  time.Duration
}

func NewTrackService(trackRepo *repository.CareerTrackRepository, rdb *redis.Client, cacheTTLSeconds int) *TrackService {
	ttl := time.Duration(cacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &TrackService{
		TrackRepo: trackRepo,
		Redis:     rdb,
		CacheTTL:  ttl,
	}
}

func (s *TrackService) ListTracks(ctx context.Context) ([]model.CareerTrack, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, trackCacheKey).Result()
		if err == nil {
			var tracks []model.CareerTrack
			if err := json.Unmarshal([]byte(cached), &tracks); err == nil {
				return tracks, nil
			}
		}
	}

	tracks, err := s.TrackRepo.FindEnabled()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		payload, err := json.Marshal(tracks)
		if err == nil {
			if err := s.Redis.Set(ctx, trackCacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache career tracks", zap.Error(err))
			}
		}
	}

	return tracks, nil
}

func (s *TrackService) GetTrack(id uint) (*model.CareerTrack, error) {
	return s.TrackRepo.FindByID(id)
}
