package service

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/tunedeck/tunedeck/internal/domain"
)

// PlaylistChannel is the redis channel playlist events are published on.
const PlaylistChannel = "tunedeck:playlists"

type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) PublishPlaylistEvent(ctx context.Context, event domain.PlaylistEvent) error {

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, PlaylistChannel, jsonstr).Err()
	if err != nil {
		return errors.Wrap(err, "publish playlist event")
	}

	return nil
}
