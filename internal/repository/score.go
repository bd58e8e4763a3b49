package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrScoresNotFound = errors.New("scores not found")

// ScoreRepository mirrors the scoreboard of a running session into a redis hash.
type ScoreRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreRepository - ttl <= 0 keeps keys until they are deleted.
func NewScoreRepository(client *redis.Client, ttl time.Duration) *ScoreRepository {
	return &ScoreRepository{
		client: client,
		ttl:    ttl,
	}
}

func scoresKey(sessionID string) string {
	return "session:" + sessionID + ":scores"
}

func (that *ScoreRepository) SaveScores(ctx context.Context, sessionID string, scores entity.Scoreboard) error {
	key := scoresKey(sessionID)

	fields := make(map[string]interface{}, len(scores))
	for label, score := range scores {
		fields[label] = score
	}

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fields)
		if that.ttl > 0 {
			pipe.Expire(ctx, key, that.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}

	return nil
}

func (that *ScoreRepository) GetScores(ctx context.Context, sessionID string) (entity.Scoreboard, error) {
	response, err := that.client.HGetAll(ctx, scoresKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	if len(response) == 0 {
		return nil, ErrScoresNotFound
	}

	scores := make(entity.Scoreboard, len(response))
	for label, raw := range response {
		score, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse score of %s: %w", label, err)
		}
		scores[label] = score
	}

	return scores, nil
}

func (that *ScoreRepository) DeleteScores(ctx context.Context, sessionID string) error {
	if err := that.client.Del(ctx, scoresKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete scores: %w", err)
	}

	return nil
}
