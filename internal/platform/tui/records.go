package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/storage/redis"
)

// OpenRecords picks the best-score store. A Redis URL wins; when Redis is
// unreachable, or no URL is given, the scores database keeps the records.
// The returned closer is nil unless a Redis connection was opened.
func OpenRecords(redisURL string, scores *storage.Store, logger *log.Logger) (core.RecordStore, io.Closer) {
	if redisURL != "" {
		cfg := redis.DefaultConfig()
		cfg.URL = redisURL
		rs, err := redis.New(cfg)
		if err == nil {
			return rs, rs
		}
		logger.Warn("could not connect to redis, keeping records locally", "error", err)
	}
	if scores == nil {
		return nil, nil
	}
	return scores, nil
}
