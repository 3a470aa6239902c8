package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RecordStoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *RecordStore
	ctx   context.Context
}

func TestRecordStoreSuite(t *testing.T) {
	suite.Run(t, new(RecordStoreSuite))
}

func (s *RecordStoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.store = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *RecordStoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *RecordStoreSuite) TestGetMissing() {
	v, ok, err := s.store.Get(s.ctx, "t2048:best:4x4")
	s.Require().NoError(err)
	s.False(ok)
	s.Zero(v)
}

func (s *RecordStoreSuite) TestSetAndGet() {
	s.Require().NoError(s.store.Set(s.ctx, "t2048:best:4x4", 2048))
	s.Require().NoError(s.store.Set(s.ctx, "t2048:best:4x4", 4096))

	v, ok, err := s.store.Get(s.ctx, "t2048:best:4x4")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(4096, v)

	// Stored as a plain integer string without expiry.
	raw, err := s.mini.Get("t2048:best:4x4")
	s.Require().NoError(err)
	s.Equal("4096", raw)
	s.Zero(s.mini.TTL("t2048:best:4x4"))
}

func (s *RecordStoreSuite) TestGetNonInteger() {
	s.Require().NoError(s.mini.Set("t2048:best:4x4", "lots"))
	_, _, err := s.store.Get(s.ctx, "t2048:best:4x4")
	s.Error(err)
}

func (s *RecordStoreSuite) TestNamespace() {
	cfg := DefaultConfig()
	cfg.Namespace = "prod"
	store := NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), cfg)
	defer store.Close()

	s.Require().NoError(store.Set(s.ctx, "t2048:best:3x3", 512))
	s.True(s.mini.Exists("prod:t2048:best:3x3"))

	_, ok, err := s.store.Get(s.ctx, "t2048:best:3x3")
	s.Require().NoError(err)
	s.False(ok, "unnamespaced store must not see namespaced keys")

	records, err := store.Records(s.ctx)
	s.Require().NoError(err)
	s.Equal([]Record{{Key: "t2048:best:3x3", Value: 512}}, records)
}

func (s *RecordStoreSuite) TestRecords() {
	s.Require().NoError(s.store.Set(s.ctx, "t2048:best:5x5", 300))
	s.Require().NoError(s.store.Set(s.ctx, "t2048:best:4x4", 1200))
	s.Require().NoError(s.mini.Set("unrelated", "x"))

	records, err := s.store.Records(s.ctx)
	s.Require().NoError(err)
	s.Equal([]Record{
		{Key: "t2048:best:4x4", Value: 1200},
		{Key: "t2048:best:5x5", Value: 300},
	}, records)
}

func (s *RecordStoreSuite) TestRecordsEmpty() {
	records, err := s.store.Records(s.ctx)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *RecordStoreSuite) TestNewRejectsBadURL() {
	_, err := New(Config{URL: "not a url"})
	s.Error(err)
}

func (s *RecordStoreSuite) TestNewConnects() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()
	store, err := New(cfg)
	s.Require().NoError(err)
	defer store.Close()

	s.Require().NoError(store.Set(s.ctx, "t2048:best:6x6", 64))
	v, ok, err := s.store.Get(s.ctx, "t2048:best:6x6")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(64, v)
}
