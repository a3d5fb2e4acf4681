package redis_test

import (
	"context"
	"testing"
	"time"

	redisadapter "dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *goredis.Client
}

func TestRedisTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(RedisTestSuite))
}

func (s *RedisTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	addr, err := container.Endpoint(ctx, "")
	s.Require().NoError(err)

	client, err := redisadapter.NewClient(ctx, addr, "", 0)
	s.Require().NoError(err)
	s.client = client
}

func (s *RedisTestSuite) TearDownSuite() {
	if s.client != nil {
		s.NoError(s.client.Close())
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *RedisTestSuite) SetupTest() {
	s.Require().NoError(s.client.FlushDB(context.Background()).Err())
}

func (s *RedisTestSuite) TestNewClient_UnreachableServer_Fails() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := redisadapter.NewClient(ctx, "127.0.0.1:1", "", 0)

	s.Require().Error(err)
}

func (s *RedisTestSuite) TestStreamPublisher_AppendsEntry() {
	ctx := context.Background()

	// Given
	msg := ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		Name:        "order.created",
		AggregateID: kernel.NewUUID(),
		Payload:     []byte(`{"orderId":"x"}`),
		OccurredAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	// When
	err := redisadapter.NewStreamPublisher(s.client, "orders.events").Publish(ctx, msg)

	// Then
	s.Require().NoError(err)

	entries, err := s.client.XRange(ctx, "orders.events", "-", "+").Result()
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(msg.ID.String(), entries[0].Values["eventId"])
	s.Equal("order.created", entries[0].Values["name"])
	s.Equal(msg.AggregateID.String(), entries[0].Values["aggregateId"])
	s.Equal("2026-01-02T03:04:05Z", entries[0].Values["occurredAt"])
	s.Equal(`{"orderId":"x"}`, entries[0].Values["payload"])
}

func (s *RedisTestSuite) TestLocker_SecondAcquireFailsUntilReleased() {
	ctx := context.Background()
	locker := redisadapter.NewLocker(s.client)

	release, err := locker.TryLock(ctx, "assign", time.Minute)
	s.Require().NoError(err)

	_, err = locker.TryLock(ctx, "assign", time.Minute)
	s.Require().ErrorIs(err, ports.ErrLockIsHeld)

	other, err := locker.TryLock(ctx, "move", time.Minute)
	s.Require().NoError(err)
	s.Require().NoError(other(ctx))

	s.Require().NoError(release(ctx))
	again, err := locker.TryLock(ctx, "assign", time.Minute)
	s.Require().NoError(err)
	s.Require().NoError(again(ctx))
}

func (s *RedisTestSuite) TestLocker_ReleaseAfterExpiryKeepsNewOwner() {
	ctx := context.Background()
	locker := redisadapter.NewLocker(s.client)

	staleRelease, err := locker.TryLock(ctx, "move", 50*time.Millisecond)
	s.Require().NoError(err)
	time.Sleep(150 * time.Millisecond)

	_, err = locker.TryLock(ctx, "move", time.Minute)
	s.Require().NoError(err)

	s.Require().NoError(staleRelease(ctx))

	_, err = locker.TryLock(ctx, "move", time.Minute)
	s.Require().ErrorIs(err, ports.ErrLockIsHeld)
}
