package seats_test

import (
	"context"
	"testing"
	"time"

	"stagepass/internal/seats"
	"stagepass/pkg/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	seats      []seats.Seat
	listCalls  int
	countCalls int
}

func (f *fakeRepository) ListAvailable(ctx context.Context, performanceID, scheduleID uint, location string) ([]seats.Seat, error) {
	f.listCalls++
	if location == "" {
		return f.seats, nil
	}
	var out []seats.Seat
	for _, s := range f.seats {
		if s.Location == location {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepository) CountAvailable(ctx context.Context, performanceID, scheduleID uint, location string) (int64, error) {
	f.countCalls++
	list, _ := f.ListAvailable(ctx, performanceID, scheduleID, location)
	f.listCalls--
	return int64(len(list)), nil
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		seats: []seats.Seat{
			{ID: 1, ScheduleID: 10, Number: 1, Location: seats.LocationHall},
			{ID: 2, ScheduleID: 10, Number: 2, Location: seats.LocationHall},
			{ID: 3, ScheduleID: 10, Number: 1, Location: seats.LocationBalcony},
		},
	}
}

func TestListAvailable_NoCache(t *testing.T) {
	repo := newFakeRepository()
	service := seats.NewService(repo, nil, 0)

	all, err := service.ListAvailable(context.Background(), 1, 10, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	hall, err := service.ListAvailable(context.Background(), 1, 10, seats.LocationHall)
	require.NoError(t, err)
	assert.Len(t, hall, 2)

	balcony, err := service.ListAvailable(context.Background(), 1, 10, seats.LocationBalcony)
	require.NoError(t, err)
	assert.Len(t, balcony, 1)
}

func TestListAvailable_InvalidLocation(t *testing.T) {
	repo := newFakeRepository()
	service := seats.NewService(repo, nil, 0)

	_, err := service.ListAvailable(context.Background(), 1, 10, "Orchestra")
	assert.ErrorIs(t, err, seats.ErrInvalidLocation)

	_, err = service.CountAvailable(context.Background(), 1, 10, "hall")
	assert.ErrorIs(t, err, seats.ErrInvalidLocation)

	assert.Zero(t, repo.listCalls)
	assert.Zero(t, repo.countCalls)
}

func TestCountAvailable_NoCache(t *testing.T) {
	repo := newFakeRepository()
	service := seats.NewService(repo, nil, 0)

	count, err := service.CountAvailable(context.Background(), 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = service.CountAvailable(context.Background(), 1, 10, seats.LocationBalcony)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCountAvailable_CacheMissThenStore(t *testing.T) {
	repo := newFakeRepository()
	client, mockRedis := redismock.NewClientMock()
	service := seats.NewService(repo, cache.NewService(client), 30*time.Second)

	key := "stagepass:seats:available:1:10:count:all"
	mockRedis.ExpectGet(key).RedisNil()
	mockRedis.ExpectSet(key, []byte("3"), 30*time.Second).SetVal("OK")

	count, err := service.CountAvailable(context.Background(), 1, 10, "")

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, 1, repo.countCalls)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestCountAvailable_CacheHitSkipsStore(t *testing.T) {
	repo := newFakeRepository()
	client, mockRedis := redismock.NewClientMock()
	service := seats.NewService(repo, cache.NewService(client), 30*time.Second)

	key := "stagepass:seats:available:1:10:count:Hall"
	mockRedis.ExpectGet(key).SetVal("2")

	count, err := service.CountAvailable(context.Background(), 1, 10, seats.LocationHall)

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Zero(t, repo.countCalls)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestCountAvailable_CacheErrorFallsBack(t *testing.T) {
	repo := newFakeRepository()
	client, mockRedis := redismock.NewClientMock()
	service := seats.NewService(repo, cache.NewService(client), 30*time.Second)

	key := "stagepass:seats:available:1:10:count:all"
	mockRedis.ExpectGet(key).SetErr(assert.AnError)

	count, err := service.CountAvailable(context.Background(), 1, 10, "")

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, 1, repo.countCalls)
}

func TestInvalidateSchedule(t *testing.T) {
	repo := newFakeRepository()
	client, mockRedis := redismock.NewClientMock()
	service := seats.NewService(repo, cache.NewService(client), 30*time.Second)

	pattern := "stagepass:seats:available:1:10:*"
	keys := []string{
		"stagepass:seats:available:1:10:count:all",
		"stagepass:seats:available:1:10:list:Hall",
	}
	mockRedis.ExpectKeys(pattern).SetVal(keys)
	mockRedis.ExpectDel(keys...).SetVal(2)

	service.InvalidateSchedule(context.Background(), 1, 10)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestValidLocation(t *testing.T) {
	assert.True(t, seats.ValidLocation(seats.LocationHall))
	assert.True(t, seats.ValidLocation(seats.LocationBalcony))
	assert.False(t, seats.ValidLocation(""))
	assert.False(t, seats.ValidLocation("hall"))
	assert.False(t, seats.ValidLocation("Stage"))
}
