package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:         true,
		WindowDuration:  time.Minute,
		DefaultRequests: 60,
		PublicRequests:  100,
		BookingRequests: 20,
		HealthRequests:  120,
	}
}

// Eval args carry wall-clock timestamps, so expectations match on any args.
func matchAnyArgs(expected, actual []interface{}) error {
	return nil
}

func TestIsAllowed_UnderLimit(t *testing.T) {
	client, mockRedis := redismock.NewClientMock()
	limiter := NewRateLimiter(client, testConfig())

	key := "stagepass:ratelimit:10.0.0.1:booking"
	mockRedis.CustomMatch(matchAnyArgs).
		ExpectEval(slidingWindowScript, []string{key}, 0, 0, 0, 0).
		SetVal([]interface{}{int64(1), int64(5), int64(15)})

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeBooking)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, 15, result.Remaining)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestIsAllowed_OverLimitBlocks(t *testing.T) {
	client, mockRedis := redismock.NewClientMock()
	limiter := NewRateLimiter(client, testConfig())

	// Window already holds 20 booking requests: the script refuses the
	// request, and the raw int64 reply must not parse as zero.
	key := "stagepass:ratelimit:10.0.0.1:booking"
	mockRedis.CustomMatch(matchAnyArgs).
		ExpectEval(slidingWindowScript, []string{key}, 0, 0, 0, 0).
		SetVal([]interface{}{int64(0), int64(20), int64(0)})

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeBooking)

	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 20, result.Limit)
	assert.Zero(t, result.Remaining)
}

func TestIsAllowed_LastSlotAdmitted(t *testing.T) {
	client, mockRedis := redismock.NewClientMock()
	limiter := NewRateLimiter(client, testConfig())

	// The request that exhausts the window is still admitted
	key := "stagepass:ratelimit:10.0.0.1:booking"
	mockRedis.CustomMatch(matchAnyArgs).
		ExpectEval(slidingWindowScript, []string{key}, 0, 0, 0, 0).
		SetVal([]interface{}{int64(1), int64(20), int64(0)})

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeBooking)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Zero(t, result.Remaining)
}

func TestIsAllowed_MalformedReply(t *testing.T) {
	client, mockRedis := redismock.NewClientMock()
	limiter := NewRateLimiter(client, testConfig())

	key := "stagepass:ratelimit:10.0.0.1:default"
	mockRedis.CustomMatch(matchAnyArgs).
		ExpectEval(slidingWindowScript, []string{key}, 0, 0, 0, 0).
		SetVal([]interface{}{"not", "numbers", "here"})

	_, err := limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeDefault)

	assert.Error(t, err)
}

func TestIsAllowed_WhitelistedIPBypasses(t *testing.T) {
	cfg := testConfig()
	cfg.WhitelistedIPs = []string{"127.0.0.1"}
	client, _ := redismock.NewClientMock()
	limiter := NewRateLimiter(client, cfg)

	result, err := limiter.IsAllowed(context.Background(), "127.0.0.1", RateLimitTypeBooking)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 20, result.Remaining)
}

func TestIsAllowed_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	client, _ := redismock.NewClientMock()
	limiter := NewRateLimiter(client, cfg)

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeDefault)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 60, result.Remaining)
}

func TestGetRateLimitType(t *testing.T) {
	cases := []struct {
		path   string
		method string
		want   RateLimitType
	}{
		{"/health", "GET", RateLimitTypeHealth},
		{"/ping", "GET", RateLimitTypeHealth},
		{"/api/v1/tickets", "POST", RateLimitTypeBooking},
		{"/api/v1/tickets/:ticketId/return", "PUT", RateLimitTypeBooking},
		{"/api/v1/tickets/:ticketId", "DELETE", RateLimitTypeBooking},
		{"/api/v1/tickets", "GET", RateLimitTypePublic},
		{"/api/v1/performances", "GET", RateLimitTypePublic},
		{"/api/v1/performances/:performanceId/schedules/:scheduleId/seats", "GET", RateLimitTypePublic},
		{"/somewhere/else", "GET", RateLimitTypeDefault},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, getRateLimitType(tc.path, tc.method), "%s %s", tc.method, tc.path)
	}
}
