package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sasank-sasi/Vertx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProvider struct {
	name     string
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeProvider) Close() error { return nil }

func (f *fakeProvider) GetModelInfo() map[string]interface{} {
	return map[string]interface{}{"model": f.name}
}

func newTestMultiClient(maxFailures int, fakes ...*fakeProvider) *MultiProviderClient {
	providers := make([]*RateLimitedProvider, 0, len(fakes))
	for _, f := range fakes {
		providers = append(providers, NewRateLimitedProvider(f, 600, zap.NewNop()))
	}
	return &MultiProviderClient{
		providers:    providers,
		logger:       zap.NewNop(),
		failureCount: make(map[int]int),
		maxFailures:  maxFailures,
	}
}

func TestMultiProviderPrimarySucceeds(t *testing.T) {
	primary := &fakeProvider{name: "primary", response: "ok"}
	backup := &fakeProvider{name: "backup", response: "backup"}
	client := newTestMultiClient(3, primary, backup)

	result, err := client.Complete(context.Background(), models.CompletionRequest{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Zero(t, backup.calls)
}

func TestMultiProviderFailsOverOnRateLimit(t *testing.T) {
	primary := &fakeProvider{name: "primary", err: errors.New("429 too many requests")}
	backup := &fakeProvider{name: "backup", response: "from backup"}
	client := newTestMultiClient(3, primary, backup)

	result, err := client.Complete(context.Background(), models.CompletionRequest{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "from backup", result)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, backup.calls)
}

func TestMultiProviderAllFail(t *testing.T) {
	a := &fakeProvider{name: "a", err: errors.New("quota exceeded")}
	b := &fakeProvider{name: "b", err: errors.New("rate limit hit")}
	client := newTestMultiClient(3, a, b)

	_, err := client.Complete(context.Background(), models.CompletionRequest{Prompt: "p"})
	assert.EqualError(t, err, "all providers failed")
}

func TestMultiProviderSwitchesAfterMaxFailures(t *testing.T) {
	// A non-rate-limit error only triggers a switch once the failure
	// budget is exhausted.
	flaky := &fakeProvider{name: "flaky", err: errors.New("connection reset")}
	backup := &fakeProvider{name: "backup", response: "ok"}
	client := newTestMultiClient(2, flaky, backup)

	// First attempt stays on the flaky provider; the second hits the
	// budget and switches, but the attempt loop is already exhausted.
	_, err := client.Complete(context.Background(), models.CompletionRequest{Prompt: "p"})
	require.Error(t, err)
	assert.Equal(t, 2, flaky.calls)
	assert.Zero(t, backup.calls)

	// The switch stuck: the next call goes straight to the backup.
	result, err := client.Complete(context.Background(), models.CompletionRequest{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 2, flaky.calls)
	assert.Equal(t, 1, backup.calls)
}

func TestMultiProviderResetsFailureCountOnSuccess(t *testing.T) {
	p := &fakeProvider{name: "p", response: "fine"}
	client := newTestMultiClient(2, p)

	client.failureCount[0] = 1
	_, err := client.Complete(context.Background(), models.CompletionRequest{Prompt: "p"})
	require.NoError(t, err)
	assert.Zero(t, client.failureCount[0])
}

func TestIsRateLimitError(t *testing.T) {
	assert.True(t, isRateLimitError(errors.New("API error 429: slow down")))
	assert.True(t, isRateLimitError(errors.New("daily quota exhausted")))
	assert.True(t, isRateLimitError(errors.New("rate limit exceeded")))
	assert.False(t, isRateLimitError(errors.New("connection refused")))
	assert.False(t, isRateLimitError(nil))
}

func TestNewMultiProviderClientRequiresProviders(t *testing.T) {
	_, err := NewMultiProviderClient(MultiProviderConfig{}, zap.NewNop())
	assert.Error(t, err)
}

func TestGetModelInfoAddsProviderIndexes(t *testing.T) {
	client := newTestMultiClient(3, &fakeProvider{name: "llama"}, &fakeProvider{name: "other"})

	info := client.GetModelInfo()
	assert.Equal(t, "llama", info["model"])
	assert.Equal(t, 0, info["provider_index"])
	assert.Equal(t, 2, info["total_providers"])
}

func TestRateLimiterBlocksWhenExhausted(t *testing.T) {
	limiter := NewRateLimiter(600)

	require.NoError(t, limiter.Wait(context.Background()))

	limiter.tokens = 0
	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), limiter.refillRate)
}

func TestRateLimiterWaitCancelled(t *testing.T) {
	limiter := NewRateLimiter(1)
	limiter.tokens = 0
	// Push the refill horizon out so Wait has to block.
	limiter.lastRefill = time.Now()
	limiter.minuteResetTime = time.Now().Add(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
