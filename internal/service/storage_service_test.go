package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockUploadReportsMonotonicProgress(t *testing.T) {
	MockUploadTick = time.Millisecond
	svc := NewStorageService(newTestRepos(t), nil)

	var ticks []int
	url, err := svc.UploadImage(context.Background(), strings.NewReader("fake image bytes"), "front.jpg", 16, func(pct int) {
		ticks = append(ticks, pct)
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://"), "mock uploads resolve to stock URLs, got %s", url)
	require.NotEmpty(t, ticks)
	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i], ticks[i-1], "progress must increase")
	}
	assert.Equal(t, 100, ticks[len(ticks)-1])
}

func TestMockUploadsRotateStockImages(t *testing.T) {
	MockUploadTick = time.Millisecond
	svc := NewStorageService(newTestRepos(t), nil)

	first, err := svc.UploadImage(context.Background(), strings.NewReader("a"), "a.jpg", 1, nil)
	require.NoError(t, err)
	second, err := svc.UploadImage(context.Background(), strings.NewReader("b"), "b.jpg", 1, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestMockUploadHonorsCancellation(t *testing.T) {
	MockUploadTick = 50 * time.Millisecond
	svc := NewStorageService(newTestRepos(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.UploadImage(ctx, strings.NewReader("x"), "x.jpg", 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
