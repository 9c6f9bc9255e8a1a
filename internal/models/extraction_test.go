package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewExtractionResult_PrimaryLink(t *testing.T) {
	started := time.Now().Add(-time.Second)
	links := []string{"https://cdn.example.com/a.m3u8", "https://cdn.example.com/b.m3u8"}

	result := NewExtractionResult("https://example.com/watch", links, nil, started)

	assert.Equal(t, "https://example.com/watch", result.URL)
	assert.Equal(t, links, result.Links)
	assert.Equal(t, "https://cdn.example.com/a.m3u8", result.PrimaryLink)
	assert.False(t, result.IsEmpty())
	assert.False(t, result.Timestamp.IsZero())
	assert.GreaterOrEqual(t, result.DurationMs, int64(1000))
}

func TestNewExtractionResult_Empty(t *testing.T) {
	result := NewExtractionResult("https://example.com", nil, nil, time.Now())

	assert.NotNil(t, result.Links)
	assert.Empty(t, result.Links)
	assert.Equal(t, "", result.PrimaryLink)
	assert.True(t, result.IsEmpty())
}

func TestExtractionResult_IsEmptyNil(t *testing.T) {
	var result *ExtractionResult
	assert.True(t, result.IsEmpty())
}
