package eventsource

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/sitegrab/internal/domain"
)

func TestReadJSONLines(t *testing.T) {
	input := `# captured from devtools
{"type":"main_frame","tabId":3,"url":"https://example.com/","timestamp":1700000000000}

{"type":"stylesheet","tabId":3,"url":"https://example.com/site.css"}
  {"type":"image","tabId":4,"url":"data:image/png;base64,AAAA"}
`
	var events []domain.RequestEvent
	count, err := ReadJSONLines(context.Background(), strings.NewReader(input), func(event domain.RequestEvent) {
		events = append(events, event)
	})
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	require.Len(t, events, 3)
	assert.Equal(t, domain.ResourceMainFrame, events[0].ResourceType)
	assert.Equal(t, 3, events[0].TabID)
	assert.Equal(t, "https://example.com/site.css", events[1].URL)
	assert.Equal(t, 4, events[2].TabID)
}

func TestReadJSONLines_InvalidLine(t *testing.T) {
	input := `{"type":"script","tabId":1,"url":"https://example.com/a.js"}
not json
{"type":"script","tabId":1,"url":"https://example.com/b.js"}
`
	var seen int
	count, err := ReadJSONLines(context.Background(), strings.NewReader(input), func(domain.RequestEvent) { seen++ })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, seen)
}

func TestReadJSONLines_MissingURL(t *testing.T) {
	_, err := ReadJSONLines(context.Background(), strings.NewReader(`{"type":"script","tabId":1}`), func(domain.RequestEvent) {})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no url")
}

func TestReadJSONLines_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadJSONLines(ctx, strings.NewReader(`{"url":"https://example.com/"}`), func(domain.RequestEvent) {})

	assert.ErrorIs(t, err, context.Canceled)
}
