package eventsource

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/renato0307/sitegrab/internal/domain"
)

// maxLineBytes bounds a single JSON line; data: URLs can be long
const maxLineBytes = 4 * 1024 * 1024

// ReadJSONLines decodes one domain.RequestEvent per line from r and passes
// each to fn in order. Blank lines and lines starting with '#' are skipped.
func ReadJSONLines(ctx context.Context, r io.Reader, fn func(domain.RequestEvent)) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	count := 0
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return count, err
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var event domain.RequestEvent
		if err := json.Unmarshal([]byte(text), &event); err != nil {
			return count, fmt.Errorf("line %d: invalid request event: %w", line, err)
		}
		if event.URL == "" {
			return count, fmt.Errorf("line %d: request event has no url", line)
		}

		fn(event)
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("failed to read events: %w", err)
	}

	return count, nil
}
