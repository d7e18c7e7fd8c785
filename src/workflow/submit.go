package workflow

import "context"

// Submitter is the downstream engine this core hands workflow names to. The
// engine deduplicates by name: resubmitting an identical name is a no-op.
// No implementation lives in this repository; the surrounding orchestration
// provides one.
type Submitter interface {
	Submit(ctx context.Context, name string, params map[string]string) error
}
