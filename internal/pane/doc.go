// Package pane implements a bounded, selectable, append-only log pane core.
//
// The pipeline is: producer goroutines enqueue lines into an IngestQueue;
// once per frame a single render goroutine drains a capped batch into the
// Store, evicts the oldest lines when the store exceeds its ceiling, brings
// line heights and cumulative offsets up to date (incrementally when only
// new lines arrived, fully otherwise), and publishes draw commands to a
// Surface. Pointer events feed a SelectionController that keeps a selection
// consistent across eviction.
//
// Only IngestQueue crosses goroutines. Store, Engine and SelectionController
// are owned exclusively by the render goroutine and need no locking among
// themselves.
package pane
