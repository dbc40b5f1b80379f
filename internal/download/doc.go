// Package download provides the download orchestration for fanbox-dl.
//
// # Manager
//
// The Manager sequences the whole run: fetch the supporting-plan list,
// report a summary, then process artists strictly one after another.
// Each artist that survives the ignore rules gets its own worker pool.
//
// # Worker pool
//
// One artist's accessible posts are queued up front in a buffered channel
// which is then closed; a fixed number of workers drain it until empty.
// Within a post, files download sequentially in source order; across
// posts there is no ordering guarantee. A failed post or file is logged
// and abandoned without retries; its siblings continue.
//
// # Interrupt safety
//
// Every worker registers its current destination path in an Inflight
// registry before writing and clears it after. On termination the signal
// handler calls CleanupPartials, which deletes any registered file that
// still exists, so an interrupted run never leaves a truncated file
// posing as a completed download.
package download
