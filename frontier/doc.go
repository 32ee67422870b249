// Package frontier implements the priority queue of partial paths that
// best-first strategies pop from.
//
// Entries are ordered by (Priority, accumulated Cost, insertion sequence):
//
//   - Lower Priority first.
//   - Equal priorities fall back to the path cost, lower first by default
//     (LowerCostFirst) or higher first (HigherCostFirst, which prefers
//     deeper paths when g+h ties).
//   - Remaining ties pop in insertion order, which makes every search
//     reproducible for the same problem and options.
//
// The queue never deduplicates; strategies implement lazy decrease-key by
// skipping stale entries when they are popped.
//
// Complexity: Push/Pop O(log n), Truncate and Drain O(n log n).
package frontier
