// Package idhash computes a fast 64-bit prefilter hash for sequence IDs.
//
// It is used only to narrow down candidate rows during row-selective
// decompression (container.DecompressRows): exact string equality still
// decides membership, so a hash collision never produces a wrong answer,
// only a wasted string comparison. Adapted from mebo's internal/hash
// package, which uses the same xxHash64 for O(1) metric-ID lookups; msac
// has no need for mebo's accompanying collision tracker since a collision
// here costs nothing beyond a redundant comparison.
package idhash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of id.
func Sum64(id string) uint64 {
	return xxhash.Sum64String(id)
}
