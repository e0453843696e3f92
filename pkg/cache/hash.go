package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKeyOpts are the render settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Detailed  bool   `json:"detailed"`
	Highlight []int  `json:"highlight,omitempty"`
}

// ArtifactKey returns the key of a rendered artifact for the chart whose
// document hashes to chartHash. The key type (see [KeyType]) is
// "artifact:<format>". Highlight order does not affect the key.
func ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	opts.Highlight = slices.Sorted(slices.Values(opts.Highlight))
	return hashKey("artifact:"+opts.Format, chartHash, opts)
}
