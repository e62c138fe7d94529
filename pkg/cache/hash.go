package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a cache key as "prefix:hash(parts...)". RenderKey feeds it
// the render settings, so any change to fields, meta, color or format lands
// in a different entry than the same treebank rendered with other settings.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full 64-hex-char SHA-256; render keys must never collide across inputs.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash returns the SHA-256 content hash of a treebank as a 64-character hex
// string. The serve command uses it to detect whether the watched file
// changed between requests.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
