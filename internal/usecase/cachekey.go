package usecase

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/xxh3"
)

// Cache keys shared between usecases.
var genresCacheKey = cacheKey("genres")

// cacheKey builds a cache key from a namespace and the parts of a lookup.
// Parts are hashed as given so user input never reaches the backend verbatim;
// callers fold case themselves where the lookup is case-insensitive.
func cacheKey(namespace string, parts ...string) string {
	h := xxh3.HashString128(strings.Join(parts, "\x00")).Bytes()
	return namespace + ":" + hex.EncodeToString(h[:])
}
