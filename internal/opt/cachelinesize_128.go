//go:build rwcell_cachelinesize_128

package opt

// CacheLineSize_ is forced to 128 bytes via the rwcell_cachelinesize_128
// build tag.
// Use: go build -tags=rwcell_cachelinesize_128
const CacheLineSize_ = 128
