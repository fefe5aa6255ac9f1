//go:build rwcell_cachelinesize_256

package opt

// CacheLineSize_ is forced to 256 bytes via the rwcell_cachelinesize_256
// build tag.
// Use: go build -tags=rwcell_cachelinesize_256
const CacheLineSize_ = 256
