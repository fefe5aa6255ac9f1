//go:build rwcell_enable_padding

package opt

// PaddingMult_ scales cache-line padding inside hot structures.
// Padding is force-enabled via the rwcell_enable_padding build tag.
// Use: go build -tags=rwcell_enable_padding
const PaddingMult_ = 1
