//go:build rwcell_disable_padding

package opt

// PaddingMult_ scales cache-line padding inside hot structures.
// Padding is force-disabled via the rwcell_disable_padding build tag.
// Use: go build -tags=rwcell_disable_padding
const PaddingMult_ = 0
