//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !rwcell_disable_padding && !rwcell_enable_padding

package opt

// PaddingMult_ scales cache-line padding inside hot structures.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
const PaddingMult_ = 0
