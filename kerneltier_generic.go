//go:build !amd64 && !arm64

package qkernel

func init() {
	currentTier = TierScalar
	externalBlockSize = 64
}
