//go:build arm64

package qkernel

import "golang.org/x/sys/cpu"

func init() {
	detectKernelTier()
}

func detectKernelTier() {
	if cpu.ARM64.HasASIMD {
		currentTier = TierWide
		externalBlockSize = 256
		return
	}
	currentTier = TierScalar
	externalBlockSize = 64
}
