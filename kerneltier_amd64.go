//go:build amd64

package qkernel

import "golang.org/x/sys/cpu"

func init() {
	detectKernelTier()
}

func detectKernelTier() {
	if cpu.X86.HasAVX512F || cpu.X86.HasAVX2 {
		currentTier = TierWide
		externalBlockSize = 256
		return
	}
	currentTier = TierScalar
	externalBlockSize = 64
}
