package qkernel

import "testing"

func TestKernelTierSelectedAtInit(t *testing.T) {
	if ExternalBlockSize() < 1 {
		t.Fatalf("ExternalBlockSize() = %d, want >= 1", ExternalBlockSize())
	}
	switch CurrentKernelTier() {
	case TierScalar, TierWide:
	default:
		t.Fatalf("unexpected kernel tier %v", CurrentKernelTier())
	}
}
