package mmr

// AppendPeaks incrementally extends an existing peak set with new leaf
// hashes. It lets a verifier start from a checkpoint's peaks and
// extend the accumulator with new receipts without replaying the
// entire chain.
func AppendPeaks(existingPeaks []Peak, newLeafHashes []Hash) []Peak {
	stack := make([]Peak, len(existingPeaks))
	copy(stack, existingPeaks)
	for _, leaf := range newLeafHashes {
		stack = appendOne(stack, leaf)
	}
	return stack
}
