package mmr

import "errors"

// ErrEmptyPeaks is returned when an operation that requires at least
// one peak is given none.
var ErrEmptyPeaks = errors.New("mmr: peak list is empty")

// Peak is one mountain in the range: a perfect binary subtree of the
// given height, identified by its root hash. Height 0 is a bare leaf.
type Peak struct {
	Height int
	Hash   Hash
}

// BuildPeaks produces the peak list for a sequence of leaf hashes,
// appended left to right with same-height merging: whenever the top of
// the peak stack has the same height as the hash just pushed, the two
// are combined into their parent and the merge repeats.
func BuildPeaks(leafHashes []Hash) []Peak {
	var stack []Peak
	for _, lh := range leafHashes {
		stack = appendOne(stack, lh)
	}
	return stack
}

func appendOne(stack []Peak, leaf Hash) []Peak {
	curHeight := 0
	cur := leaf
	for len(stack) > 0 && stack[len(stack)-1].Height == curHeight {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur = NodeHash(top.Hash, cur)
		curHeight++
	}
	return append(stack, Peak{Height: curHeight, Hash: cur})
}

// BagPeaks folds the peak list into a single root by combining peaks
// right to left: the rightmost (smallest) peak seeds the bag, and each
// peak to its left is combined in as the new left sibling.
func BagPeaks(peaks []Peak) (Hash, error) {
	if len(peaks) == 0 {
		return Hash{}, ErrEmptyPeaks
	}
	bag := peaks[len(peaks)-1].Hash
	for i := len(peaks) - 2; i >= 0; i-- {
		bag = NodeHash(peaks[i].Hash, bag)
	}
	return bag, nil
}

// PeakPlanEntry describes one peak in a size's left-to-right
// decomposition: its height and how many leaves it covers.
type PeakPlanEntry struct {
	Height int
	Count  int
}

// PeakPlan decomposes size into descending powers of two. For example
// size 17 decomposes into [{4,16},{0,1}] (heights 4 and 0, covering 16
// and 1 leaves respectively).
func PeakPlan(size int) []PeakPlanEntry {
	var plan []PeakPlanEntry
	n := size
	for n > 0 {
		h := highestBit(n)
		count := 1 << h
		plan = append(plan, PeakPlanEntry{Height: h, Count: count})
		n -= count
	}
	return plan
}

func highestBit(n int) int {
	h := 0
	for (1 << (h + 1)) <= n {
		h++
	}
	return h
}

// FindPeakForLeaf locates the peak subtree containing leafIndex within
// an MMR of the given size, returning the peak's index in the
// left-to-right peak list, the index of its first leaf, and its
// height.
func FindPeakForLeaf(size, leafIndex int) (peakIndex, peakStart, peakHeight int, err error) {
	if leafIndex < 0 || leafIndex >= size {
		return 0, 0, 0, errors.New("mmr: leaf index out of range")
	}
	plan := PeakPlan(size)
	start := 0
	for i, entry := range plan {
		if leafIndex >= start && leafIndex < start+entry.Count {
			return i, start, entry.Height, nil
		}
		start += entry.Count
	}
	return 0, 0, 0, errors.New("mmr: unable to locate peak")
}
