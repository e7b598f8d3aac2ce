// Package ints provides a sparse bitset for small signed integers.
package ints

const IntSizeShift = 5 + (^uint(0) >> 32 & 1)
const IntSize = 1 << IntSizeShift

// Set holds a set of ints in a window of bit chunks covering [lowItem, highItem).
type Set struct {
	lowItem, highItem int
	chunks            []uint
}

func countBits(chunk uint) int {
	result := 0
	for chunk != 0 {
		result++
		chunk &= (chunk - 1)
	}
	return result
}

func NewSet(items ...int) *Set {
	result := &Set{0, 0, []uint{}}
	if len(items) > 0 {
		result.Add(items...)
	}
	return result
}

func (s *Set) ToSlice() []int {
	bitCnt := 0
	for _, chunk := range s.chunks {
		bitCnt += countBits(chunk)
	}
	result := make([]int, bitCnt)
	item := s.lowItem
	index := 0
	for _, chunk := range s.chunks {
		for i := IntSize; i > 0; i-- {
			if chunk&1 != 0 {
				result[index] = item
				index++
			}
			item++
			chunk = chunk >> 1
		}
	}
	return result
}

func (s *Set) baseItem(item int) int {
	return item & ^(IntSize - 1)
}

func (s *Set) allocate(low, high int) {
	lowItem := s.baseItem(low)
	highItem := s.baseItem(high) + IntSize
	if lowItem >= s.lowItem && highItem <= s.highItem {
		return
	}

	if lowItem > s.lowItem {
		lowItem = s.lowItem
	}
	if highItem < s.highItem {
		highItem = s.highItem
	}

	chunkCnt := (highItem - lowItem) >> IntSizeShift
	chunks := make([]uint, chunkCnt)
	if s.lowItem != 0 || s.highItem != 0 {
		offset := (s.lowItem - lowItem) >> IntSizeShift
		copy(chunks[offset:], s.chunks)
	}
	s.chunks = chunks
	s.lowItem = lowItem
	s.highItem = highItem
}

func (s *Set) chunkIndex(item int) int {
	return (item - s.lowItem) >> IntSizeShift
}

func bitMask(item int) uint {
	return 1 << (uint(item) & (IntSize - 1))
}

func minMax(items []int) (min, max int) {
	min = items[0]
	max = items[0]
	for i := 1; i < len(items); i++ {
		item := items[i]
		if item < min {
			min = item
		}
		if item > max {
			max = item
		}
	}
	return
}

func (s *Set) Add(items ...int) *Set {
	if len(items) == 0 {
		return s
	}

	min, max := minMax(items)
	s.allocate(min, max)
	for _, item := range items {
		s.chunks[s.chunkIndex(item)] |= bitMask(item)
	}
	return s
}

func (s *Set) Contains(item int) bool {
	if item < s.lowItem || item >= s.highItem {
		return false
	}

	return (s.chunks[s.chunkIndex(item)]&bitMask(item) != 0)
}

func (s *Set) Copy() *Set {
	items := make([]uint, len(s.chunks))
	copy(items, s.chunks)
	return &Set{s.lowItem, s.highItem, items}
}

func isEmpty(chunks []uint) bool {
	for _, chunk := range chunks {
		if chunk != 0 {
			return false
		}
	}

	return true
}

func (s *Set) IsEmpty() bool {
	return isEmpty(s.chunks)
}

func (s *Set) IsEqual(t *Set) bool {
	var low, high, i int

	if s.lowItem < t.lowItem {
		low = t.lowItem
		if !isEmpty(s.chunks[:(low-s.lowItem)>>IntSizeShift]) {
			return false
		}
	} else {
		low = s.lowItem
		if !isEmpty(t.chunks[:(low-t.lowItem)>>IntSizeShift]) {
			return false
		}
	}

	if s.highItem > t.highItem {
		high = t.highItem
		i = len(s.chunks) - ((s.highItem - high) >> IntSizeShift)
		if !isEmpty(s.chunks[i:]) {
			return false
		}
	} else {
		high = s.highItem
		i = len(t.chunks) - ((t.highItem - high) >> IntSizeShift)
		if !isEmpty(t.chunks[i:]) {
			return false
		}
	}

	if high <= low {
		return true
	}

	firstIndex := (low - s.lowItem) >> IntSizeShift
	lastIndex := firstIndex + ((high - low) >> IntSizeShift)
	offset := (low - t.lowItem) >> IntSizeShift
	for i = firstIndex; i < lastIndex; i++ {
		if s.chunks[i] != t.chunks[offset] {
			return false
		}

		offset++
	}
	return true
}

// Union adds all items of t to s and returns s.
func (s *Set) Union(t *Set) *Set {
	if isEmpty(t.chunks) {
		return s
	}

	s.allocate(t.lowItem, t.highItem-1)
	offset := (t.lowItem - s.lowItem) >> IntSizeShift
	for _, chunk := range t.chunks {
		s.chunks[offset] |= chunk
		offset++
	}
	return s
}
