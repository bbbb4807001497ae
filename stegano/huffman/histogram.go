package huffman

import (
	"sort"
)

// Frequency is a byte value with the number of times it occurred.
type Frequency struct {
	Symbol byte
	Count  int
}

/*
 * Histogram holds the frequency of every byte found in a text, most
 * frequent first. Equal counts keep the order in which the bytes were
 * first seen.
 */
type Histogram []Frequency

func NewHistogram(data []byte) Histogram {
	var (
		counts [256]int
		order  []byte
	)
	for _, b := range data {
		if counts[b] == 0 {
			order = append(order, b)
		}
		counts[b]++
	}

	histogram := make(Histogram, 0, len(order))
	for _, b := range order {
		histogram = append(histogram, Frequency{b, counts[b]})
	}
	sort.SliceStable(histogram, func(i, j int) bool {
		return histogram[i].Count > histogram[j].Count
	})
	return histogram
}

// Total returns the sum of all counts, i.e. the length of the text.
func (h Histogram) Total() int {
	total := 0
	for _, f := range h {
		total += f.Count
	}
	return total
}
