package huffman

import (
	"adamant/stegano/bits"
)

// Node is either a leaf holding a symbol or an internal node with two children.
type Node struct {
	Symbol byte
	Weight int
	Left   *Node
	Right  *Node
}

func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

/*
 * BuildTree joins the histogram into a single huffman tree.
 *
 * The forest is kept sorted by descending weight. On every step the two
 * last (lightest) nodes are removed; the last one becomes the left child.
 * The joined node goes in front of the first node which is not heavier
 * than it, so ties are decided by position only and every implementation
 * produces the same codes.
 */
func BuildTree(h Histogram) (*Node, error) {
	if len(h) == 0 {
		return nil, ErrInvalidInput
	}

	forest := make([]*Node, 0, len(h))
	for _, f := range h {
		forest = append(forest, &Node{Symbol: f.Symbol, Weight: f.Count})
	}
	// the histogram is expected sorted, but a hand-made one may be not.
	sortForest(forest)

	for len(forest) > 1 {
		size := len(forest) - 2
		a, b := forest[size+1], forest[size]
		forest = forest[:size]

		tree := &Node{Weight: a.Weight + b.Weight, Left: a, Right: b}

		i := 0
		for i < size && forest[i].Weight > tree.Weight {
			i++
		}
		forest = append(forest, nil)
		copy(forest[i+1:], forest[i:])
		forest[i] = tree
	}
	return forest[0], nil
}

// insertion sort, stable and descending by weight.
func sortForest(forest []*Node) {
	for i := 1; i < len(forest); i++ {
		for j := i; j > 0 && forest[j-1].Weight < forest[j].Weight; j-- {
			forest[j-1], forest[j] = forest[j], forest[j-1]
		}
	}
}

/*
 * Codes walks the tree depth first: a left edge adds 0, a right edge adds 1.
 * A tree made of a single leaf gets the one-bit code 0.
 */
func Codes(root *Node) Table {
	table := Table{}
	if root == nil {
		return table
	}
	if root.IsLeaf() {
		table[root.Symbol] = bits.Bits{bits.Zero}
		return table
	}

	var traverse func(n *Node, code bits.Bits)
	traverse = func(n *Node, code bits.Bits) {
		if n.IsLeaf() {
			table[n.Symbol] = code.Clone()
			return
		}
		traverse(n.Left, append(code, bits.Zero))
		traverse(n.Right, append(code, bits.One))
	}
	traverse(root, bits.Bits{})
	return table
}
