package container

import (
	"fmt"
	"math"

	"adamant/stegano/bits"
	"adamant/stegano/huffman"
)

// Container is a parsed container: header, prefix table and compressed content.
type Container struct {
	Header  Header
	Table   huffman.Table
	Content bits.Bits
}

// Assemble compresses data with its own prefix code.
func Assemble(data []byte) (bits.Bits, error) {
	table, err := huffman.FromText(data)
	if err != nil {
		return nil, err
	}
	return AssembleWithTable(data, table)
}

/*
 * AssembleWithTable compresses data with a given table, which may come
 * from another text. The result is header ++ table ++ content.
 */
func AssembleWithTable(data []byte, table huffman.Table) (bits.Bits, error) {
	content, err := table.Encode(data)
	if err != nil {
		return nil, err
	}
	tableBits, err := table.MarshalBits()
	if err != nil {
		return nil, err
	}
	if uint64(len(tableBits)) > math.MaxUint32 || uint64(len(content)) > math.MaxUint32 {
		return nil, fmt.Errorf("container does not fit 32 bit sizes")
	}

	header := Header{
		Version:     Version,
		TableBits:   uint32(len(tableBits)),
		ContentBits: uint32(len(content)),
	}
	result := make(bits.Bits, 0, header.TotalBits())
	result = append(result, header.MarshalBits()...)
	result = append(result, tableBits...)
	result = append(result, content...)
	return result, nil
}

/*
 * ParseContainer splits b into its sections. Bits after the sizes
 * declared in the header (pixel padding) are ignored.
 */
func ParseContainer(b bits.Bits) (*Container, error) {
	header, err := ParseHeader(b)
	if err != nil {
		return nil, err
	}
	if len(b) < header.TotalBits() {
		return nil, fmt.Errorf("%w: header declares %d bits, only %d available",
			ErrMalformedHeader, header.TotalBits(), len(b))
	}

	tableEnd := HeaderBits + int(header.TableBits)
	table, err := huffman.ParseTable(b[HeaderBits:tableEnd])
	if err != nil {
		return nil, err
	}
	return &Container{
		Header:  header,
		Table:   table,
		Content: b[tableEnd:header.TotalBits()],
	}, nil
}

// Parse returns the original data stored in b.
func Parse(b bits.Bits) ([]byte, error) {
	c, err := ParseContainer(b)
	if err != nil {
		return nil, err
	}
	return c.Decode()
}

func (c *Container) Decode() ([]byte, error) {
	return c.Table.Decode(c.Content)
}
