package graph

import (
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/mappergo/codec"
	"github.com/hupe1980/mappergo/cover"
)

// graphDTO is the serialized shape of a Graph. Adjacency is derived, so only
// nodes and edges are stored.
type graphDTO struct {
	Nodes []nodeDTO `json:"nodes"`
	Edges []Edge    `json:"edges"`
}

type nodeDTO struct {
	ID      int       `json:"id"`
	Cell    []int     `json:"cell"`
	Members []int     `json:"members"`
	Mean    []float64 `json:"mean"`
}

// Save encodes the graph with c (codec.Default if nil) and writes it through
// the given compression scheme.
func (g *Graph) Save(w io.Writer, c codec.Codec, comp codec.Compression) error {
	if c == nil {
		c = codec.Default
	}

	dto := graphDTO{
		Nodes: make([]nodeDTO, len(g.nodes)),
		Edges: g.edges,
	}
	for i, n := range g.nodes {
		dto.Nodes[i] = nodeDTO{
			ID:      n.id,
			Cell:    n.cell,
			Members: n.Members(),
			Mean:    n.mean,
		}
	}

	data, err := c.Marshal(dto)
	if err != nil {
		return fmt.Errorf("graph: encode with %s: %w", c.Name(), err)
	}

	cw, err := codec.NewWriter(w, comp)
	if err != nil {
		return err
	}
	if _, err := cw.Write(data); err != nil {
		cw.Close()
		return fmt.Errorf("graph: write: %w", err)
	}
	return cw.Close()
}

// Load reads a graph written by Save using the same codec and compression.
func Load(r io.Reader, c codec.Codec, comp codec.Compression) (*Graph, error) {
	if c == nil {
		c = codec.Default
	}

	cr, err := codec.NewReader(r, comp)
	if err != nil {
		return nil, err
	}
	defer cr.Close()

	data, err := io.ReadAll(cr)
	if err != nil {
		return nil, fmt.Errorf("graph: read: %w", err)
	}

	var dto graphDTO
	if err := c.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("graph: decode with %s: %w", c.Name(), err)
	}

	nodes := make([]Node, len(dto.Nodes))
	for i, nd := range dto.Nodes {
		members := roaring.New()
		for _, m := range nd.Members {
			members.Add(uint32(m))
		}
		nodes[i] = NewNode(nd.ID, cover.MultiIndex(nd.Cell), members, nd.Mean)
	}
	return New(nodes, dto.Edges)
}
