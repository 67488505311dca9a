// Package rowid hands out time-ordered row identifiers. A larger id always
// means the row was appended later, which is what "row position" means for
// the order and settings tables.
package rowid

import "github.com/bwmarrin/snowflake"

// Generator produces snowflake ids for one node.
type Generator struct {
	node *snowflake.Node
}

// New creates a generator for the given node ID.
// Node ID should be unique across all instances writing to the same store (0-1023).
func New(nodeID int64) (*Generator, error) {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Generator{node: n}, nil
}

// Next returns the next id.
func (g *Generator) Next() int64 {
	return g.node.Generate().Int64()
}
