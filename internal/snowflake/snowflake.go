// Package snowflake hands out the int64 row IDs used by the alert, crawl
// job and run stats tables. A single process-wide node is initialized at
// startup before any repository runs.
package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

// Init sets up the process-wide ID node. The node ID must be unique across
// instances sharing a database (0-1023).
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	node = n
	return nil
}

// NextID returns a new unique ID. Init must have been called first.
func NextID() int64 {
	return node.Generate().Int64()
}
