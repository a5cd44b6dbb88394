package properties

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mvnrepo/internal/core/ports"
)

// NodeID is the unique identifier for the property file reader Graft node.
const NodeID graft.ID = "adapter.property_file_reader"

func init() {
	graft.Register(graft.Node[ports.PropertyFileReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PropertyFileReader, error) {
			return NewFileReader(), nil
		},
	})
}
