package memory

import (
	"testing"

	"github.com/mesh-intelligence/cafe/internal/storetest"
	"github.com/mesh-intelligence/cafe/pkg/types"
)

func TestBackendConformance(t *testing.T) {
	storetest.Run(t, types.BackendMemory, func() types.Store { return NewBackend() })
}
