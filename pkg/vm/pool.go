package vm

import (
	"sync"

	"github.com/agenthands/hexa/pkg/core/value"
)

var machinePool = sync.Pool{
	New: func() interface{} {
		return &Machine{Stack: make([]value.Value, 0, 64)}
	},
}

// GetMachine returns a clean machine from the pool.
func GetMachine() *Machine {
	return machinePool.Get().(*Machine)
}

// PutMachine resets m and returns it to the pool. m must not be used
// afterwards.
func PutMachine(m *Machine) {
	m.Reset()
	m.Out = nil
	m.Format = nil
	machinePool.Put(m)
}
