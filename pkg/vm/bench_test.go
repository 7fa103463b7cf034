package vm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/agenthands/hexa/pkg/compiler/emitter"
	"github.com/agenthands/hexa/pkg/vm"
)

func BenchmarkVMLoop(b *testing.B) {
	// 1 + 1 + 1 ... : a long left-deep chain keeps the stack at depth two
	bc, err := emitter.Compile([]byte("1" + strings.Repeat(" + 1", 1000)))
	if err != nil {
		b.Fatal(err)
	}

	m := vm.NewMachine(io.Discard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Run(bc, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMixedOps(b *testing.B) {
	bc, err := emitter.Compile([]byte("5 + abs (!1 * 2), 0xFF & ~0x0F << 2, sqrt 2 ** 2 == 2; pi * 2"))
	if err != nil {
		b.Fatal(err)
	}

	m := vm.NewMachine(io.Discard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Run(bc, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	src := []byte("5 + abs (!1 * 2) * (3 ** 2 - 4 gcd 6) / 7")
	for i := 0; i < b.N; i++ {
		if _, err := emitter.Compile(src); err != nil {
			b.Fatal(err)
		}
	}
}
