// SPDX-License-Identifier: MIT
// Package: hamwalk/builder
//
// impl_petersen.go — the Petersen graph, the smallest hypohamiltonian graph.

package builder

const (
	petersenOuter = 5
	petersenOrder = 2 * petersenOuter
)

// Petersen builds the Petersen graph: outer 5-cycle 0..4, spokes i -> i+5,
// inner pentagram 5+i -> 5+(i+2)%5. It has a Hamiltonian path but no
// Hamiltonian cycle, which makes it a useful negative fixture.
func Petersen() Constructor {
	return func(_ builderConfig) (Topology, error) {
		edges := ring(petersenOuter)
		for i := 0; i < petersenOuter; i++ {
			edges = append(edges, [2]int{i, i + petersenOuter})
		}
		for i := 0; i < petersenOuter; i++ {
			edges = append(edges, [2]int{petersenOuter + i, petersenOuter + (i+2)%petersenOuter})
		}

		return Topology{N: petersenOrder, Edges: edges}, nil
	}
}
