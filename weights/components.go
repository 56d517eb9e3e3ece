package weights

import "sort"

// Components partitions [0,N) into connected regions of the link graph,
// treating every link as undirected. Islands form singleton components.
// Each component is sorted ascending; components are ordered by their
// smallest id.
//
// Time:   O(N + L), L = NumLinks.
// Memory: O(N + L) for the undirected view and visited flags.
func (m *Matrix) Components() [][]int {
	adj := make([][]int, m.n)
	for o, row := range m.rows {
		for d := range row {
			adj[o] = append(adj[o], d)
			adj[d] = append(adj[d], o)
		}
	}

	seen := make([]bool, m.n)
	var comps [][]int
	for i0 := 0; i0 < m.n; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}
