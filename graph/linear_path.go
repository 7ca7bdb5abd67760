package graph

// GetLinearPaths returns every maximal linear chain of nodes: a sequence
// v1 -> v2 -> ... where each internal edge is the unique distinct outgoing
// edge of its source and the unique distinct incoming edge of its target.
// Branching is determined by a single O(E) pass that collapses parallel
// edges down to distinct neighbor counts.
func (g *Graph) GetLinearPaths() [][]uint64 {
	n := len(g.nodes)
	outDeg := make([]int, n)
	inDeg := make([]int, n)
	soleOut := make([]int, n) // valid only when outDeg[u]==1
	soleIn := make([]int, n)  // valid only when inDeg[u]==1

	for u, nd := range g.nodes {
		outDeg[u] = len(nd.out)
		for v := range nd.out {
			soleOut[u] = v
		}
		inDeg[u] = len(nd.in)
		for w := range nd.in {
			soleIn[u] = w
		}
	}

	isStart := func(u int) bool {
		if inDeg[u] == 0 {
			return true
		}
		if inDeg[u] >= 2 {
			return true
		}
		parent := soleIn[u]
		return outDeg[parent] >= 2
	}

	visited := make([]bool, n)
	var paths [][]uint64

	walk := func(start int) []uint64 {
		path := []uint64{g.nodes[start].hash}
		visited[start] = true
		cur := start
		for outDeg[cur] == 1 {
			next := soleOut[cur]
			if inDeg[next] != 1 || visited[next] {
				break
			}
			path = append(path, g.nodes[next].hash)
			visited[next] = true
			cur = next
		}
		return path
	}

	for u := 0; u < n; u++ {
		if outDeg[u] == 0 && inDeg[u] == 0 {
			continue
		}
		if visited[u] || !isStart(u) {
			continue
		}
		paths = append(paths, walk(u))
	}

	// Remaining unvisited nodes belong to pure cycles (every node has
	// exactly one in- and one out-neighbor, none of which qualifies as a
	// start); walk each cycle once from an arbitrary member.
	for u := 0; u < n; u++ {
		if visited[u] || (outDeg[u] == 0 && inDeg[u] == 0) {
			continue
		}
		path := []uint64{g.nodes[u].hash}
		visited[u] = true
		cur := u
		for {
			next := soleOut[cur]
			if visited[next] {
				break
			}
			path = append(path, g.nodes[next].hash)
			visited[next] = true
			cur = next
		}
		paths = append(paths, path)
	}

	return paths
}
