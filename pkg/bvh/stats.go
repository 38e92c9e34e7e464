package bvh

// TreeStats summarizes the shape of a built hierarchy.
type TreeStats struct {
	TotalNodes   int
	LeafNodes    int
	MaxDepth     int
	AvgLeafDepth float64
	Primitives   int
	MaxLeafPrims int
}

// Stats walks the arena and summarizes the tree shape.
func (b *BVH) Stats() TreeStats {
	stats := TreeStats{}
	if b.root < 0 {
		return stats
	}

	depthSum := 0
	var walk func(idx int32, depth int)
	walk = func(idx int32, depth int) {
		n := &b.nodes[idx]
		stats.TotalNodes++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}

		if n.isLeaf() {
			stats.LeafNodes++
			stats.Primitives += int(n.primCount)
			depthSum += depth
			if int(n.primCount) > stats.MaxLeafPrims {
				stats.MaxLeafPrims = int(n.primCount)
			}
			return
		}
		if n.left >= 0 {
			walk(n.left, depth+1)
		}
		if n.right >= 0 {
			walk(n.right, depth+1)
		}
	}
	walk(b.root, 0)

	if stats.LeafNodes > 0 {
		stats.AvgLeafDepth = float64(depthSum) / float64(stats.LeafNodes)
	}
	return stats
}
