package searcher

// bestChild scores each child of root as a minimizing ply and returns the first child with the
// strictly highest score. Ties keep the earlier child, and a child scoring MinScore can only
// win by being first. ok is false when root has no children.
func bestChild(root *Node) (best *Node, ok bool) {
	if len(root.children) == 0 {
		return nil, false
	}

	bestIndex := 0
	bestScore := MinScore
	for i, child := range root.children {
		score := minValue(child)
		child.score = score
		if score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}
	root.score = bestScore
	return root.children[bestIndex], true
}
