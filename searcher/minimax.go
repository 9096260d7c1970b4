package searcher

// Evaluate scores node and every node below it with the minimax rule, treating node as a
// maximizing ply. Every ply below alternates, regardless of which role actually moves there:
// the opponent is assumed to always minimize our score. This is exact for two-role zero-sum
// games only.
//
// Terminal goals must lie in [MinScore, MaxScore]; the accumulators start at those bounds.
func Evaluate(node *Node) int {
	score := maxValue(node)
	node.score = score
	return score
}

// maxValue returns the best score the acting role can secure from node. Childless nodes keep
// their score: terminal goals, or zero for nodes whose expansion was cut off.
func maxValue(node *Node) int {
	return evaluate(node, true)
}

// minValue returns the worst score the opponent can force from node.
func minValue(node *Node) int {
	return evaluate(node, false)
}

type frame struct {
	node       *Node
	maximizing bool
	next       int // Index of the next child to score
	best       int
}

func newFrame(node *Node, maximizing bool) frame {
	f := frame{node: node, maximizing: maximizing, best: MaxScore}
	if maximizing {
		f.best = MinScore
	}
	return f
}

func (f *frame) absorb(score int) {
	if f.maximizing {
		if score > f.best {
			f.best = score
		}
	} else if score < f.best {
		f.best = score
	}
}

// evaluate walks the subtree in post-order with an explicit stack, so deep trees cannot
// exhaust the goroutine stack. Each child's score is assigned before its parent absorbs it.
func evaluate(root *Node, maximizing bool) int {
	if len(root.children) == 0 {
		return root.score
	}

	stack := []frame{newFrame(root, maximizing)}
	for {
		top := &stack[len(stack)-1]

		if top.next < len(top.node.children) {
			child := top.node.children[top.next]
			if len(child.children) == 0 {
				top.absorb(child.score)
				top.next++
				continue
			}
			stack = append(stack, newFrame(child, !top.maximizing))
			continue
		}

		// All children scored
		score := top.best
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return score
		}

		parent := &stack[len(stack)-1]
		parent.node.children[parent.next].score = score
		parent.absorb(score)
		parent.next++
	}
}
