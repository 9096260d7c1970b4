package searcher

import (
	"ggp/experiments/metrics"
	"ggp/game"
	"time"
)

type builder struct {
	machine game.StateMachine
	role    game.Role
	now     func() time.Time
	metrics metrics.Collector
}

type pending struct {
	node  *Node
	depth int
}

// breadthFirst expands the tree layer by layer until deadline passes or no node is left to
// expand. A zero deadline means no bound, which only terminates for finite acyclic games.
//
// The deadline is checked between nodes only, so a node with many successors may overshoot it
// by the cost of expanding that one node.
func (b *builder) breadthFirst(initial game.State, deadline time.Time) (*Node, error) {
	root := newRoot(initial)
	b.metrics.AddNode(false, 0)

	queue := []pending{{node: root}}
	for len(queue) > 0 {
		if !deadline.IsZero() && !b.now().Before(deadline) {
			b.metrics.SetDeadlineHit(true)
			break
		}

		next := queue[0]
		queue[0] = pending{}
		queue = queue[1:]

		children, err := b.expand(next.node, next.depth)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			queue = append(queue, pending{node: child, depth: next.depth + 1})
		}
	}

	return root, nil
}

// depthBounded expands the tree depth-first, at most maxDepth plies below the root. Nodes at the
// depth limit stay childless even when they are not terminal. A negative maxDepth means no bound.
func (b *builder) depthBounded(initial game.State, maxDepth int) (*Node, error) {
	root := newRoot(initial)
	b.metrics.AddNode(false, 0)

	type frame struct {
		pending
		remaining int
	}

	stack := []frame{{pending: pending{node: root}, remaining: maxDepth}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.remaining == 0 {
			continue
		}

		children, err := b.expand(top.node, top.depth)
		if err != nil {
			return nil, err
		}
		// Push in reverse so that the first move is explored first
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				pending:   pending{node: children[i], depth: top.depth + 1},
				remaining: top.remaining - 1,
			})
		}
	}

	return root, nil
}

// expand attaches one child per (move, successor) pair to parent. Terminal successors become
// scored leaves; the other children are returned, in order, for further expansion.
func (b *builder) expand(parent *Node, depth int) ([]*Node, error) {
	nextStates, err := b.machine.NextStates(parent.state, b.role)
	if err != nil {
		return nil, err
	}
	b.metrics.AddExpansion()

	var expandable []*Node
	for _, successors := range nextStates {
		for _, state := range successors.States {
			var child *Node
			if b.machine.IsTerminal(state) {
				goal, err := b.machine.Goal(state, b.role)
				if err != nil {
					return nil, err
				}
				child = newLeaf(successors.Move, state, goal)
				b.metrics.AddNode(true, depth+1)
			} else {
				child = newNode(successors.Move, state)
				expandable = append(expandable, child)
				b.metrics.AddNode(false, depth+1)
			}
			parent.addChild(child)
		}
	}
	return expandable, nil
}
