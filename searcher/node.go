package searcher

import (
	"fmt"
	"ggp/game"
	"io"
	"strings"
)

// Node is one point of the game tree, reached from the root by a specific sequence of moves.
// Repeated states are not merged: the tree is an unrolling of the state graph.
type Node struct {
	move     game.Move // nil at the root
	state    game.State
	score    int
	children []*Node
}

func newRoot(state game.State) *Node {
	return &Node{state: state}
}

func newNode(move game.Move, state game.State) *Node {
	return &Node{move: move, state: state}
}

// newLeaf creates a node for a terminal state. Its score is final and it is never expanded.
func newLeaf(move game.Move, state game.State, score int) *Node {
	return &Node{move: move, state: state, score: score}
}

func (n *Node) Move() game.Move {
	return n.move
}

func (n *Node) State() game.State {
	return n.state
}

// Score is meaningful for terminal leaves, and for other nodes once they have been evaluated.
func (n *Node) Score() int {
	return n.score
}

func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) addChild(child *Node) {
	n.children = append(n.children, child)
}

// Size counts the nodes of the subtree rooted at n.
func (n *Node) Size() int {
	size := 0
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		stack = append(stack, node.children...)
	}
	return size
}

// Height is the number of plies between n and its deepest descendant.
func (n *Node) Height() int {
	type item struct {
		node  *Node
		depth int
	}

	height := 0
	stack := []item{{node: n}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.depth > height {
			height = it.depth
		}
		for _, child := range it.node.children {
			stack = append(stack, item{node: child, depth: it.depth + 1})
		}
	}
	return height
}

// Print writes the subtree rooted at n, one node per line, indented by depth.
func (n *Node) Print(w io.Writer) error {
	type item struct {
		node  *Node
		depth int
	}

	stack := []item{{node: n}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		line := strings.Repeat("\t", it.depth) + it.node.line() + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}

		// Push in reverse so that children are printed in order
		for i := len(it.node.children) - 1; i >= 0; i-- {
			stack = append(stack, item{node: it.node.children[i], depth: it.depth + 1})
		}
	}
	return nil
}

func (n *Node) line() string {
	return fmt.Sprintf("Node [move=%v, state=%v, score=%d]", n.move, n.state, n.score)
}

func (n *Node) String() string {
	return fmt.Sprintf("Node [move=%v, state=%v, score=%d, children=%d]", n.move, n.state, n.score, len(n.children))
}
