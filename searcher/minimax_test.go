package searcher

import (
	"ggp/game/table"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func build(t *testing.T, machine *table.Machine) *Node {
	root, err := newBuilder(machine, player, time.Now).breadthFirst(machine.InitialState(), time.Time{})
	require.NoError(t, err)
	return root
}

func TestEvaluateBaseCase(t *testing.T) {
	t.Run("childless nodes keep their score", func(t *testing.T) {
		node := newLeaf(table.Move("a"), table.State("t"), 42)

		require.Equal(t, 42, maxValue(node))
		require.Equal(t, 42, minValue(node))
		require.Equal(t, 42, node.Score())
	})

	t.Run("unexpanded nodes count as zero", func(t *testing.T) {
		node := newNode(table.Move("a"), table.State("s"))

		require.Zero(t, maxValue(node))
		require.Zero(t, minValue(node))
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("alternating max and min plies", func(t *testing.T) {
		root := build(t, threePly())

		got := Evaluate(root)

		require.Equal(t, 50, got, "Should take the best of the opponent's worst replies")
		require.Equal(t, 50, root.Score())
		require.Equal(t, 30, root.Children()[0].Score())
		require.Equal(t, 50, root.Children()[1].Score())
		require.Equal(t, 80, root.Children()[0].Children()[0].Score(), "Terminal scores should not change")
	})

	t.Run("minimizing from the root", func(t *testing.T) {
		root := build(t, threePly())

		// min over a and b of the best own reply
		require.Equal(t, 60, minValue(root))
		require.Equal(t, 80, root.Children()[0].Score())
		require.Equal(t, 60, root.Children()[1].Score())
	})

	t.Run("evaluating twice gives the same scores", func(t *testing.T) {
		root := build(t, threePly())

		first := Evaluate(root)
		scores := []int{root.Children()[0].Score(), root.Children()[1].Score()}
		second := Evaluate(root)

		require.Equal(t, first, second)
		require.Equal(t, scores, []int{root.Children()[0].Score(), root.Children()[1].Score()})
	})

	t.Run("maximizing accumulator starts at the lowest score", func(t *testing.T) {
		machine := table.New("root", player).
			Move("root", player, "a", "t0").
			Terminal("t0", goal(0))
		root := build(t, machine)

		require.Zero(t, Evaluate(root))
	})

	t.Run("minimizing accumulator starts at the highest score", func(t *testing.T) {
		machine := table.New("root", player).
			Move("root", player, "a", "s1").
			Move("s1", player, "b", "t100").
			Terminal("t100", goal(100))
		root := build(t, machine)

		require.Equal(t, 100, Evaluate(root))
	})

	t.Run("deep trees", func(t *testing.T) {
		const depth = 100000
		root := newRoot(table.State("root"))
		node := root
		for i := 0; i < depth; i++ {
			child := newNode(table.Move("m"), table.State("s"))
			node.addChild(child)
			node = child
		}
		node.addChild(newLeaf(table.Move("m"), table.State("t"), 70))

		require.Equal(t, 70, Evaluate(root))
		require.Equal(t, 70, root.Children()[0].Score())
	})
}

func TestBestChild(t *testing.T) {
	t.Run("picking the best scoring move", func(t *testing.T) {
		root := build(t, twoPly())

		best, ok := bestChild(root)

		require.True(t, ok)
		require.Equal(t, table.Move("a"), best.Move())
		require.Equal(t, 80, root.Children()[0].Score())
		require.Equal(t, 20, root.Children()[1].Score())
	})

	t.Run("scoring each child as a minimizing ply", func(t *testing.T) {
		root := build(t, threePly())

		best, ok := bestChild(root)

		require.True(t, ok)
		require.Equal(t, table.Move("b"), best.Move())
		require.Equal(t, 50, root.Score())
	})

	t.Run("ties keep the first move", func(t *testing.T) {
		machine := table.New("root", player).
			Move("root", player, "a", "t1").
			Move("root", player, "b", "t2").
			Terminal("t1", goal(0)).
			Terminal("t2", goal(0))
		root := build(t, machine)

		best, ok := bestChild(root)

		require.True(t, ok)
		require.Equal(t, table.Move("a"), best.Move())
	})

	t.Run("later equal scores do not displace the leader", func(t *testing.T) {
		machine := table.New("root", player).
			Move("root", player, "a", "t10").
			Move("root", player, "b", "t70").
			Move("root", player, "c", "t70b").
			Terminal("t10", goal(10)).
			Terminal("t70", goal(70)).
			Terminal("t70b", goal(70))
		root := build(t, machine)

		best, _ := bestChild(root)

		require.Equal(t, table.Move("b"), best.Move())
	})

	t.Run("root without children", func(t *testing.T) {
		best, ok := bestChild(newRoot(table.State("root")))

		require.False(t, ok)
		require.Nil(t, best)
	})
}
