package tree

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/benz9527/xcontainer/lib/xlog"
)

func newCorruptibleTree(n int) *rbTree[int] {
	tree := NewOrderedRBTree[int]().(*rbTree[int])
	tree.InsertMany(lo.Range(n)...)
	return tree
}

func TestValidate_Violations(t *testing.T) {
	t.Run("red violation", func(tt *testing.T) {
		tree := newCorruptibleTree(16)
		require.NoError(tt, RedViolationValidate[int](tree))
		// Paint a red node's parent red.
		var red *rbNode[int]
		for x := tree.header.left; x != tree.header; x = succ(tree.header, x) {
			if x.isRed() && !tree.isRoot(x.parent) {
				red = x
				break
			}
		}
		require.NotNil(tt, red)
		red.parent.color = Red
		require.ErrorIs(tt, RedViolationValidate[int](tree), ErrRBTreeRedViolation)
	})
	t.Run("black violation", func(tt *testing.T) {
		tree := newCorruptibleTree(16)
		require.NoError(tt, BlackViolationValidate[int](tree))
		// An extra black node on the leftmost path.
		tree.header.left.left = &rbNode[int]{data: -1, color: Black, parent: tree.header.left}
		require.ErrorIs(tt, BlackViolationValidate[int](tree), ErrRBTreeBlackViolation)
		require.ErrorIs(tt, CacheViolationValidate[int](tree), ErrRBTreeCacheViolation)
		require.ErrorIs(tt, SizeViolationValidate[int](tree), ErrRBTreeSizeViolation)
	})
	t.Run("red root", func(tt *testing.T) {
		tree := newCorruptibleTree(1)
		tree.header.parent.color = Red
		require.ErrorIs(tt, BlackViolationValidate[int](tree), ErrRBTreeBlackViolation)
	})
	t.Run("order violation", func(tt *testing.T) {
		tree := newCorruptibleTree(8)
		tree.header.right.data = -1
		require.ErrorIs(tt, OrderViolationValidate[int](tree), ErrRBTreeOrderViolation)
	})
	t.Run("combined", func(tt *testing.T) {
		// Root 1 with the black children 0 and 2, a red root breaks no red rule.
		tree := newCorruptibleTree(4)
		require.True(tt, tree.header.parent.left.isBlack() && tree.header.parent.right.isBlack())
		tree.header.parent.color = Red
		tree.count++
		err := Validate[int](tree)
		require.ErrorIs(tt, err, ErrRBTreeBlackViolation)
		require.ErrorIs(tt, err, ErrRBTreeSizeViolation)
		require.Len(tt, multierr.Errors(err), 2)
	})
	t.Run("empty", func(tt *testing.T) {
		require.NoError(tt, Validate[int](NewOrderedRBTree[int]()))
	})
}

func TestRbtree_InvariantCheck(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := xlog.NewXLogger(
		xlog.WithXLoggerCore(core),
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
	)
	tree := NewOrderedRBTree[int](WithRBTreeInvariantCheck[int](logger)).(*rbTree[int])
	for _, v := range lo.Shuffle(lo.Range(256)) {
		tree.InsertUnique(v)
	}
	for _, v := range lo.Shuffle(lo.Range(128)) {
		tree.EraseKey(v)
	}
	require.Equal(t, 0, logs.Len())

	tree.count += 5
	tree.InsertUnique(1000)
	require.Positive(t, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "[rbtree] invariant violation", entry.Message)
	require.Equal(t, zapcore.ErrorLevel, entry.Level)
	fields := entry.ContextMap()
	require.Equal(t, "insert-unique", fields["op"])
	require.Contains(t, fields["error"], ErrRBTreeSizeViolation.Error())
	require.Contains(t, fields, "errorStack")
}
