package binder

// BoundExprID and BoundStmtID identify nodes in a Binder's own bound-tree
// arenas, separate from the ast package's syntax-tree IDs: the bound
// tree is a parallel structure, not an in-place annotation of the CST.
type BoundExprID uint32

const NoBoundExprID BoundExprID = 0

func (id BoundExprID) IsValid() bool { return id != NoBoundExprID }

type BoundStmtID uint32

const NoBoundStmtID BoundStmtID = 0

func (id BoundStmtID) IsValid() bool { return id != NoBoundStmtID }
