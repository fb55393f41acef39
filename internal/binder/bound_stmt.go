package binder

import (
	"svlang/internal/ast"
	"svlang/internal/source"
	"svlang/internal/types"
)

// StmtKind mirrors ast.StmtKind one for one, per the same rationale as
// ExprKind.
type StmtKind uint8

const (
	SBlock StmtKind = iota
	SIf
	SCase
	SFor
	SWhile
	SDoWhile
	SForever
	SAssignBlocking
	SAssignNonBlocking
	SExprStmt
	SReturn
	SBreak
	SContinue
	SNull
	SVarDecl
	STimingControl
)

// CaseItem mirrors ast.CaseItem with bound expression/statement IDs.
type CaseItem struct {
	Labels []BoundExprID
	Body   BoundStmtID
}

// Stmt is the single generic bound-statement node.
type Stmt struct {
	Kind  StmtKind
	Span  source.Span
	Label string

	Cond BoundExprID
	LHS  BoundExprID
	RHS  BoundExprID

	Then BoundStmtID
	Else BoundStmtID
	Body BoundStmtID

	List  []BoundStmtID
	Cases []CaseItem
	CKind ast.CaseKind

	Init []BoundStmtID
	Step []BoundExprID

	EventExprs []BoundExprID

	VarType  types.TypeID
	VarNames []string
	VarInits []BoundExprID
}

type Stmts struct {
	arena *ast.Arena[Stmt]
}

func NewStmts(capHint uint) *Stmts { return &Stmts{arena: ast.NewArena[Stmt](capHint)} }

func (s *Stmts) Get(id BoundStmtID) *Stmt { return s.arena.Get(uint32(id)) }

func (s *Stmts) New(st Stmt) BoundStmtID { return BoundStmtID(s.arena.Allocate(st)) }
