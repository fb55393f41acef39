package ast

import "svlang/internal/source"

// StmtKind tags one statement-node shape, following the same flat single-
// arena approach as Expr.
type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtIf
	StmtCase
	StmtFor
	StmtWhile
	StmtDoWhile
	StmtForever
	StmtAssignBlocking
	StmtAssignNonBlocking
	StmtExprStmt
	StmtReturn
	StmtBreak
	StmtContinue
	StmtNull
	StmtVarDecl
	StmtTimingControl
)

// CaseKind distinguishes case/casez/casex wildcard semantics.
type CaseKind uint8

const (
	CaseExact CaseKind = iota
	CaseZ
	CaseX
)

// CaseItem is one `label[, label...]: body` arm; an empty Labels slice
// marks the `default:` arm.
type CaseItem struct {
	Labels []ExprID
	Body   StmtID
}

// Stmt is the single generic statement node; see StmtKind's constants for
// which fields are meaningful per kind.
type Stmt struct {
	Kind  StmtKind
	Span  source.Span
	Label string

	Cond ExprID
	LHS  ExprID
	RHS  ExprID

	Then StmtID
	Else StmtID
	Body StmtID

	List  []StmtID // block statements (StmtBlock); case-default-free arm bodies live in Cases
	Cases []CaseItem
	CKind CaseKind

	Init []StmtID // StmtFor: init statement list, run once before the loop
	Step []ExprID // StmtFor: step expressions, run after each iteration

	EventExprs []ExprID // timing-control event list (@(...)); empty means #delay

	VarType  TypeID
	VarNames []string
	VarInits []ExprID
}

type Stmts struct {
	Arena *Arena[Stmt]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{Arena: NewArena[Stmt](capHint)}
}

func (s *Stmts) Get(id StmtID) *Stmt { return s.Arena.Get(uint32(id)) }

func (s *Stmts) New(st Stmt) StmtID {
	return StmtID(s.Arena.Allocate(st))
}
