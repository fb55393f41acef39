package token

// Kind represents the category of a source token.
type Kind uint16

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a plain identifier.
	Ident
	// EscapedIdent represents a \-escaped identifier, terminated by whitespace.
	EscapedIdent
	// SystemIdent represents a $-prefixed system task/function name.
	SystemIdent

	// IntegerLit represents any integer literal: sized (8'hFF), base-only
	// ('d12), or unbased unsized ('0, '1, 'x, 'z). Token.Number holds the
	// parsed size/base/digits.
	IntegerLit
	// RealLit represents a real literal (1.5, 2.0e10).
	RealLit
	// TimeLit represents a time literal (10ns, 1.5ps).
	TimeLit
	// StringLit represents a double-quoted string literal.
	StringLit

	// Plus represents +.
	Plus
	// Minus represents -.
	Minus
	// Star represents *.
	Star
	// StarStar represents ** (power).
	StarStar
	// Slash represents /.
	Slash
	// Percent represents %.
	Percent
	// Assign represents =.
	Assign
	// PlusAssign represents +=.
	PlusAssign
	// MinusAssign represents -=.
	MinusAssign
	// StarAssign represents *=.
	StarAssign
	// SlashAssign represents /=.
	SlashAssign
	// PercentAssign represents %=.
	PercentAssign
	// AmpAssign represents &=.
	AmpAssign
	// PipeAssign represents |=.
	PipeAssign
	// CaretAssign represents ^=.
	CaretAssign
	// ShlAssign represents <<=.
	ShlAssign
	// ShrAssign represents >>=.
	ShrAssign
	// AShlAssign represents <<<=.
	AShlAssign
	// AShrAssign represents >>>=.
	AShrAssign
	// EqEq represents ==.
	EqEq
	// BangEq represents !=.
	BangEq
	// CaseEq represents === (case equality, always two-state).
	CaseEq
	// CaseNeq represents !==.
	CaseNeq
	// WildEq represents ==? (wildcard equality).
	WildEq
	// WildNeq represents !=?.
	WildNeq
	// Bang represents !.
	Bang
	// Lt represents <.
	Lt
	// LtEq represents <=.
	LtEq
	// Gt represents >.
	Gt
	// GtEq represents >=.
	GtEq
	// Shl represents <<.
	Shl
	// Shr represents >> (logical; fills with 0).
	Shr
	// AShl represents <<< (same as Shl on vectors, kept distinct for parsing).
	AShl
	// AShr represents >>> (arithmetic; sign-extends on signed operands).
	AShr
	// Amp represents & (bitwise and / reduction and).
	Amp
	// Pipe represents | (bitwise or / reduction or).
	Pipe
	// Caret represents ^ (bitwise xor / reduction xor).
	Caret
	// TildeCaret represents ~^ or ^~ (xnor).
	TildeCaret
	// Tilde represents ~ (bitwise not).
	Tilde
	// AndAnd represents && (logical and).
	AndAnd
	// OrOr represents || (logical or).
	OrOr
	// TripleAmp represents &&& (sequence and).
	TripleAmp
	// Question represents ? (conditional operator / pattern wildcard).
	Question
	// Colon represents :.
	Colon
	// ColonColon represents :: (package/class scope resolution).
	ColonColon
	// Semicolon represents ;.
	Semicolon
	// Comma represents ,.
	Comma
	// Dot represents . (member select).
	Dot
	// DotStar represents .* (implicit port/sensitivity-list connection).
	DotStar
	// Arrow represents -> (event trigger / implication).
	Arrow
	// ArrowArrow represents --> (overlapped implication).
	ArrowArrow
	// IffArrow represents <-> (non-overlapped implication).
	IffArrow
	// FatArrow represents => (case-item / pattern association).
	FatArrow
	// Hash represents # (delay / parameter port).
	Hash
	// HashHash represents ## (cycle delay).
	HashHash
	// At represents @ (event control).
	At
	// LParen represents (.
	LParen
	// RParen represents ).
	RParen
	// LBrace represents {.
	LBrace
	// RBrace represents }.
	RBrace
	// LBracket represents [.
	LBracket
	// RBracket represents ].
	RBracket
	// TickLBrace represents '{ (assignment pattern open).
	TickLBrace
	// Apostrophe represents a bare ' preceding a base letter in sized/unsized literals.
	Apostrophe

	firstKeyword
	KwModule
	KwEndmodule
	KwInterface
	KwEndinterface
	KwProgram
	KwEndprogram
	KwPackage
	KwEndpackage
	KwClass
	KwEndclass
	KwFunction
	KwEndfunction
	KwTask
	KwEndtask
	KwChecker
	KwEndchecker
	KwClocking
	KwEndclocking
	KwCovergroup
	KwEndgroup
	KwProperty
	KwEndproperty
	KwSequence
	KwEndsequence
	KwGenerate
	KwEndgenerate
	KwSpecify
	KwEndspecify
	KwPrimitive
	KwEndprimitive
	KwConfig
	KwEndconfig
	KwBegin
	KwEnd
	KwFork
	KwJoin
	KwJoinAny
	KwJoinNone
	KwInput
	KwOutput
	KwInout
	KwRef
	KwParameter
	KwLocalparam
	KwSpecparam
	KwGenvar
	KwLogic
	KwReg
	KwBit
	KwByte
	KwShortint
	KwInt
	KwLongint
	KwInteger
	KwTime
	KwShortreal
	KwReal
	KwRealtime
	KwString
	KwEvent
	KwChandle
	KwVoid
	KwWire
	KwWand
	KwWor
	KwTri
	KwTri0
	KwTri1
	KwTriand
	KwTrior
	KwTrireg
	KwUwire
	KwSupply0
	KwSupply1
	KwSigned
	KwUnsigned
	KwStruct
	KwUnion
	KwEnum
	KwTypedef
	KwPacked
	KwUnpacked
	KwAutomatic
	KwStatic
	KwLocal
	KwProtected
	KwVirtual
	KwPure
	KwExtern
	KwConst
	KwRand
	KwRandc
	KwIf
	KwElse
	KwCase
	KwCasex
	KwCasez
	KwEndcase
	KwDefault
	KwFor
	KwForeach
	KwWhile
	KwDo
	KwRepeat
	KwForever
	KwBreak
	KwContinue
	KwReturn
	KwAssign
	KwDeassign
	KwForce
	KwRelease
	KwAlways
	KwAlwaysComb
	KwAlwaysFF
	KwAlwaysLatch
	KwInitial
	KwFinal
	KwPosedge
	KwNegedge
	KwEdge
	KwWait
	KwWaitOrder
	KwDisable
	KwAssert
	KwAssume
	KwCover
	KwExpect
	KwRestrict
	KwImport
	KwExport
	KwModport
	KwBind
	KwAlias
	KwDefparam
	KwInstance
	KwSuper
	KwThis
	KwNew
	KwNull
	KwTrue
	KwFalse
	KwExtends
	KwImplements
	KwConstraint
	KwSoft
	KwSolve
	KwBefore
	KwUnique
	KwUnique0
	KwPriority
	KwInside
	KwDist
	KwWith
	KwMatches
	KwTagged
	KwType
	lastKeyword
)
