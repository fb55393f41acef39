package token

// String returns the Go identifier name of the Kind, for diagnostics and
// debug output.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case EscapedIdent:
		return "EscapedIdent"
	case SystemIdent:
		return "SystemIdent"
	case IntegerLit:
		return "IntegerLit"
	case RealLit:
		return "RealLit"
	case TimeLit:
		return "TimeLit"
	case StringLit:
		return "StringLit"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case StarStar:
		return "StarStar"
	case Slash:
		return "Slash"
	case Percent:
		return "Percent"
	case Assign:
		return "Assign"
	case PlusAssign:
		return "PlusAssign"
	case MinusAssign:
		return "MinusAssign"
	case StarAssign:
		return "StarAssign"
	case SlashAssign:
		return "SlashAssign"
	case PercentAssign:
		return "PercentAssign"
	case AmpAssign:
		return "AmpAssign"
	case PipeAssign:
		return "PipeAssign"
	case CaretAssign:
		return "CaretAssign"
	case ShlAssign:
		return "ShlAssign"
	case ShrAssign:
		return "ShrAssign"
	case AShlAssign:
		return "AShlAssign"
	case AShrAssign:
		return "AShrAssign"
	case EqEq:
		return "EqEq"
	case BangEq:
		return "BangEq"
	case CaseEq:
		return "CaseEq"
	case CaseNeq:
		return "CaseNeq"
	case WildEq:
		return "WildEq"
	case WildNeq:
		return "WildNeq"
	case Bang:
		return "Bang"
	case Lt:
		return "Lt"
	case LtEq:
		return "LtEq"
	case Gt:
		return "Gt"
	case GtEq:
		return "GtEq"
	case Shl:
		return "Shl"
	case Shr:
		return "Shr"
	case AShl:
		return "AShl"
	case AShr:
		return "AShr"
	case Amp:
		return "Amp"
	case Pipe:
		return "Pipe"
	case Caret:
		return "Caret"
	case TildeCaret:
		return "TildeCaret"
	case Tilde:
		return "Tilde"
	case AndAnd:
		return "AndAnd"
	case OrOr:
		return "OrOr"
	case TripleAmp:
		return "TripleAmp"
	case Question:
		return "Question"
	case Colon:
		return "Colon"
	case ColonColon:
		return "ColonColon"
	case Semicolon:
		return "Semicolon"
	case Comma:
		return "Comma"
	case Dot:
		return "Dot"
	case DotStar:
		return "DotStar"
	case Arrow:
		return "Arrow"
	case ArrowArrow:
		return "ArrowArrow"
	case IffArrow:
		return "IffArrow"
	case FatArrow:
		return "FatArrow"
	case Hash:
		return "Hash"
	case HashHash:
		return "HashHash"
	case At:
		return "At"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case TickLBrace:
		return "TickLBrace"
	case Apostrophe:
		return "Apostrophe"
	case KwModule:
		return "KwModule"
	case KwEndmodule:
		return "KwEndmodule"
	case KwInterface:
		return "KwInterface"
	case KwEndinterface:
		return "KwEndinterface"
	case KwProgram:
		return "KwProgram"
	case KwEndprogram:
		return "KwEndprogram"
	case KwPackage:
		return "KwPackage"
	case KwEndpackage:
		return "KwEndpackage"
	case KwClass:
		return "KwClass"
	case KwEndclass:
		return "KwEndclass"
	case KwFunction:
		return "KwFunction"
	case KwEndfunction:
		return "KwEndfunction"
	case KwTask:
		return "KwTask"
	case KwEndtask:
		return "KwEndtask"
	case KwChecker:
		return "KwChecker"
	case KwEndchecker:
		return "KwEndchecker"
	case KwClocking:
		return "KwClocking"
	case KwEndclocking:
		return "KwEndclocking"
	case KwCovergroup:
		return "KwCovergroup"
	case KwEndgroup:
		return "KwEndgroup"
	case KwProperty:
		return "KwProperty"
	case KwEndproperty:
		return "KwEndproperty"
	case KwSequence:
		return "KwSequence"
	case KwEndsequence:
		return "KwEndsequence"
	case KwGenerate:
		return "KwGenerate"
	case KwEndgenerate:
		return "KwEndgenerate"
	case KwSpecify:
		return "KwSpecify"
	case KwEndspecify:
		return "KwEndspecify"
	case KwPrimitive:
		return "KwPrimitive"
	case KwEndprimitive:
		return "KwEndprimitive"
	case KwConfig:
		return "KwConfig"
	case KwEndconfig:
		return "KwEndconfig"
	case KwBegin:
		return "KwBegin"
	case KwEnd:
		return "KwEnd"
	case KwFork:
		return "KwFork"
	case KwJoin:
		return "KwJoin"
	case KwJoinAny:
		return "KwJoinAny"
	case KwJoinNone:
		return "KwJoinNone"
	case KwInput:
		return "KwInput"
	case KwOutput:
		return "KwOutput"
	case KwInout:
		return "KwInout"
	case KwRef:
		return "KwRef"
	case KwParameter:
		return "KwParameter"
	case KwLocalparam:
		return "KwLocalparam"
	case KwSpecparam:
		return "KwSpecparam"
	case KwGenvar:
		return "KwGenvar"
	case KwLogic:
		return "KwLogic"
	case KwReg:
		return "KwReg"
	case KwBit:
		return "KwBit"
	case KwByte:
		return "KwByte"
	case KwShortint:
		return "KwShortint"
	case KwInt:
		return "KwInt"
	case KwLongint:
		return "KwLongint"
	case KwInteger:
		return "KwInteger"
	case KwTime:
		return "KwTime"
	case KwShortreal:
		return "KwShortreal"
	case KwReal:
		return "KwReal"
	case KwRealtime:
		return "KwRealtime"
	case KwString:
		return "KwString"
	case KwEvent:
		return "KwEvent"
	case KwChandle:
		return "KwChandle"
	case KwVoid:
		return "KwVoid"
	case KwWire:
		return "KwWire"
	case KwWand:
		return "KwWand"
	case KwWor:
		return "KwWor"
	case KwTri:
		return "KwTri"
	case KwTri0:
		return "KwTri0"
	case KwTri1:
		return "KwTri1"
	case KwTriand:
		return "KwTriand"
	case KwTrior:
		return "KwTrior"
	case KwTrireg:
		return "KwTrireg"
	case KwUwire:
		return "KwUwire"
	case KwSupply0:
		return "KwSupply0"
	case KwSupply1:
		return "KwSupply1"
	case KwSigned:
		return "KwSigned"
	case KwUnsigned:
		return "KwUnsigned"
	case KwStruct:
		return "KwStruct"
	case KwUnion:
		return "KwUnion"
	case KwEnum:
		return "KwEnum"
	case KwTypedef:
		return "KwTypedef"
	case KwPacked:
		return "KwPacked"
	case KwUnpacked:
		return "KwUnpacked"
	case KwAutomatic:
		return "KwAutomatic"
	case KwStatic:
		return "KwStatic"
	case KwLocal:
		return "KwLocal"
	case KwProtected:
		return "KwProtected"
	case KwVirtual:
		return "KwVirtual"
	case KwPure:
		return "KwPure"
	case KwExtern:
		return "KwExtern"
	case KwConst:
		return "KwConst"
	case KwRand:
		return "KwRand"
	case KwRandc:
		return "KwRandc"
	case KwIf:
		return "KwIf"
	case KwElse:
		return "KwElse"
	case KwCase:
		return "KwCase"
	case KwCasex:
		return "KwCasex"
	case KwCasez:
		return "KwCasez"
	case KwEndcase:
		return "KwEndcase"
	case KwDefault:
		return "KwDefault"
	case KwFor:
		return "KwFor"
	case KwForeach:
		return "KwForeach"
	case KwWhile:
		return "KwWhile"
	case KwDo:
		return "KwDo"
	case KwRepeat:
		return "KwRepeat"
	case KwForever:
		return "KwForever"
	case KwBreak:
		return "KwBreak"
	case KwContinue:
		return "KwContinue"
	case KwReturn:
		return "KwReturn"
	case KwAssign:
		return "KwAssign"
	case KwDeassign:
		return "KwDeassign"
	case KwForce:
		return "KwForce"
	case KwRelease:
		return "KwRelease"
	case KwAlways:
		return "KwAlways"
	case KwAlwaysComb:
		return "KwAlwaysComb"
	case KwAlwaysFF:
		return "KwAlwaysFF"
	case KwAlwaysLatch:
		return "KwAlwaysLatch"
	case KwInitial:
		return "KwInitial"
	case KwFinal:
		return "KwFinal"
	case KwPosedge:
		return "KwPosedge"
	case KwNegedge:
		return "KwNegedge"
	case KwEdge:
		return "KwEdge"
	case KwWait:
		return "KwWait"
	case KwWaitOrder:
		return "KwWaitOrder"
	case KwDisable:
		return "KwDisable"
	case KwAssert:
		return "KwAssert"
	case KwAssume:
		return "KwAssume"
	case KwCover:
		return "KwCover"
	case KwExpect:
		return "KwExpect"
	case KwRestrict:
		return "KwRestrict"
	case KwImport:
		return "KwImport"
	case KwExport:
		return "KwExport"
	case KwModport:
		return "KwModport"
	case KwBind:
		return "KwBind"
	case KwAlias:
		return "KwAlias"
	case KwDefparam:
		return "KwDefparam"
	case KwInstance:
		return "KwInstance"
	case KwSuper:
		return "KwSuper"
	case KwThis:
		return "KwThis"
	case KwNew:
		return "KwNew"
	case KwNull:
		return "KwNull"
	case KwTrue:
		return "KwTrue"
	case KwFalse:
		return "KwFalse"
	case KwExtends:
		return "KwExtends"
	case KwImplements:
		return "KwImplements"
	case KwConstraint:
		return "KwConstraint"
	case KwSoft:
		return "KwSoft"
	case KwSolve:
		return "KwSolve"
	case KwBefore:
		return "KwBefore"
	case KwUnique:
		return "KwUnique"
	case KwUnique0:
		return "KwUnique0"
	case KwPriority:
		return "KwPriority"
	case KwInside:
		return "KwInside"
	case KwDist:
		return "KwDist"
	case KwWith:
		return "KwWith"
	case KwMatches:
		return "KwMatches"
	case KwTagged:
		return "KwTagged"
	case KwType:
		return "KwType"
	default:
		return "Unknown"
	}
}
