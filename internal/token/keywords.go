package token

type keywordEntry struct {
	kind Kind
	min  LanguageVersion
}

// keywords maps every reserved lowercase spelling to its Kind and the
// earliest standard revision in which it became a keyword. SystemVerilog
// keywords are case-sensitive; no uppercase variant is ever recognized.
var keywords = map[string]keywordEntry{
	"module": {KwModule, V1995}, "endmodule": {KwEndmodule, V1995},
	"interface": {KwInterface, V2001}, "endinterface": {KwEndinterface, V2001},
	"program": {KwProgram, V2001}, "endprogram": {KwEndprogram, V2001},
	"package": {KwPackage, V2001}, "endpackage": {KwEndpackage, V2001},
	"class": {KwClass, V2005}, "endclass": {KwEndclass, V2005},
	"function": {KwFunction, V1995}, "endfunction": {KwEndfunction, V1995},
	"task": {KwTask, V1995}, "endtask": {KwEndtask, V1995},
	"checker": {KwChecker, V2009}, "endchecker": {KwEndchecker, V2009},
	"clocking": {KwClocking, V2001}, "endclocking": {KwEndclocking, V2001},
	"covergroup": {KwCovergroup, V2001}, "endgroup": {KwEndgroup, V2001},
	"property": {KwProperty, V2001}, "endproperty": {KwEndproperty, V2001},
	"sequence": {KwSequence, V2001}, "endsequence": {KwEndsequence, V2001},
	"generate": {KwGenerate, V2001}, "endgenerate": {KwEndgenerate, V2001},
	"specify": {KwSpecify, V1995}, "endspecify": {KwEndspecify, V1995},
	"primitive": {KwPrimitive, V1995}, "endprimitive": {KwEndprimitive, V1995},
	"config": {KwConfig, V2001}, "endconfig": {KwEndconfig, V2001},
	"begin": {KwBegin, V1995}, "end": {KwEnd, V1995},
	"fork": {KwFork, V1995}, "join": {KwJoin, V1995},
	"join_any": {KwJoinAny, V2001}, "join_none": {KwJoinNone, V2001},
	"input": {KwInput, V1995}, "output": {KwOutput, V1995}, "inout": {KwInout, V1995}, "ref": {KwRef, V2001},
	"parameter": {KwParameter, V1995}, "localparam": {KwLocalparam, V2001}, "specparam": {KwSpecparam, V1995},
	"genvar": {KwGenvar, V2001},
	"logic": {KwLogic, V2005}, "reg": {KwReg, V1995},
	"bit": {KwBit, V2005}, "byte": {KwByte, V2005},
	"shortint": {KwShortint, V2005}, "int": {KwInt, V2005}, "longint": {KwLongint, V2005},
	"integer": {KwInteger, V1995}, "time": {KwTime, V1995},
	"shortreal": {KwShortreal, V2005}, "real": {KwReal, V1995}, "realtime": {KwRealtime, V1995},
	"string": {KwString, V2005}, "event": {KwEvent, V1995}, "chandle": {KwChandle, V2005}, "void": {KwVoid, V2005},
	"wire": {KwWire, V1995}, "wand": {KwWand, V1995}, "wor": {KwWor, V1995},
	"tri": {KwTri, V1995}, "tri0": {KwTri0, V1995}, "tri1": {KwTri1, V1995},
	"triand": {KwTriand, V1995}, "trior": {KwTrior, V1995}, "trireg": {KwTrireg, V1995},
	"uwire": {KwUwire, V2005}, "supply0": {KwSupply0, V1995}, "supply1": {KwSupply1, V1995},
	"signed": {KwSigned, V1995}, "unsigned": {KwUnsigned, V1995},
	"struct": {KwStruct, V2005}, "union": {KwUnion, V2005}, "enum": {KwEnum, V2005},
	"typedef": {KwTypedef, V2001}, "packed": {KwPacked, V2005}, "unpacked": {KwUnpacked, V2005},
	"automatic": {KwAutomatic, V2001}, "static": {KwStatic, V2005},
	"local": {KwLocal, V2005}, "protected": {KwProtected, V2005},
	"virtual": {KwVirtual, V2001}, "pure": {KwPure, V2005}, "extern": {KwExtern, V2001}, "const": {KwConst, V2005},
	"rand": {KwRand, V2005}, "randc": {KwRandc, V2005},
	"if": {KwIf, V1995}, "else": {KwElse, V1995},
	"case": {KwCase, V1995}, "casex": {KwCasex, V1995}, "casez": {KwCasez, V1995}, "endcase": {KwEndcase, V1995},
	"default": {KwDefault, V1995},
	"for": {KwFor, V1995}, "foreach": {KwForeach, V2005},
	"while": {KwWhile, V1995}, "do": {KwDo, V2005}, "repeat": {KwRepeat, V1995}, "forever": {KwForever, V1995},
	"break": {KwBreak, V2005}, "continue": {KwContinue, V2005}, "return": {KwReturn, V2005},
	"assign": {KwAssign, V1995}, "deassign": {KwDeassign, V1995}, "force": {KwForce, V1995}, "release": {KwRelease, V1995},
	"always": {KwAlways, V1995}, "always_comb": {KwAlwaysComb, V2005}, "always_ff": {KwAlwaysFF, V2005},
	"always_latch": {KwAlwaysLatch, V2005}, "initial": {KwInitial, V1995}, "final": {KwFinal, V2005},
	"posedge": {KwPosedge, V1995}, "negedge": {KwNegedge, V1995}, "edge": {KwEdge, V1995},
	"wait": {KwWait, V1995}, "wait_order": {KwWaitOrder, V2001}, "disable": {KwDisable, V1995},
	"assert": {KwAssert, V2001}, "assume": {KwAssume, V2001}, "cover": {KwCover, V2001},
	"expect": {KwExpect, V2001}, "restrict": {KwRestrict, V2009},
	"import": {KwImport, V2001}, "export": {KwExport, V2001}, "modport": {KwModport, V2001},
	"bind": {KwBind, V2001}, "alias": {KwAlias, V2001}, "defparam": {KwDefparam, V1995}, "instance": {KwInstance, V2001},
	"super": {KwSuper, V2005}, "this": {KwThis, V2005}, "new": {KwNew, V2005}, "null": {KwNull, V2005},
	"true": {KwTrue, V2009}, "false": {KwFalse, V2009},
	"extends": {KwExtends, V2005}, "implements": {KwImplements, V2012},
	"constraint": {KwConstraint, V2005}, "soft": {KwSoft, V2012}, "solve": {KwSolve, V2005}, "before": {KwBefore, V2005},
	"unique": {KwUnique, V2005}, "unique0": {KwUnique0, V2009}, "priority": {KwPriority, V2005},
	"inside": {KwInside, V2005}, "dist": {KwDist, V2005}, "with": {KwWith, V2005},
	"matches": {KwMatches, V2005}, "tagged": {KwTagged, V2005}, "type": {KwType, V2005},
}

// LookupKeyword reports whether ident is a keyword reserved by ver, and if
// so which Kind it lexes as. Identifiers that become keywords only in a
// later revision lex as Ident under an earlier one.
func LookupKeyword(ident string, ver LanguageVersion) (Kind, bool) {
	e, ok := keywords[ident]
	if !ok || ver < e.min {
		return Invalid, false
	}
	return e.kind, true
}
