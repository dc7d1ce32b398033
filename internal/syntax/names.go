package syntax

var kindNames = map[Kind]string{
	TOMBSTONE:     "TOMBSTONE",
	EOF:           "EOF",
	ERROR:         "ERROR",
	WHITESPACE:    "WHITESPACE",
	LINE_COMMENT:  "LINE_COMMENT",
	BLOCK_COMMENT: "BLOCK_COMMENT",

	NUMBER:   "NUMBER",
	STRING:   "STRING",
	REGEX:    "REGEX",
	TEMPLATE: "TEMPLATE",
	TEMPLATE_CHUNK: "TEMPLATE_CHUNK",
	TRUE_KW:  "true",
	FALSE_KW: "false",
	NULL_KW:  "null",

	IDENT:        "IDENT",
	PRIVATE_NAME: "PRIVATE_NAME",

	L_PAREN:     "(",
	R_PAREN:     ")",
	L_BRACE:     "{",
	R_BRACE:     "}",
	L_BRACK:     "[",
	R_BRACK:     "]",
	SEMICOLON:   ";",
	COMMA:       ",",
	DOT:         ".",
	ELLIPSIS:    "...",
	QUESTION:    "?",
	QUESTION2:   "??",
	QUESTIONDOT: "?.",
	COLON:       ":",
	ARROW:       "=>",
	AT:          "@",

	EQ: "=", EQ2: "==", EQ3: "===", NEQ: "!=", NEQ2: "!==",
	PLUS: "+", MINUS: "-", STAR: "*", STAR2: "**", SLASH: "/", PERCENT: "%",
	PLUS2: "++", MINUS2: "--",
	LT: "<", GT: ">", LTEQ: "<=", GTEQ: ">=",
	SHL: "<<", SHR: ">>", USHR: ">>>",
	AMP: "&", PIPE: "|", CARET: "^", TILDE: "~", BANG: "!",
	AMP2: "&&", PIPE2: "||",

	PLUSEQ: "+=", MINUSEQ: "-=", STAREQ: "*=", STAR2EQ: "**=", SLASHEQ: "/=",
	PERCENTEQ: "%=", SHLEQ: "<<=", SHREQ: ">>=", USHREQ: ">>>=",
	AMPEQ: "&=", PIPEEQ: "|=", CARETEQ: "^=",
	AMP2EQ: "&&=", PIPE2EQ: "||=", QUESTION2EQ: "??=",

	VAR_KW: "var", LET_KW: "let", CONST_KW: "const", FUNCTION_KW: "function",
	RETURN_KW: "return", IF_KW: "if", ELSE_KW: "else", FOR_KW: "for",
	WHILE_KW: "while", DO_KW: "do", BREAK_KW: "break", CONTINUE_KW: "continue",
	THROW_KW: "throw", TRY_KW: "try", CATCH_KW: "catch", FINALLY_KW: "finally",
	SWITCH_KW: "switch", CASE_KW: "case", DEFAULT_KW: "default",
	DEBUGGER_KW: "debugger", NEW_KW: "new", DELETE_KW: "delete",
	TYPEOF_KW: "typeof", VOID_KW: "void", IN_KW: "in", INSTANCEOF_KW: "instanceof",
	THIS_KW: "this", SUPER_KW: "super", CLASS_KW: "class", EXTENDS_KW: "extends",
	STATIC_KW: "static", GET_KW: "get", SET_KW: "set", OF_KW: "of",
	ASYNC_KW: "async", AWAIT_KW: "await", YIELD_KW: "yield",
	IMPORT_KW: "import", EXPORT_KW: "export", FROM_KW: "from", AS_KW: "as",
	TARGET_KW: "target",

	SCRIPT: "SCRIPT", MODULE: "MODULE", ERROR_NODE: "ERROR_NODE",

	BLOCK_STMT: "BLOCK_STMT", EXPR_STMT: "EXPR_STMT", IF_STMT: "IF_STMT",
	FOR_STMT: "FOR_STMT", FOR_IN_STMT: "FOR_IN_STMT", FOR_OF_STMT: "FOR_OF_STMT",
	WHILE_STMT: "WHILE_STMT", DO_WHILE_STMT: "DO_WHILE_STMT",
	RETURN_STMT: "RETURN_STMT", BREAK_STMT: "BREAK_STMT",
	CONTINUE_STMT: "CONTINUE_STMT", THROW_STMT: "THROW_STMT",
	TRY_STMT: "TRY_STMT", CATCH_CLAUSE: "CATCH_CLAUSE",
	SWITCH_STMT: "SWITCH_STMT", SWITCH_CASE: "SWITCH_CASE",
	LABELLED_STMT: "LABELLED_STMT", DEBUGGER_STMT: "DEBUGGER_STMT",
	EMPTY_STMT: "EMPTY_STMT",

	VAR_DECL: "VAR_DECL", DECLARATOR: "DECLARATOR", NAME: "NAME",
	ARRAY_PATTERN: "ARRAY_PATTERN", OBJECT_PATTERN: "OBJECT_PATTERN",
	REST_PATTERN: "REST_PATTERN", ASSIGN_PATTERN: "ASSIGN_PATTERN",

	FN_DECL: "FN_DECL", FN_EXPR: "FN_EXPR", ARROW_EXPR: "ARROW_EXPR",
	PARAM_LIST: "PARAM_LIST", PARAM: "PARAM",

	CLASS_DECL: "CLASS_DECL", CLASS_EXPR: "CLASS_EXPR", CLASS_BODY: "CLASS_BODY",
	METHOD: "METHOD", FIELD: "FIELD",

	COND_EXPR: "COND_EXPR", ASSIGN_EXPR: "ASSIGN_EXPR", BIN_EXPR: "BIN_EXPR",
	LOGIC_EXPR: "LOGIC_EXPR", UNARY_EXPR: "UNARY_EXPR", UPDATE_EXPR: "UPDATE_EXPR",
	NEW_EXPR: "NEW_EXPR", NEW_TARGET: "NEW_TARGET", CALL_EXPR: "CALL_EXPR",
	MEMBER_EXPR: "MEMBER_EXPR", OPTIONAL_CHAIN: "OPTIONAL_CHAIN",
	ARG_LIST: "ARG_LIST", SPREAD_ELEMENT: "SPREAD_ELEMENT",
	SEQUENCE_EXPR: "SEQUENCE_EXPR", GROUPING_EXPR: "GROUPING_EXPR",
	ARRAY_EXPR: "ARRAY_EXPR", OBJECT_EXPR: "OBJECT_EXPR", PROPERTY: "PROPERTY",
	SHORTHAND_PROPERTY: "SHORTHAND_PROPERTY",
	COMPUTED_PROPERTY_NAME: "COMPUTED_PROPERTY_NAME",
	TAGGED_TEMPLATE: "TAGGED_TEMPLATE", LITERAL: "LITERAL", NAME_REF: "NAME_REF",

	DIRECTIVE_COMMENT: "DIRECTIVE_COMMENT",
}

// Keywords maps the textual spelling of a reserved word (or a true/false/
// null literal) to its Kind. Built once at init; consulted by the lexer's
// identifier path. Contextual keywords (see ContextualKeywords) are not in
// this map.
var Keywords = map[string]Kind{
	"var": VAR_KW, "let": LET_KW, "const": CONST_KW, "function": FUNCTION_KW,
	"return": RETURN_KW, "if": IF_KW, "else": ELSE_KW, "for": FOR_KW,
	"while": WHILE_KW, "do": DO_KW, "break": BREAK_KW, "continue": CONTINUE_KW,
	"throw": THROW_KW, "try": TRY_KW, "catch": CATCH_KW, "finally": FINALLY_KW,
	"switch": SWITCH_KW, "case": CASE_KW, "default": DEFAULT_KW,
	"debugger": DEBUGGER_KW, "new": NEW_KW, "delete": DELETE_KW,
	"typeof": TYPEOF_KW, "void": VOID_KW, "in": IN_KW, "instanceof": INSTANCEOF_KW,
	"this": THIS_KW, "super": SUPER_KW, "class": CLASS_KW, "extends": EXTENDS_KW,
	"static": STATIC_KW, "await": AWAIT_KW, "yield": YIELD_KW,
	"import": IMPORT_KW, "export": EXPORT_KW,
	"true": TRUE_KW, "false": FALSE_KW, "null": NULL_KW,
}

// ContextualKeywords are identifiers that are only keywords at specific
// grammar positions (get/set/of/async/from/as/target); the lexer always
// emits IDENT for these and the parser inspects the token's text.
var ContextualKeywords = map[string]bool{
	"get": true, "set": true, "of": true, "async": true,
	"from": true, "as": true, "target": true,
}
