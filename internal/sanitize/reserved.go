package sanitize

// reservedWords are JavaScript/TypeScript keywords plus common globals
// that generated identifiers must not shadow. Matching keys get an
// underscore suffix.
var reservedWords = func() map[string]bool {
	words := []string{
		// JavaScript reserved keywords
		"abstract", "arguments", "await", "boolean", "break", "byte",
		"case", "catch", "char", "class", "const", "continue",
		"debugger", "default", "delete", "do", "double", "else",
		"enum", "eval", "export", "extends", "false", "final",
		"finally", "float", "for", "function", "goto", "if",
		"implements", "import", "in", "instanceof", "int", "interface",
		"let", "long", "native", "new", "null", "package", "private",
		"protected", "public", "return", "short", "static", "super",
		"switch", "synchronized", "this", "throw", "throws",
		"transient", "true", "try", "typeof", "var", "void",
		"volatile", "while", "with", "yield",
		// TypeScript additions
		"any", "as", "async", "asserts", "bigint", "constructor",
		"declare", "from", "get", "infer", "is", "keyof", "module",
		"namespace", "never", "readonly", "require", "set", "string",
		"symbol", "type", "undefined", "unique", "unknown", "using",
		// Common global objects
		"Array", "Boolean", "Date", "Error", "Function", "JSON",
		"Math", "Number", "Object", "Promise", "RegExp", "String",
		"Symbol", "Map", "Set", "WeakMap", "WeakSet",
		// Browser/Node globals
		"console", "window", "document", "process", "global",
		"Buffer", "exports", "__dirname", "__filename",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}()
