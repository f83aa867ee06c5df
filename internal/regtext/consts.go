package regtext

const (
	// KeyOpenBracket marks the start of a section path.
	KeyOpenBracket = "["

	// KeyCloseBracket marks the end of a section path.
	KeyCloseBracket = "]"

	// ValueAssignment separates entry names from their value literal.
	ValueAssignment = "="

	// DefaultValuePrefix marks the default (unnamed) entry line.
	DefaultValuePrefix = "@="

	// DefaultValueName is the sentinel entry name for the default value.
	DefaultValueName = "@"

	// CommentPrefix marks a comment line.
	CommentPrefix = ";"

	// Quote is the double-quote character around entry names.
	Quote = "\""

	// Backslash is used for escaping, path separators and line continuation.
	Backslash = "\\"

	// EscapedQuote is the escaped double-quote sequence.
	EscapedQuote = "\\\""

	// EscapedBackslash is the escaped backslash sequence.
	EscapedBackslash = "\\\\"

	// CRLF is the Windows line ending, the usual one for .reg files.
	CRLF = "\r\n"

	// CR is the carriage return character.
	CR = "\r"

	// LF is the line feed character.
	LF = "\n"

	// DWORDPrefix identifies a DWORD value literal.
	DWORDPrefix = "dword:"

	// HexPrefix identifies a binary value literal.
	HexPrefix = "hex"

	// EncodingUTF8 is the identifier for UTF-8 encoding.
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding.
	EncodingUTF16LE = "UTF-16LE"

	// EncodingWindows1252 is the identifier for the Windows-1252 code page.
	EncodingWindows1252 = "WINDOWS-1252"
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian.
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8.
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)
