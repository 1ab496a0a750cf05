package transcode

import "strings"

// Separator joins consecutive byte values on one line.
const Separator = ", "

// Rule maps one escape symbol to the digits written after the literal "0".
type Rule struct {
	Symbol byte
	Digits string
}

// Rules is the fixed substitution table, in the order it is applied.
// Any other backslash-led sequence is left as is.
var Rules = []Rule{
	{Symbol: 'U', Digits: "x"},
	{Symbol: '0', Digits: "0"},
	{Symbol: '1', Digits: "1"},
	{Symbol: '2', Digits: "2"},
	{Symbol: '3', Digits: "3"},
	{Symbol: '4', Digits: "4"},
	{Symbol: '5', Digits: "5"},
	{Symbol: '6', Digits: "6"},
	{Symbol: '7', Digits: "7"},
}

// Escape returns the two-character token the rule matches, e.g. `\U`.
func (r Rule) Escape() string {
	return `\` + string(r.Symbol)
}

// LineStart returns the pattern and replacement for a token that opens a line.
// The separator moves to the end of the previous line.
func (r Rule) LineStart() (pattern, repl string) {
	return "\n" + r.Escape(), ",\n0" + r.Digits
}

// MidLine returns the pattern and replacement for a token anywhere else.
func (r Rule) MidLine() (pattern, repl string) {
	return r.Escape(), Separator + "0" + r.Digits
}

// Text runs the whole pipeline over already-decoded input and returns the
// brace-wrapped initializer list.
func Text(src string) string {
	text := Upper(src)
	text = StripQuotes(text)
	text = NormalizeNewlines(text)
	text = ReplaceEscapes(text)
	text = TrimLeadingSeparator(text)
	return Wrap(text)
}

// Upper converts every letter to upper case.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// StripQuotes removes every double quote.
func StripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

// NormalizeNewlines turns CRLF terminators into LF.
func NormalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// ReplaceEscapes applies Rules in order. For each rule the line-start form
// runs before the mid-line form, since the mid-line pass would otherwise
// consume the token and leave its separator on the wrong line.
//
// Each replacement is a plain substring pass over the output of the previous
// one. Input that already looks like generated output is not special-cased.
func ReplaceEscapes(s string) string {
	for _, r := range Rules {
		pattern, repl := r.LineStart()
		s = strings.ReplaceAll(s, pattern, repl)
		pattern, repl = r.MidLine()
		s = strings.ReplaceAll(s, pattern, repl)
	}
	return s
}

// TrimLeadingSeparator drops the separator produced by a token at the very
// start of the text, which has nothing before it to join.
func TrimLeadingSeparator(s string) string {
	return strings.TrimPrefix(s, Separator)
}

// Wrap encloses body in braces on their own lines. No newline follows the
// closing brace.
func Wrap(body string) string {
	return "{\n" + body + "\n}"
}
