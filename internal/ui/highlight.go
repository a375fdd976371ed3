package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	KeywordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#c678dd"))
	FunctionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#61afef"))
	StringStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#98c379"))
	NumberStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d19a66"))
	CommentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5c6370")).Italic(true)
	OperatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#56b6c2"))
)

var (
	sqlKeywords = wordSet(`
		SELECT FROM WHERE INSERT INTO VALUES UPDATE SET DELETE CREATE TABLE DROP
		ALTER ADD COLUMN PRIMARY KEY FOREIGN REFERENCES INDEX UNIQUE NOT NULL
		DEFAULT JOIN INNER LEFT RIGHT OUTER FULL CROSS ON AND OR IN BETWEEN LIKE
		ILIKE IS AS DISTINCT ORDER BY GROUP HAVING LIMIT OFFSET UNION ALL
		INTERSECT EXCEPT CASE WHEN THEN ELSE END WITH RECURSIVE RETURNING ASC
		DESC TRUE FALSE EXISTS EXPLAIN ANALYZE`)

	sqlFunctions = wordSet(`
		COUNT SUM AVG MIN MAX CONCAT SUBSTRING LENGTH UPPER LOWER TRIM COALESCE
		NULLIF CAST NOW EXTRACT DATE_PART TO_CHAR ROW_NUMBER RANK DENSE_RANK LAG
		LEAD STRING_AGG ARRAY_AGG`)
)

// sqlToken matches, in order of precedence: a comment, a string literal, a
// number, a word and an operator.
var sqlToken = regexp.MustCompile(`(--[^\n]*)|('(?:[^'\\]|\\.)*')|(\b\d+(?:\.\d+)?\b)|([A-Za-z_][A-Za-z0-9_]*)|([=<>!]+|[+\-*/])`)

func wordSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}

// HighlightSQL colors keywords, functions, literals, operators and comments.
// Stripping the escapes from the result gives back sql.
func HighlightSQL(sql string) string {
	var b strings.Builder
	pos := 0
	for _, m := range sqlToken.FindAllStringSubmatchIndex(sql, -1) {
		b.WriteString(sql[pos:m[0]])
		tok := sql[m[0]:m[1]]
		pos = m[1]

		var style lipgloss.Style
		switch {
		case m[2] >= 0:
			style = CommentStyle
		case m[4] >= 0:
			style = StringStyle
		case m[6] >= 0:
			style = NumberStyle
		case m[10] >= 0:
			style = OperatorStyle
		case sqlKeywords[strings.ToUpper(tok)]:
			style = KeywordStyle
		case sqlFunctions[strings.ToUpper(tok)]:
			style = FunctionStyle
		default:
			b.WriteString(tok)
			continue
		}
		b.WriteString(style.Render(tok))
	}
	b.WriteString(sql[pos:])
	return b.String()
}
