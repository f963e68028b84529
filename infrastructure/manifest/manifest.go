// Package manifest implements one dependency-manifest parser per supported
// ecosystem. Parsers fail with *domain.ParsingError only when the file cannot
// be structurally interpreted; records with unusual version specifiers are
// emitted verbatim and classified during comparison instead.
package manifest

import "strings"

// stripRangeOperators removes leading range/comparison operators from a
// version specifier so it reads cleanly in the report. The verbatim specifier
// is kept on the record for comparison.
func stripRangeOperators(spec string) string {
	s := strings.TrimSpace(spec)
	for _, op := range []string{"~>", ">=", "<=", "==", "!=", "^", "~", ">", "<", "="} {
		if strings.HasPrefix(s, op) {
			s = strings.TrimSpace(strings.TrimPrefix(s, op))
			break
		}
	}
	return s
}
