package text

import "strings"

// UnderTwoAuthors reports whether an author string plausibly names a single
// author. Semicolons, multiple commas, or more spaces than commas all point
// at a list.
func UnderTwoAuthors(s string) bool {
	if strings.Contains(s, ";") {
		return false
	}
	commas := strings.Count(s, ",")
	if commas > 1 {
		return false
	}
	if commas < strings.Count(strings.TrimSpace(s), " ") {
		return false
	}
	return true
}

// SplitAuthors splits a multi-author string on semicolons when present,
// commas otherwise. Callers should check UnderTwoAuthors first; a single
// "Last, First" author would split wrongly here.
func SplitAuthors(s string) []string {
	sep := ","
	if strings.Contains(s, ";") {
		sep = ";"
	}
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
