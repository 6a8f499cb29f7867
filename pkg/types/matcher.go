package types

// Rule maps one or more file extensions to a destination directory.
// Extensions are stored normalized: lower-case, trimmed and dot-prefixed
// (".pdf"). Within a rule they are OR-matched.
type Rule struct {
	Extensions []string `json:"extensions"`
	Dest       string   `json:"dest"`
}

// RuleSet is an ordered list of extension rules. The first rule whose
// extension set contains a file's extension wins.
type RuleSet []Rule

// KeywordEntry maps a lower-cased keyword to a destination directory
type KeywordEntry struct {
	Keyword string `json:"keyword"`
	Dest    string `json:"dest"`
}

// KeywordMap is an ordered keyword -> destination mapping. Declaration order
// is match priority: the first keyword contained in a filename wins, even
// when a later keyword is more specific.
type KeywordMap []KeywordEntry

// Dests returns the destination of every entry in declaration order
func (km KeywordMap) Dests() []string {
	dests := make([]string, 0, len(km))
	for _, e := range km {
		dests = append(dests, e.Dest)
	}
	return dests
}
