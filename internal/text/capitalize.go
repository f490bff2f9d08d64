package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// periodAbbrevRatio is the period density above which a title is assumed to
// be built from abbreviations, so periods mark abbrev.s rather than sentence
// ends and the letter after each one should stay capitalized.
const periodAbbrevRatio = 0.07

var (
	wikilinkOnlyRe  = regexp.MustCompile(`^\[\[[^\[\]]+\]\]$`)
	bareURLRe       = regexp.MustCompile(`https?://\S`)
	wordRe          = regexp.MustCompile(`[\p{L}\p{N}']+`)
	consonantRunRe  = regexp.MustCompile(`(?i)\b[bcdfghjklmnpqrstvwxz]{3,}\b`)
	vowelRunRe      = regexp.MustCompile(`(?i)\b[aeiou]{3,}\b`)
	afterPunctRe    = regexp.MustCompile(`[?.:!/]\s+[a-z]`)
	afterParenRe    = regexp.MustCompile(`\([a-z]`)
	afterApostRe    = regexp.MustCompile(`\w\w'[A-Z]\b`)
	romancePrefixRe = regexp.MustCompile(`(?i)\b(l|d|dell|degli|delle)'(\p{L})`)
	solitaryARe     = regexp.MustCompile(`(\w)(\s+)A(\s+)(\w)`)
	novaRe          = regexp.MustCompile(`(?i)(?:'')?(\p{L}+ \p{L}+)(?:'')? +((?:(?:gen\.? no?v?|sp\.? no?v?|no?v?\.? sp|no?v?\.? gen)\b[.,\s]*)+)`)
	casePreserveRe  = regexp.MustCompile(`(?i)\b(its|dos)\b`)
)

// TitleCase converts text to naive per-word title case. Used as the
// starting point when an ALL CAPS title has to be rebuilt.
func TitleCase(s string) string {
	return wordRe.ReplaceAllStringFunc(s, func(w string) string {
		r, size := utf8.DecodeRuneInString(w)
		return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	})
}

// RestoreItalics re-spaces and italicizes species names jammed together by
// upstream metadata ("...effect inEscherichia coli" style artifacts where
// the <em> tags went missing).
var jammedSpeciesRe = regexp.MustCompile(`([a-z]+)([A-Z][a-z]+)\b`)

func RestoreItalics(s string) string {
	return jammedSpeciesRe.ReplaceAllString(s, "$1 ''$2''")
}

// TitleCapitalization returns a properly capitalized title. The transform is
// an ordered pipeline; stages are order-dependent and individually named so
// each can be tested on its own. Strings that are a single wikilink or that
// embed a bare URL are returned untouched, since re-casing could break the
// link target. The function is total and idempotent outside that
// short-circuit.
func TitleCapitalization(in string, capsAfterPunctuation bool) string {
	trimmed := strings.TrimSpace(in)
	if trimmed == "" || wikilinkOnlyRe.MatchString(trimmed) || bareURLRe.MatchString(in) {
		return in
	}

	s := StraightenQuotes(in, false)
	s = promoteAllCaps(s)
	s = restoreAcronyms(s)
	s = lowerSmallWords(s)
	if capsAfterPunctuation || periodDensity(in) > periodAbbrevRatio {
		s = capAfterPunctuation(s)
	}
	s = capAfterParenthesis(s)
	s = lowerAfterApostrophe(s)
	s = upperFirst(s)
	s = lowerSolitaryA(s)
	s = lowerSpeciesEpithets(s)
	s = applyJournalAcronyms(s)
	s = applyFullOverrides(s)
	s = preserveSourceCasing(in, s)
	return s
}

// promoteAllCaps rewrites an ALL CAPS title to naive title case, provided it
// is long enough (ignoring brackets) that the casing is clearly shouting
// rather than an acronym.
func promoteAllCaps(s string) string {
	if s != strings.ToUpper(s) {
		return s
	}
	bare := strings.NewReplacer("[", "", "]", "").Replace(strings.TrimSpace(s))
	if utf8.RuneCountInString(bare) <= 6 {
		return s
	}
	return TitleCase(s)
}

// restoreAcronyms re-uppercases runs of three or more consonants or vowels
// bounded by non-word characters: such runs are unpronounceable, hence
// acronyms. The letter y is treated as a semi-vowel and excluded.
func restoreAcronyms(s string) string {
	s = consonantRunRe.ReplaceAllStringFunc(s, strings.ToUpper)
	return vowelRunRe.ReplaceAllStringFunc(s, strings.ToUpper)
}

// lowerSmallWords lowercases function words except at sentence-initial
// position. Matching is space-bounded: the first word has no leading space
// and so keeps its capital; a trailing sentinel space lets a final small
// word match.
func lowerSmallWords(s string) string {
	const usa = "U S A"
	shielded := strings.Contains(s, usa)
	if shielded {
		s = strings.ReplaceAll(s, usa, Placeholder(91))
	}
	s += " "
	for _, w := range smallWords {
		uc := " " + ucFirst(w) + " "
		lc := " " + w + " "
		for strings.Contains(s, uc) {
			s = strings.ReplaceAll(s, uc, lc)
		}
	}
	s = s[:len(s)-1]
	if shielded {
		s = strings.ReplaceAll(s, Placeholder(91), usa)
	}
	return s
}

// capAfterPunctuation recapitalizes the letter after sub-sentence
// terminators. "Ann. of" is the one named exception: the abbreviated
// "Annals of ..." journal family keeps its lower-case "of".
func capAfterPunctuation(s string) string {
	const annOf = "Ann. of"
	shielded := strings.Contains(s, annOf)
	if shielded {
		s = strings.ReplaceAll(s, annOf, Placeholder(90))
	}
	s = afterPunctRe.ReplaceAllStringFunc(s, strings.ToUpper)
	if shielded {
		s = strings.ReplaceAll(s, Placeholder(90), annOf)
	}
	return s
}

func capAfterParenthesis(s string) string {
	return afterParenRe.ReplaceAllStringFunc(s, strings.ToUpper)
}

// lowerAfterApostrophe undoes naive title-casing inside contractions and
// French/Italian elisions: a capital directly after an in-word apostrophe is
// an artifact. The romance particles l'/d'/dell'/degli'/delle' keep the
// particle lower-case while the following word is capitalized.
func lowerAfterApostrophe(s string) string {
	s = afterApostRe.ReplaceAllStringFunc(strings.TrimSpace(s), strings.ToLower)
	return romancePrefixRe.ReplaceAllStringFunc(s, func(m string) string {
		cut := strings.Index(m, "'")
		particle := strings.ToLower(m[:cut])
		rest := m[cut+1:]
		r, size := utf8.DecodeRuneInString(rest)
		return particle + "'" + string(unicode.ToUpper(r)) + rest[size:]
	})
}

// lowerLeadCasings are trademark casings whose leading letter is lower-case
// on purpose; upperFirst must not touch a title starting with one.
var lowerLeadCasings = map[string]bool{}

func init() {
	for _, proper := range journalAcronyms {
		r, _ := utf8.DecodeRuneInString(proper)
		if unicode.IsLower(r) {
			lowerLeadCasings[proper] = true
		}
	}
	for _, proper := range fullTitleOverrides {
		first := proper
		if i := strings.IndexByte(first, ' '); i >= 0 {
			first = first[:i]
		}
		r, _ := utf8.DecodeRuneInString(first)
		if unicode.IsLower(r) {
			lowerLeadCasings[first] = true
		}
	}
}

func upperFirst(s string) string {
	first := s
	if i := strings.IndexByte(first, ' '); i >= 0 {
		first = first[:i]
	}
	if lowerLeadCasings[first] {
		return s
	}
	return ucFirst(s)
}

// lowerSolitaryA lowercases a lone "A" between words, except in the literal
// phrase "U S A".
func lowerSolitaryA(s string) string {
	const usa = "U S A"
	shielded := strings.Contains(s, usa)
	if shielded {
		s = strings.ReplaceAll(s, usa, Placeholder(91))
	}
	s = solitaryARe.ReplaceAllString(s, "${1}${2}a${3}${4}")
	if shielded {
		s = strings.ReplaceAll(s, Placeholder(91), usa)
	}
	return s
}

// lowerSpeciesEpithets lowercases recognized "sp. nov." / "gen. nov."
// epithet markers and forces the two-word taxon name in front of them into
// italicized sentence case.
func lowerSpeciesEpithets(s string) string {
	return novaRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := novaRe.FindStringSubmatch(m)
		if sub == nil {
			return m
		}
		taxon := ucFirst(strings.ToLower(sub[1]))
		return "''" + taxon + "'' " + strings.ToLower(sub[2])
	})
}

// applyJournalAcronyms restores trademarked casings (eLife, mBio, ...) that
// the general rules flatten. Space-bounded, same trick as lowerSmallWords.
func applyJournalAcronyms(s string) string {
	s = " " + s + " "
	for flat, proper := range journalAcronyms {
		s = strings.ReplaceAll(s, " "+flat+" ", " "+proper+" ")
	}
	return s[1 : len(s)-1]
}

// applyFullOverrides replaces whole titles that defy the general rules.
func applyFullOverrides(s string) string {
	if proper, ok := fullTitleOverrides[strings.ToLower(strings.TrimSpace(s))]; ok {
		return proper
	}
	return s
}

// preserveSourceCasing restores the source's casing for the words "its" and
// "dos": both are frequently genuine proper nouns (ITS rRNA regions, DOS,
// Portuguese surnames) and the source is trusted over the general rules.
// The restore only fires when occurrences line up at identical offsets in
// the original and transformed strings.
func preserveSourceCasing(original, transformed string) string {
	origHits := casePreserveRe.FindAllStringIndex(original, -1)
	newHits := casePreserveRe.FindAllStringIndex(transformed, -1)
	if len(origHits) == 0 || len(origHits) != len(newHits) {
		return transformed
	}
	out := []byte(transformed)
	for i, hit := range origHits {
		if hit[0] != newHits[i][0] || hit[1] != newHits[i][1] {
			return transformed
		}
	}
	for _, hit := range origHits {
		copy(out[hit[0]:hit[1]], original[hit[0]:hit[1]])
	}
	return string(out)
}

func periodDensity(s string) float64 {
	if s == "" {
		return 0
	}
	return float64(strings.Count(s, ".")) / float64(len(s))
}

func ucFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
