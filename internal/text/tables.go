package text

import "fmt"

// placeholderMark is the token used to shield protected spans (math markup,
// guillemet-bullet titles, redacted text) from the regex pipelines. Anything
// still carrying it is not publishable data.
const placeholderMark = "XXX_REFMEND_PLACEHOLDER"

// Placeholder returns the indexed protection token.
func Placeholder(i int) string {
	return fmt.Sprintf("%s_%d", placeholderMark, i)
}

// PlaceholderMark reports the bare token so that other packages can refuse
// input that still contains a protected span.
const PlaceholderMark = placeholderMark

// smallWords are function words left lower-case in title case except at
// title boundaries. Matched space-bounded, so a leading small word keeps its
// capital.
var smallWords = []string{
	"a", "an", "and", "as", "at", "but", "by", "for", "from", "in",
	"into", "nor", "of", "on", "onto", "or", "over", "per", "the",
	"to", "via", "with",
}

// journalAcronyms maps naive title-cased journal tokens back to their
// trademarked casing. Matched space-bounded within the title.
var journalAcronyms = map[string]string{
	"Elife":    "eLife",
	"Eneuro":   "eNeuro",
	"Mbio":     "mBio",
	"Msystems": "mSystems",
	"Peerj":    "PeerJ",
	"Plos":     "PLOS",
	"Biorxiv":  "bioRxiv",
	"Medrxiv":  "medRxiv",
	"Arxiv":    "arXiv",
	"Iscience": "iScience",
	"Bmj":      "BMJ",
	"Jama":     "JAMA",
	"Embo":     "EMBO",
	"Faseb":    "FASEB",
	"Rna":      "RNA",
	"Dna":      "DNA",
}

// fullTitleOverrides are whole-string casings that defy every general rule.
// Keyed by the lower-cased trimmed title.
var fullTitleOverrides = map[string]string{
	"bioscience":    "BioScience",
	"aids":          "AIDS",
	"gigascience":   "GigaScience",
	"biotechniques": "BioTechniques",
	"plos one":      "PLOS ONE",
	"plos biology":  "PLOS Biology",
	"plos medicine": "PLOS Medicine",
	"elife":         "eLife",
	"iscience":      "iScience",
	"mbio":          "mBio",
}

// journalSynonyms are publisher/journal spelling contractions applied before
// equivalence comparison. Long form first; both sides are lower-case.
var journalSynonyms = [][2]string{
	{"proceedings", "proc"},
	{"transactions", "trans"},
	{"journal", "j"},
	{"international", "int"},
	{"national", "natl"},
	{"society", "soc"},
	{"annals", "ann"},
	{"annual", "annu"},
	{"bulletin", "bull"},
	{"review", "rev"},
	{"reviews", "rev"},
	{"letters", "lett"},
	{"communications", "commun"},
	{"research", "res"},
	{"department", "dept"},
	{"university", "univ"},
	{"institute", "inst"},
	{"association", "assoc"},
	{"academy", "acad"},
	{"sciences", "sci"},
	{"science", "sci"},
}
