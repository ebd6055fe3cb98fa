package title

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordStart matches the first ASCII word character after a word boundary
var wordStart = regexp.MustCompile(`\b\w`)

// Title is the display form of an image filename.
// When Split is false only Main is meaningful.
type Title struct {
	Main  string
	Sub   string
	Split bool
}

// String returns the single-line form of the title
func (t Title) String() string {
	if !t.Split {
		return t.Main
	}
	if t.Sub == "" {
		return t.Main
	}
	return t.Main + " - " + t.Sub
}

// Format turns a filename such as "Modern_Blue_Accent.jpg" into a title.
// The stem is everything before the first dot. If the stem has an
// underscore, the part after the last one becomes the sub-title.
func Format(filename string) Title {
	stem := filename
	if i := strings.Index(stem, "."); i != -1 {
		stem = stem[:i]
	}

	last := strings.LastIndex(stem, "_")
	if last == -1 {
		return Title{Main: Case(stem)}
	}

	return Title{
		Main:  Case(stem[:last]),
		Sub:   Case(stem[last+1:]),
		Split: true,
	}
}

// Case splits segment on underscores, lowercases each word and capitalises
// every alphanumeric run that starts at a word boundary.
func Case(segment string) string {
	lower := cases.Lower(language.Und)
	words := strings.Split(segment, "_")
	for i, word := range words {
		words[i] = wordStart.ReplaceAllStringFunc(lower.String(word), strings.ToUpper)
	}
	return strings.Join(words, " ")
}
