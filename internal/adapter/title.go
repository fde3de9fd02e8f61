package adapter

import (
	"regexp"
	"strings"
)

// editionTerms are release markers that retailers append to titles.
// Longer phrases come first so that "Limited Edition" is removed as a whole.
var editionTerms = []string{
	`collector'?s edition`,
	`director'?s cut`,
	`limited edition`,
	`special edition`,
	`extended edition`,
	`extended cut`,
	`ultimate edition`,
	`anniversary edition`,
	`uncut`,
	`steelbook`,
	`mediabook`,
	`digibook`,
	`4k ultra hd`,
	`4k uhd`,
	`ultra hd`,
	`uhd`,
	`4k`,
	`blu-?ray 3d`,
	`blu-?ray`,
	`3d`,
	`dvd`,
}

const editionSeparators = `[\s\-–:,/+&]`

var (
	editionPattern = regexp.MustCompile(`(?i)\b(?:` + strings.Join(editionTerms, "|") + `)(?:\b|$)`)
	// only a run of markers at the very end counts, "Uncut Gems" stays intact
	editionSuffixPattern = regexp.MustCompile(`(?i)(?:` + editionSeparators + `+(?:` + strings.Join(editionTerms, "|") + `))+` + editionSeparators + `*$`)
	bracketPattern       = regexp.MustCompile(`[\[(][^\])]*[\])]`)
	spacePattern         = regexp.MustCompile(`\s+`)
	trailingPattern      = regexp.MustCompile(editionSeparators + `+$`)
)

// CleanTitle strips edition and format markers from a retail product title:
// bracketed segments that mention one (e.g. "[Blu-ray]", "(4K UHD)") are
// removed entirely, a trailing run of bare markers (e.g. "Steelbook Limited
// Edition") is cut off, and whitespace is normalized.
func CleanTitle(title string) string {
	title = bracketPattern.ReplaceAllStringFunc(title, func(segment string) string {
		if editionPattern.MatchString(segment) {
			return " "
		}
		return segment
	})
	title = spacePattern.ReplaceAllString(title, " ")
	title = editionSuffixPattern.ReplaceAllString(strings.TrimSpace(title), "")
	title = spacePattern.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)
	title = trailingPattern.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}
