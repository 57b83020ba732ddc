// Package descriptor reads the modDesc.xml metadata bundled in FS17 mod
// archives: textual repair of known-bad documents, a thin query model
// over the parsed tree, and localized-text resolution.
package descriptor

import (
	"regexp"
	"strings"
)

// literalFixes is the catalogue of known corruptions seen in published
// mods, applied in order before structural parsing. Each rule targets one
// observed bad input; this is not general sanitization.
var literalFixes = [][2]string{
	// Raw ampersand is not allowed in XML.
	{" & ", " and "},
	{"Bressel&Lade", "Bressel+Lade"},
	// "--" is not allowed inside comments.
	{"Fill--and", "Fill-and"},
	{"-- aanimazioni tubi --", " aanimazioni tubi "},
	// Attributes run together without a separating space.
	{`"configFilename=`, `" configFilename=`},
	{`"baleTypesDirectory=`, `" baleTypesDirectory=`},
	{`"endTransLimit="`, `" endTransLimit="`},
	{`"translationActive="`, `" translationActive="`},
	{`"scaleActive="`, `" scaleActive="`},
	{`"playSound="`, `" playSound="`},
	{`"rotationActive="`, `" rotationActive="`},
	{`"visibilityActive="`, `" visibilityActive="`},
	{`"index="`, `" index="`},
	// Stray CDATA terminator in one beta mod.
	{"and enjoy.]]></de>", "and enjoy.</de>"},
	// Bare URL with a raw ampersand inside a <function> element.
	{"<function>https://www.facebook.com/ETA-La-Marchoise-318371215013344/?ref=ts&fref=ts</function>", ""},
}

var (
	// Missing space after partOfEconomy="true" in some files. Matching the
	// following non-space keeps the rule idempotent.
	rePartOfEconomy = regexp.MustCompile(`partOfEconomy="true"(\S)`)

	// Comment block in FS17_Guellepack.zip that opens a comment around an
	// entire <vehicleTypeConfigurations> section and never closes cleanly.
	reVehicleTypeBlock = regexp.MustCompile(`(?ms)^<!--<vehicleTypeConfigurations>(.*?)^-->\s*$`)

	// Comment bodies frequently contain "--" and other junk; the content
	// is never needed, so every comment collapses to an empty one.
	reComment = regexp.MustCompile(`(?s)<!--(.*?)-->`)
)

// Repair applies the corruption catalogue to raw descriptor text. It is
// pure, never fails and is idempotent; inputs with corruptions outside the
// catalogue are returned still-broken and surface as parse errors later.
func Repair(text string) string {
	for _, fix := range literalFixes {
		text = strings.ReplaceAll(text, fix[0], fix[1])
	}
	text = rePartOfEconomy.ReplaceAllString(text, `partOfEconomy="true" $1`)
	text = reVehicleTypeBlock.ReplaceAllString(text, "\n\n\n\n\n\n\n\n\n")
	text = reComment.ReplaceAllString(text, "<!-- -->")
	return text
}
