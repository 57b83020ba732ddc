package catalog

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"fs17-mod-catalog/internal/icon"
	"fs17-mod-catalog/internal/markup"
	"fs17-mod-catalog/internal/modarchive"
)

// preamble is the fixed document prolog. Output is UTF-8.
const preamble = `<?xml version="1.0" encoding="UTF-8" ?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`

const fsGreen = "#7fc032"

const css = `
    body {
        background-color:#1f1f1f;
        color:white;
    }
    table td, table td * {
        vertical-align: top;
    }
    .instDiv {
        background:` + fsGreen + `;
    }
    .fsgreen {
        color:` + fsGreen + `;
    }
    .desc {
        background:#3f3f3f;
        color:white;
    }
`

// Style carries the presentation settings the assembler needs.
type Style struct {
	Title      string
	IconSize   int
	IconFormat string
}

// categoryPrefix is a leading digits_ run on a category name. It orders
// categories without showing up in the rendered label.
var categoryPrefix = regexp.MustCompile(`^[0-9]+_`)

// displayLabel strips the ordering prefix from a raw category key.
func displayLabel(category string) string {
	return categoryPrefix.ReplaceAllString(category, "")
}

// Assemble groups entries by category and title and builds the full
// catalog document. Entries must be in discovery order; that order is
// kept for same-title duplicates within a category.
func Assemble(entries []*Entry, style Style) *markup.Document {
	doc := markup.NewDocument(preamble, "html")

	head := doc.Root.Child("head", nil, "")
	head.Child("title", nil, style.Title)
	head.Child("style", map[string]string{"type": "text/css"}, css)

	body := doc.Root.Child("body", nil, "")
	body.Child("h1", map[string]string{"class": "fsgreen"}, style.Title)

	categories, buckets := group(entries)
	table := body.Child("table", nil, "")

	// A flat vault needs no category navigation.
	flat := len(categories) == 1 && categories[0] == modarchive.CategoryNone
	if !flat {
		nav := table.Child("tr", nil, "")
		cell := nav.Child("td", map[string]string{"colspan": "4"}, "")
		for _, cat := range categories {
			cell.Child("a", map[string]string{"class": "fsgreen", "href": "#cat_" + displayLabel(cat)}, displayLabel(cat))
			cell.Child("br", nil, "")
		}
	}

	seq := 0
	for _, cat := range categories {
		if !flat {
			row := table.Child("tr", nil, "")
			row.Child("th", map[string]string{
				"class":   "fsgreen",
				"colspan": "4",
				"id":      "cat_" + displayLabel(cat),
			}, "Category: "+displayLabel(cat))
		}
		for _, e := range buckets[cat] {
			seq++
			appendEntry(table, e, seq, style)
		}
	}

	return doc
}

// group buckets entries by category, sorted within each category by the
// upper-cased title. The returned category keys are in lexical order of
// the raw (still prefixed) strings.
func group(entries []*Entry) ([]string, map[string][]*Entry) {
	buckets := make(map[string][]*Entry)
	for _, e := range entries {
		buckets[e.Category] = append(buckets[e.Category], e)
	}

	categories := make([]string, 0, len(buckets))
	for cat := range buckets {
		categories = append(categories, cat)
		// Stable: duplicates of the same title keep discovery order.
		sort.SliceStable(buckets[cat], func(i, j int) bool {
			return strings.ToUpper(buckets[cat][i].Title) < strings.ToUpper(buckets[cat][j].Title)
		})
	}
	sort.Strings(categories)

	return categories, buckets
}

// appendEntry renders one mod as a table row: sequence number, icon,
// details, description, followed by one row per store item.
func appendEntry(table *markup.Node, e *Entry, seq int, style Style) {
	var attrs map[string]string
	if e.Installed {
		attrs = map[string]string{"class": "instDiv"}
	}
	tr := table.Child("tr", attrs, "")

	tr.Child("td", nil, "").Child("b", nil, fmt.Sprintf("#%d", seq))

	size := strconv.Itoa(style.IconSize)
	tr.Child("td", nil, "").Child("img", map[string]string{
		"src":    "data:" + icon.MediaType(style.IconFormat) + ";base64," + base64.StdEncoding.EncodeToString(e.Icon),
		"width":  size,
		"height": size,
	}, "")

	info := tr.Child("td", nil, "")
	titleAttrs := map[string]string{}
	if !e.Installed {
		titleAttrs["class"] = "fsgreen"
	}
	info.Child("div", titleAttrs, "").Child("b", nil, e.Title)
	info.Child("i", nil, "").Child("small", nil, "").Child("a", map[string]string{"href": e.SourceID}, e.SourceID)
	info.Child("div", nil, "Version: "+e.Version)
	info.Child("div", nil, "").Child("small", nil, "Author: "+e.Author)
	info.Child("div", nil, "").Child("small", nil, "Installed: "+strconv.FormatBool(e.Installed))
	info.Child("div", nil, "").Child("small", nil, "Multiplayer: "+strconv.FormatBool(e.Multiplayer))
	info.Child("div", nil, "").Child("small", nil, "Map: "+strconv.FormatBool(e.IsMap))

	tr.Child("td", map[string]string{"class": "desc"}, "").Child("small", nil, e.Description)

	for _, item := range e.StoreItems {
		appendStoreItem(table, item)
	}
}

// appendStoreItem renders one purchasable object under its mod's row.
func appendStoreItem(table *markup.Node, item StoreItem) {
	tr := table.Child("tr", nil, "")
	tr.Child("td", nil, "")

	cell := tr.Child("td", map[string]string{"colspan": "3"}, "").Child("small", nil, "")
	name := item.Name
	if item.Brand != "" {
		name = item.Brand + " " + name
	}
	cell.Child("b", nil, name)
	cell.Child("span", nil, fmt.Sprintf(" [%s] price: %d, daily upkeep: %s", item.Category, item.Price, item.DailyUpkeep))
}
