package catalog

import (
	"strings"
	"testing"
)

func testStyle() Style {
	return Style{Title: "FS17 - Mod List", IconSize: 8, IconFormat: "png"}
}

func entry(category, title string) *Entry {
	return &Entry{
		SourceID: category + "/" + title + ".zip",
		FileName: title + ".zip",
		Category: category,
		Title:    title,
		Author:   "Jane",
		Version:  "1.0",
		Icon:     []byte{0x89},
	}
}

func TestAssembleDocumentShape(t *testing.T) {
	e := entry("None", "Alpha")
	out := Assemble([]*Entry{e}, testStyle()).Render(" ")

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8" ?>`,
		"<!DOCTYPE html PUBLIC",
		"<title>FS17 - Mod List</title>",
		`<style type="text/css">`,
		`<h1 class="fsgreen">FS17 - Mod List</h1>`,
		"<b>Alpha</b>",
		"Version: 1.0",
		"Author: Jane",
		`src="data:image/png;base64,iQ=="`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// Lexical sort on the raw prefixed keys: "10_Equipment" sorts before
// "2_Vehicles", and both labels lose their prefix in the rendered text.
func TestAssembleCategoryOrderAndLabels(t *testing.T) {
	entries := []*Entry{
		entry("2_Vehicles", "Truck"),
		entry("10_Equipment", "Plow"),
	}
	out := Assemble(entries, testStyle()).Render(" ")

	if strings.Contains(out, "10_Equipment") || strings.Contains(out, "2_Vehicles") {
		t.Error("numeric prefixes leaked into rendered output")
	}

	eq := strings.Index(out, "Category: Equipment")
	ve := strings.Index(out, "Category: Vehicles")
	if eq < 0 || ve < 0 {
		t.Fatalf("category headers missing:\n%s", out)
	}
	if eq > ve {
		t.Error("lexical order violated: 10_Equipment must precede 2_Vehicles")
	}

	if !strings.Contains(out, `href="#cat_Equipment"`) {
		t.Error("navigation anchor missing")
	}
}

func TestAssembleSequenceNumbersSpanCategories(t *testing.T) {
	entries := []*Entry{
		entry("b_cat", "One"),
		entry("a_cat", "Two"),
		entry("a_cat", "Other"),
	}
	out := Assemble(entries, testStyle()).Render(" ")

	// a_cat renders first (lexical), sorted Other < Two, then b_cat.
	for _, want := range []string{"#1", "#2", "#3"} {
		if !strings.Contains(out, "<b>"+want+"</b>") {
			t.Errorf("sequence number %s missing", want)
		}
	}
	if strings.Index(out, "<b>Other</b>") > strings.Index(out, "<b>Two</b>") {
		t.Error("entries within a category must sort by upper-cased title")
	}
	if strings.Index(out, "<b>Two</b>") > strings.Index(out, "<b>One</b>") {
		t.Error("a_cat entries must render before b_cat entries")
	}
}

// Same title twice in one category: both entries stay, in input order.
func TestAssembleDuplicateTitlesKeptInOrder(t *testing.T) {
	first := entry("None", "Same")
	first.Version = "1.0"
	second := entry("None", "Same")
	second.Version = "2.0"

	out := Assemble([]*Entry{first, second}, testStyle()).Render(" ")

	if strings.Count(out, "<b>Same</b>") != 2 {
		t.Fatal("duplicate titles must not be merged")
	}
	if strings.Index(out, "Version: 1.0") > strings.Index(out, "Version: 2.0") {
		t.Error("duplicates must keep discovery order")
	}
}

func TestAssembleSingleFlatCategory(t *testing.T) {
	out := Assemble([]*Entry{entry("None", "Alpha")}, testStyle()).Render(" ")

	if strings.Contains(out, "#cat_") {
		t.Error("navigation must be suppressed for a flat single-category vault")
	}
	if strings.Contains(out, "Category:") {
		t.Error("category header must be suppressed for a flat vault")
	}
}

func TestAssembleNavigationPresentForRealCategories(t *testing.T) {
	out := Assemble([]*Entry{entry("maps", "Alpha")}, testStyle()).Render(" ")

	if !strings.Contains(out, `href="#cat_maps"`) {
		t.Error("single non-None category still gets navigation")
	}
}

func TestAssembleInstalledMarker(t *testing.T) {
	installed := entry("None", "Alpha")
	installed.Installed = true
	plain := entry("None", "Beta")

	out := Assemble([]*Entry{installed, plain}, testStyle()).Render(" ")

	if !strings.Contains(out, `<tr class="instDiv">`) {
		t.Error("installed entry row missing instDiv marker")
	}
	if !strings.Contains(out, "Installed: true") || !strings.Contains(out, "Installed: false") {
		t.Error("installed status lines missing")
	}
}

func TestAssembleStoreItemRows(t *testing.T) {
	e := entry("None", "Alpha")
	e.StoreItems = []StoreItem{
		{Category: "plows", Brand: "Bressel+Lade", Name: "Big Plow", Price: 85000, DailyUpkeep: "120"},
		{Name: "Bare", Price: 0, DailyUpkeep: "0"},
	}

	out := Assemble([]*Entry{e}, testStyle()).Render(" ")

	if !strings.Contains(out, "<b>Bressel+Lade Big Plow</b>") {
		t.Error("branded store item name missing")
	}
	if !strings.Contains(out, "price: 85000, daily upkeep: 120") {
		t.Error("store item amounts missing")
	}
	if !strings.Contains(out, "<b>Bare</b>") {
		t.Error("brandless store item must render its plain name")
	}
}

func TestAssembleDeterministic(t *testing.T) {
	entries := func() []*Entry {
		return []*Entry{
			entry("2_Vehicles", "Truck"),
			entry("10_Equipment", "Plow"),
			entry("None", "Misc"),
		}
	}

	a := Assemble(entries(), testStyle()).Render(" ")
	b := Assemble(entries(), testStyle()).Render(" ")
	if a != b {
		t.Error("Assemble output differs between identical runs")
	}
}
