package notion

import "strings"

// Property accessors. Every accessor returns a concrete default when the
// named property is missing, empty, or of another type, so record
// normalization never has to null-check.

// Title returns the first text run of a title property, or "".
func (p Page) Title(name string) string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.Title) == 0 {
		return ""
	}
	return prop.Title[0].PlainText
}

// PlainText returns all text runs of a rich-text property concatenated,
// or "". Concatenating keeps multi-run bodies intact instead of dropping
// everything after the first run.
func (p Page) PlainText(name string) string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.RichText) == 0 {
		return ""
	}
	var b strings.Builder
	for _, run := range prop.RichText {
		b.WriteString(run.PlainText)
	}
	return b.String()
}

// DateStart returns the start component of a date property, or "". The
// value is passed through unparsed; consumers treat dates as opaque
// display strings.
func (p Page) DateStart(name string) string {
	prop, ok := p.Properties[name]
	if !ok || prop.Date == nil {
		return ""
	}
	return prop.Date.Start
}

// Checkbox returns the value of a checkbox property, or false.
func (p Page) Checkbox(name string) bool {
	prop, ok := p.Properties[name]
	if !ok || prop.Checkbox == nil {
		return false
	}
	return *prop.Checkbox
}

// Number returns the value of a number property, or 0.
func (p Page) Number(name string) float64 {
	return p.NumberOr(name, 0)
}

// NumberOr returns the value of a number property, or def when absent.
func (p Page) NumberOr(name string, def float64) float64 {
	prop, ok := p.Properties[name]
	if !ok || prop.Number == nil {
		return def
	}
	return *prop.Number
}

// SelectName returns the selected option's name, or "".
func (p Page) SelectName(name string) string {
	prop, ok := p.Properties[name]
	if !ok || prop.Select == nil {
		return ""
	}
	return prop.Select.Name
}

// MultiSelectNames returns the selected option names in order, or an
// empty slice.
func (p Page) MultiSelectNames(name string) []string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.MultiSelect) == 0 {
		return []string{}
	}
	names := make([]string, 0, len(prop.MultiSelect))
	for _, opt := range prop.MultiSelect {
		names = append(names, opt.Name)
	}
	return names
}

// FileURLs returns the resolved URL of every entry of a files property in
// order. Notion-hosted URLs take precedence over external URLs; entries
// that resolve to nothing are dropped.
func (p Page) FileURLs(name string) []string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.Files) == 0 {
		return []string{}
	}
	urls := make([]string, 0, len(prop.Files))
	for _, f := range prop.Files {
		if url := resolveFileURL(f); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

// FirstFileURL returns the first resolved URL of a files property, or "".
func (p Page) FirstFileURL(name string) string {
	urls := p.FileURLs(name)
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}

func resolveFileURL(f File) string {
	if f.File != nil && f.File.URL != "" {
		return f.File.URL
	}
	if f.External != nil && f.External.URL != "" {
		return f.External.URL
	}
	return ""
}
