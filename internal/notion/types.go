package notion

// Query describes a database query request body.
type Query struct {
	PageSize    int     `json:"page_size,omitempty"`
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
}

// Filter is a structured query filter. Exactly one of the condition fields
// should be set, or And should hold sub-filters.
type Filter struct {
	Property string          `json:"property,omitempty"`
	Checkbox *CheckboxFilter `json:"checkbox,omitempty"`
	Select   *SelectFilter   `json:"select,omitempty"`
	Title    *TitleFilter    `json:"title,omitempty"`
	And      []Filter        `json:"and,omitempty"`
}

// CheckboxFilter matches a checkbox property against a boolean.
type CheckboxFilter struct {
	Equals bool `json:"equals"`
}

// SelectFilter matches a select property against an option name.
type SelectFilter struct {
	Equals string `json:"equals"`
}

// TitleFilter matches a title property against its plain text.
type TitleFilter struct {
	Equals string `json:"equals"`
}

// Sort orders query results by a property.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// Sort directions accepted by the API.
const (
	Ascending  = "ascending"
	Descending = "descending"
)

// QueryResult is one page of query results.
type QueryResult struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// Page is one database row with its named, typed properties.
type Page struct {
	ID          string              `json:"id"`
	URL         string              `json:"url"`
	CreatedTime string              `json:"created_time"`
	Properties  map[string]Property `json:"properties"`
}

// Property is the tagged union of the property value types this system
// reads. Only the field matching the property's type is populated.
type Property struct {
	Type        string         `json:"type"`
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Date        *Date          `json:"date,omitempty"`
	Checkbox    *bool          `json:"checkbox,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Files       []File         `json:"files,omitempty"`
}

// RichText is a single text run.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// Date is a date property value. Start is an opaque display string; the
// consumer never parses it.
type Date struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// SelectOption is one option of a select or multi-select property.
type SelectOption struct {
	Name string `json:"name"`
}

// File is one entry of a files property. Notion-hosted files carry File,
// linked files carry External.
type File struct {
	Type     string      `json:"type"`
	File     *HostedFile `json:"file,omitempty"`
	External *HostedFile `json:"external,omitempty"`
}

// HostedFile holds the resolvable URL of a file entry.
type HostedFile struct {
	URL string `json:"url"`
}
