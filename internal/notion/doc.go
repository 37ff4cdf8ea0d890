// Package notion provides a minimal client for the Notion HTTP API.
//
// The client covers the single operation this system needs: querying a
// database for its pages, with an optional filter and sort order. Responses
// are decoded into Page values whose properties are read through null-safe
// accessors, so callers never have to inspect the raw property unions.
//
// # Property Accessors
//
// Notion properties are tagged unions (title, rich_text, date, checkbox,
// number, select, multi_select, files). Each accessor returns a concrete
// default when the property is missing, empty, or of a different type:
//
//	page.Title("Title")            // "" when absent
//	page.PlainText("Content")      // all runs concatenated, "" when absent
//	page.Checkbox("Published")     // false when absent
//	page.FileURLs("Photos")        // empty slice when absent
//
// # Errors
//
// A non-2xx response from the API is returned as *APIError carrying the
// upstream status code and error detail. Network failures are returned
// wrapped, unchanged.
package notion
