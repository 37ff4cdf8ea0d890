// Package service implements the read paths of the content API.
//
// ContentService composes the three steps every content type shares:
// query the content store, discard unpublished records (fail closed),
// and normalize the survivors into flat, defaulted records. One
// normalizer per content type maps the store's typed properties onto
// the target shape; missing or malformed optional fields become the
// documented defaults and never produce errors.
//
// RelayService is the server-side pass-through fetch for assets hosted
// on origins the browser cannot load from directly.
//
// Services hold no mutable state; every call performs exactly one pass
// over fresh store data. Errors are returned to the handler layer, where
// they are mapped to problem-details responses.
package service
