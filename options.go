package saslprep

// An Option adjusts Prepare's behavior.
type Option func(*options)

type options struct {
	allowUnassigned bool
}

// AllowUnassigned permits code points that are unassigned in the tables'
// Unicode repertoire. RFC 4013 reserves this for querying or comparing
// against stored strings, never for newly created identifiers.
// https://www.rfc-editor.org/rfc/rfc4013#section-2.5
var AllowUnassigned Option = func(o *options) {
	o.allowUnassigned = true
}
