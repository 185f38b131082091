package request

import "cinema-tickets/pkg/utils"

// Decoded holds the field errors found while decoding a request body, so they
// are reported together with the validation errors of the other fields.
type Decoded struct {
	decodeErrors utils.FieldErrors
}

func (d *Decoded) SetDecodeErrors(errs utils.FieldErrors) {
	d.decodeErrors = errs
}

func (d *Decoded) DecodeErrors() utils.FieldErrors {
	return d.decodeErrors
}
