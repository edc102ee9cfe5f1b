package iso20022

import "errors"

var ErrMalformedBIC = errors.New("iso20022: BIC must be 8 or 11 characters")
