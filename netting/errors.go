package netting

import "errors"

var ErrInvalidAmount = errors.New("netting: obligation amount must be positive")
