package payroll

import "errors"

var ErrEntryNotFound = errors.New("payroll entry not found")
