package excel

import "fmt"

// SheetError reports a failed grid read for one sheet. Callers treat it as
// non-fatal: the sheet is skipped and conversion continues.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("read sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
