package parser

import "fmt"

// MonthTokenError reports a date token whose month abbreviation is not one
// of the twelve recognized values.
type MonthTokenError struct {
	Token string
}

func (e *MonthTokenError) Error() string {
	return fmt.Sprintf("unrecognized month abbreviation %q", e.Token)
}

// NotFoundError reports an expected statement label that is absent from
// the text. This usually means the statement layout has drifted, not that
// the data is corrupt.
type NotFoundError struct {
	Label string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("label %q not found in statement text", e.Label)
}

// NoiseRecordAbsentError reports that no balance-payment record was found
// in the transaction list. Every statement is expected to contain at least
// one, so absence indicates an extraction problem.
type NoiseRecordAbsentError struct{}

func (e *NoiseRecordAbsentError) Error() string {
	return "no balance-payment record found in extracted transactions"
}
