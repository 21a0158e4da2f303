package reconcile

import "fmt"

// DebitMismatchError reports a simple-form statement whose transaction sum
// does not match the declared debit amount.
type DebitMismatchError struct {
	Declared float64
	Computed float64
}

func (e *DebitMismatchError) Error() string {
	return fmt.Sprintf("debit amount mismatch: statement declares %.2f, extracted records sum to %.2f",
		e.Declared, e.Computed)
}

// PaymentsMismatchError reports a detailed-form statement whose credit sum
// does not match the declared payments figure.
type PaymentsMismatchError struct {
	Declared float64
	Computed float64
}

func (e *PaymentsMismatchError) Error() string {
	return fmt.Sprintf("payments mismatch: statement declares %.2f, extracted credits sum to %.2f",
		e.Declared, e.Computed)
}

// NewChargesMismatchError reports a detailed-form statement whose charge
// sum does not match the declared new charges figure.
type NewChargesMismatchError struct {
	Declared float64
	Computed float64
}

func (e *NewChargesMismatchError) Error() string {
	return fmt.Sprintf("new charges mismatch: statement declares %.2f, extracted charges sum to %.2f",
		e.Declared, e.Computed)
}

// ClosingBalanceMismatchError reports a detailed-form statement whose
// closing balance does not equal opening balance plus extracted sums.
type ClosingBalanceMismatchError struct {
	Declared float64
	Computed float64
}

func (e *ClosingBalanceMismatchError) Error() string {
	return fmt.Sprintf("closing balance mismatch: statement declares %.2f, computed %.2f",
		e.Declared, e.Computed)
}
