// Package validate holds the per-field predicates of the registration form.
// Each predicate maps a raw value to a Result and never returns an error.
package validate

import "regexp"

const (
	HintEmailMissing      = "Please provide an email address"
	HintEmailFormat       = "Invalid email address format, please provide a valid email address and try again"
	HintActivitiesMissing = "at least one activity required"
	HintCardMissing       = "Please provide a valid credit card number"
	HintCardFormat        = "Credit card number must be between 13 - 16 digits"
	HintZipMissing        = "Please provide a valid zipcode"
	HintZipFormat         = "Zip Code must be 5 digits"
	HintCVVMissing        = "Please provide a valid cvv"
	HintCVVFormat         = "CVV must be 3 digits"
)

var (
	emailPattern     = regexp.MustCompile(`^\w+@\w+\.\w+$`)
	cardDigits       = regexp.MustCompile(`^\d{13,16}$`)
	cardNoSeparators = regexp.MustCompile(`^[^\s\-]+$`)
	// zipRun is unanchored: any value containing five consecutive digits
	// passes, including "123456".
	zipRun           = regexp.MustCompile(`\d{5}`)
	zipExact         = regexp.MustCompile(`^\d{5}$`)
	cvvExact         = regexp.MustCompile(`^\d{3}$`)
)

// Result is the outcome of one predicate. Hint is empty when Valid is true.
type Result struct {
	Valid bool
	Hint  string
}

func pass() Result { return Result{Valid: true} }

func fail(value, missing, format string) Result {
	if value == "" {
		return Result{Hint: missing}
	}
	return Result{Hint: format}
}

func Name(value string) Result {
	if len(value) > 0 {
		return pass()
	}
	return Result{}
}

func Email(value string) Result {
	if emailPattern.MatchString(value) {
		return pass()
	}
	return fail(value, HintEmailMissing, HintEmailFormat)
}

// Activities checks the derived selected count.
func Activities(selected int) Result {
	if selected > 0 {
		return pass()
	}
	return Result{Hint: HintActivitiesMissing}
}

func CreditCard(value string) Result {
	if cardDigits.MatchString(value) && cardNoSeparators.MatchString(value) {
		return pass()
	}
	return fail(value, HintCardMissing, HintCardFormat)
}

func ZipCode(value string) Result {
	if zipRun.MatchString(value) {
		return pass()
	}
	return fail(value, HintZipMissing, HintZipFormat)
}

// ZipCodeStrict accepts exactly five digits and nothing else.
func ZipCodeStrict(value string) Result {
	if zipExact.MatchString(value) {
		return pass()
	}
	return fail(value, HintZipMissing, HintZipFormat)
}

func CVV(value string) Result {
	if cvvExact.MatchString(value) {
		return pass()
	}
	return fail(value, HintCVVMissing, HintCVVFormat)
}

// Func is the shape shared by the string predicates.
type Func func(string) Result

// Zip picks the zip predicate for the configured strictness.
func Zip(strict bool) Func {
	if strict {
		return ZipCodeStrict
	}
	return ZipCode
}
