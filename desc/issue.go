package desc

import (
	"fmt"

	"github.com/arloliu/pkgtext/errs"
)

// IssueKind classifies a parse issue.
type IssueKind uint8

const (
	// IssueEmptyInput means the record has no field line at all.
	IssueEmptyInput IssueKind = iota + 1
	// IssueValueWithoutField means a line appears before the first field line.
	IssueValueWithoutField
	// IssueUnknownField means a well-formed field line names no known field.
	IssueUnknownField
	// IssueDuplicateField means a field appears twice; the first value is kept.
	IssueDuplicateField
)

// Issue describes one anomaly found while parsing a record.
//
// Issue implements error, so a handler escalates an issue by returning it.
type Issue struct {
	Kind IssueKind
	// Line is the offending line, set for IssueValueWithoutField.
	Line string
	// Field is the raw field name, set for IssueUnknownField and IssueDuplicateField.
	Field string
	// Cause is the tokenizer error for IssueValueWithoutField.
	Cause error
}

var _ error = Issue{}

func (i Issue) Error() string {
	switch i.Kind {
	case IssueEmptyInput:
		return "input is empty"
	case IssueValueWithoutField:
		return fmt.Sprintf("receive a value without field: %q", i.Line)
	case IssueUnknownField:
		return fmt.Sprintf("unknown field: %q", i.Field)
	case IssueDuplicateField:
		return fmt.Sprintf("field already set: %q", i.Field)
	default:
		return "unknown issue"
	}
}

// Unwrap returns the sentinel error for the issue kind.
func (i Issue) Unwrap() error {
	switch i.Kind {
	case IssueEmptyInput:
		return errs.ErrEmptyInput
	case IssueValueWithoutField:
		return errs.ErrValueWithoutField
	case IssueUnknownField:
		return errs.ErrUnknownField
	default:
		return errs.ErrDuplicateField
	}
}

// IssueHandler decides what happens to an issue: nil continues parsing, an error aborts it.
type IssueHandler func(Issue) error

// DefaultIssueHandler skips unknown fields and aborts on everything else.
func DefaultIssueHandler(issue Issue) error {
	if issue.Kind == IssueUnknownField {
		return nil
	}

	return issue
}

// IgnoreIssues continues past every issue.
func IgnoreIssues(Issue) error {
	return nil
}

// CollectIssues returns a handler that appends every issue to dst and continues.
func CollectIssues(dst *[]Issue) IssueHandler {
	return func(issue Issue) error {
		*dst = append(*dst, issue)
		return nil
	}
}
