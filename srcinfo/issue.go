package srcinfo

import (
	"fmt"

	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/field"
)

// IssueKind classifies a parse issue.
type IssueKind uint8

const (
	// IssueInvalidLine means a non-blank, non-comment line is not "name = value".
	IssueInvalidLine IssueKind = iota + 1
	// IssueUnknownField means the field name is not in the catalog.
	IssueUnknownField
	// IssueFieldAlreadySet means a single-valued field was set twice in one section;
	// the old value is kept.
	IssueFieldAlreadySet
	// IssueIgnoredField means a known field appeared where its class does not allow it:
	// a base-only field in a derivative, or an architecture suffix on a field without one.
	IssueIgnoredField
)

// Issue describes one anomaly found while parsing a record.
//
// Issue implements error, so a handler escalates an issue by returning it.
type Issue struct {
	Kind IssueKind
	// Line is the trimmed offending line.
	Line string
	// Raw is the field token, unset for IssueInvalidLine.
	Raw field.Raw
	// Section is the section the line was read in.
	Section Section
	// OldValue is the kept value, set for IssueFieldAlreadySet.
	OldValue string
	// NewValue is the rejected value, set for IssueFieldAlreadySet.
	NewValue string
}

var _ error = Issue{}

func (i Issue) Error() string {
	switch i.Kind {
	case IssueInvalidLine:
		return fmt.Sprintf("invalid line: %q", i.Line)
	case IssueUnknownField:
		return fmt.Sprintf("unknown field: %q", i.Raw.String())
	case IssueFieldAlreadySet:
		if i.Section.IsBase() {
			return fmt.Sprintf("failed to insert value to the pkgbase section: %s is already set to %q",
				i.Raw.Name, i.OldValue)
		}

		return fmt.Sprintf("failed to insert value to the pkgname section named %s: %s is already set to %q",
			i.Section.name, i.Raw.Name, i.OldValue)
	case IssueIgnoredField:
		return fmt.Sprintf("field %q is not allowed in section %s", i.Raw.String(), i.Section)
	default:
		return "unknown issue"
	}
}

// Unwrap returns the sentinel error for the issue kind.
func (i Issue) Unwrap() error {
	switch i.Kind {
	case IssueInvalidLine:
		return errs.ErrInvalidLine
	case IssueUnknownField:
		return errs.ErrUnknownField
	case IssueFieldAlreadySet:
		return errs.ErrDuplicateField
	default:
		return errs.ErrIgnoredField
	}
}

// IssueHandler decides what happens to an issue: nil continues parsing, an error aborts it.
type IssueHandler func(Issue) error

// DefaultIssueHandler skips unknown and ignored fields and aborts on everything else.
func DefaultIssueHandler(issue Issue) error {
	if issue.Kind == IssueUnknownField || issue.Kind == IssueIgnoredField {
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
