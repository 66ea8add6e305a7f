package training

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"training/internal/pkg/errs"
)

// MinCancelReasonLength is the minimum number of characters in a cancellation reason.
const MinCancelReasonLength = 5

var (
	ErrDraftCannotBeCompleted    = errors.New("direct draft to completed transition is not allowed")
	ErrCompletedIsImmutable      = errors.New("completed training is immutable")
	ErrCanceledIsImmutable       = errors.New("canceled training is immutable")
	ErrCompletedCannotBeCanceled = errors.New("completed training cannot be canceled")
	ErrAlreadyCanceled           = errors.New("training is already canceled")

	// ErrCancelReasonIsRequired is returned for an empty cancellation reason.
	ErrCancelReasonIsRequired = errs.NewValueIsRequiredError("cancel reason")

	// ErrCancelReasonIsTooShort is the cause carried by the error returned for
	// a reason shorter than MinCancelReasonLength.
	ErrCancelReasonIsTooShort = errors.New("cancel reason is too short")
)

// StatusKind discriminates the variants of Status.
type StatusKind int

const (
	// UnknownStatus is the zero value and is never valid.
	UnknownStatus StatusKind = iota

	// Draft is the initial status of every training.
	Draft

	// Open trainings are published. They may be completed or moved back to Draft.
	Open

	// Completed is final.
	Completed

	// Canceled is final and carries the reason. It is reached only through Cancel.
	Canceled
)

func getStatusKindStrings() map[StatusKind]string {
	return map[StatusKind]string{
		UnknownStatus: "Unknown",
		Draft:         "Draft",
		Open:          "Open",
		Completed:     "Completed",
		Canceled:      "Canceled",
	}
}

// String returns the name of the kind.
func (k StatusKind) String() string {
	if str, ok := getStatusKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Status is the lifecycle state of a training.
//
// State transitions:
//
//	Draft <──> Open ──> Completed
//	  │         │
//	  └────┬────┘
//	       └──> Canceled(reason)
//
// Status is a closed sum type: the only values are the ones returned by
// DraftStatus, OpenStatus, CompletedStatus and CanceledStatus. Branch on it
// with MatchStatus, which takes one function per variant.
type Status struct {
	kind   StatusKind
	reason string
}

// DraftStatus returns the Draft variant.
func DraftStatus() Status {
	return Status{kind: Draft}
}

// OpenStatus returns the Open variant.
func OpenStatus() Status {
	return Status{kind: Open}
}

// CompletedStatus returns the Completed variant.
func CompletedStatus() Status {
	return Status{kind: Completed}
}

// CanceledStatus returns the Canceled variant carrying reason.
// The reason must be non-empty and at least MinCancelReasonLength characters.
func CanceledStatus(reason string) (Status, error) {
	if err := validateCancelReason(reason); err != nil {
		return Status{}, err
	}
	return Status{kind: Canceled, reason: reason}, nil
}

// MatchStatus calls the function matching the variant of s and returns its result.
// It fails only for a Status that was not built by one of the constructors.
func MatchStatus[T any](
	s Status,
	draft func() T,
	open func() T,
	completed func() T,
	canceled func(reason string) T,
) (T, error) {
	switch s.kind {
	case Draft:
		return draft(), nil
	case Open:
		return open(), nil
	case Completed:
		return completed(), nil
	case Canceled:
		return canceled(s.reason), nil
	case UnknownStatus:
	}

	var zero T
	return zero, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s.kind))
}

// Kind returns the variant of the status.
func (s Status) Kind() StatusKind {
	return s.kind
}

// Reason returns the cancellation reason. It is empty for every other variant.
func (s Status) Reason() string {
	return s.reason
}

// String returns the variant name.
func (s Status) String() string {
	return s.kind.String()
}

// Validate checks that s is one of the four variants and that a Canceled
// status carries a valid reason.
func (s Status) Validate() error {
	none := func() error { return nil }

	reasonErr, err := MatchStatus(s, none, none, none, validateCancelReason)
	if err != nil {
		return err
	}
	return reasonErr
}

// TransitionTo moves the status to target, which must be Draft, Open or Completed.
//
// Rules, checked in order:
//   - target equal to the current kind: the status is returned unchanged
//   - Draft -> Completed: refused (ErrDraftCannotBeCompleted)
//   - from Completed: refused (ErrCompletedIsImmutable)
//   - from Canceled: refused (ErrCanceledIsImmutable)
//   - anything else succeeds, including Open -> Draft
func (s Status) TransitionTo(target StatusKind) (Status, error) {
	if err := s.Validate(); err != nil {
		return Status{}, err
	}

	if target != Draft && target != Open && target != Completed {
		return Status{}, errs.NewValueIsInvalidErrorWithCause(
			"target status",
			fmt.Errorf("%s is not a valid target status", target),
		)
	}

	if s.kind == target {
		return s, nil
	}

	switch {
	case s.kind == Draft && target == Completed:
		return Status{}, s.refuse(target, ErrDraftCannotBeCompleted)
	case s.kind == Completed:
		return Status{}, s.refuse(target, ErrCompletedIsImmutable)
	case s.kind == Canceled:
		return Status{}, s.refuse(target, ErrCanceledIsImmutable)
	}

	return Status{kind: target}, nil
}

// Cancel moves the status to Canceled with reason.
//
// Rules, checked in order:
//   - empty reason: ErrCancelReasonIsRequired
//   - reason shorter than MinCancelReasonLength: ErrCancelReasonIsTooShort
//   - from Completed: refused (ErrCompletedCannotBeCanceled)
//   - from Canceled: refused (ErrAlreadyCanceled)
func (s Status) Cancel(reason string) (Status, error) {
	if err := s.Validate(); err != nil {
		return Status{}, err
	}

	canceled, err := CanceledStatus(reason)
	if err != nil {
		return Status{}, err
	}

	switch s.kind {
	case Completed:
		return Status{}, s.refuse(Canceled, ErrCompletedCannotBeCanceled)
	case Canceled:
		return Status{}, s.refuse(Canceled, ErrAlreadyCanceled)
	case UnknownStatus, Draft, Open:
	}

	return canceled, nil
}

func (s Status) refuse(target StatusKind, rule error) error {
	return errs.NewTransitionIsNotAllowedErrorWithCause(s.kind.String(), target.String(), rule)
}

func validateCancelReason(reason string) error {
	if reason == "" {
		return ErrCancelReasonIsRequired
	}

	if n := utf8.RuneCountInString(reason); n < MinCancelReasonLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"cancel reason",
			fmt.Errorf("%w: %d characters, minimum is %d", ErrCancelReasonIsTooShort, n, MinCancelReasonLength),
		)
	}

	return nil
}
