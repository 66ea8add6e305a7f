package training

import (
	"errors"
	"fmt"
	"math"
	"time"

	"training/internal/core/domain/model/kernel"
	"training/internal/pkg/errs"
	"training/internal/pkg/guard"
)

// MinCapacity is the smallest number of seats a training may offer.
const MinCapacity = 1

// ErrTrainingIsNotConstructed is returned when a Training was not created through
// NewTraining or a Factory.
var ErrTrainingIsNotConstructed = errors.New("Training must be created via NewTraining constructor")

// Input is the untrusted data a training is created from.
type Input struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	Capacity    int
	Level       Level
	Price       float64
}

// Validate checks the creation rules in precedence order and returns the
// first violation: title, description, location, capacity, price.
func (in Input) Validate() error {
	return firstViolation(
		func() error { return validateRequiredText("title", in.Title) },
		func() error { return validateRequiredText("description", in.Description) },
		func() error { return validateRequiredText("location", in.Location) },
		func() error { return validateCapacity(in.Capacity) },
		func() error { return validatePrice(in.Price) },
	)
}

// Training is a scheduled course. It is an immutable value: the lifecycle
// methods return an updated copy and leave the receiver untouched.
//
// Training follows these invariants:
//   - id is a valid UUID and never changes
//   - title, description and location are not empty
//   - capacity is at least MinCapacity and price is not negative
//   - level and status are valid variants
//   - updatedAt is never before createdAt
type Training struct {
	id          kernel.UUID
	title       string
	description string
	date        time.Time
	location    string
	capacity    int
	level       Level
	price       float64
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewTraining creates a Draft training identified by id, with createdAt and
// updatedAt set to now.
//
// The input is checked in the precedence order of Input.Validate, then the
// assembled training is validated as a whole before it is returned.
func NewTraining(id kernel.UUID, input Input, now time.Time) (Training, error) {
	if err := input.Validate(); err != nil {
		return Training{}, err
	}

	t := Training{
		id:          id,
		title:       input.Title,
		description: input.Description,
		date:        input.Date,
		location:    input.Location,
		capacity:    input.Capacity,
		level:       input.Level,
		price:       input.Price,
		status:      DraftStatus(),
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := t.Validate(); err != nil {
		return Training{}, err
	}

	return t, nil
}

// Validate checks every invariant and returns the first violation.
func (t Training) Validate() error {
	return firstViolation(
		func() error { return t.guard.Validate(ErrTrainingIsNotConstructed) },
		t.id.Validate,
		func() error { return validateRequiredText("title", t.title) },
		func() error { return validateRequiredText("description", t.description) },
		func() error { return validateRequiredText("location", t.location) },
		func() error { return validateCapacity(t.capacity) },
		func() error { return validatePrice(t.price) },
		t.level.Validate,
		t.status.Validate,
		func() error { return validateRequiredTime("date", t.date) },
		func() error { return validateRequiredTime("created at", t.createdAt) },
		func() error { return validateRequiredTime("updated at", t.updatedAt) },
		func() error {
			if t.updatedAt.Before(t.createdAt) {
				return errs.NewValueIsInvalidErrorWithCause(
					"updated at",
					fmt.Errorf("%s is before created at %s", t.updatedAt.Format(time.RFC3339Nano),
						t.createdAt.Format(time.RFC3339Nano)),
				)
			}
			return nil
		},
	)
}

// IsEqual compares two trainings by identity.
func (t Training) IsEqual(other Training) bool {
	return t.id.IsEqual(other.id)
}

func (t Training) ID() kernel.UUID {
	return t.id
}

func (t Training) Title() string {
	return t.title
}

func (t Training) Description() string {
	return t.description
}

// Date returns when the training takes place.
func (t Training) Date() time.Time {
	return t.date
}

func (t Training) Location() string {
	return t.location
}

func (t Training) Capacity() int {
	return t.capacity
}

func (t Training) Level() Level {
	return t.level
}

func (t Training) Price() float64 {
	return t.price
}

func (t Training) Status() Status {
	return t.status
}

func (t Training) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns the instant of the last change of status.
func (t Training) UpdatedAt() time.Time {
	return t.updatedAt
}

// UpdateStatus returns a copy of t moved to target (Draft, Open or Completed)
// with updatedAt set to now.
//
// When target is the current status, t itself is returned and updatedAt is
// not touched. Refused transitions are reported as
// *errs.TransitionIsNotAllowedError; see Status.TransitionTo for the rules.
//
// Example:
//
//	opened, err := draft.UpdateStatus(training.Open, clock())
//	if err != nil {
//	    // draft is still valid and unchanged
//	}
func (t Training) UpdateStatus(target StatusKind, now time.Time) (Training, error) {
	if err := t.Validate(); err != nil {
		return Training{}, err
	}

	next, err := t.status.TransitionTo(target)
	if err != nil {
		return Training{}, err
	}

	if next == t.status {
		return t, nil
	}

	return t.withStatus(next, now)
}

// Cancel returns a copy of t in the Canceled status carrying reason, with
// updatedAt set to now. Only Draft and Open trainings can be canceled; see
// Status.Cancel for the rules.
func (t Training) Cancel(reason string, now time.Time) (Training, error) {
	if err := t.Validate(); err != nil {
		return Training{}, err
	}

	next, err := t.status.Cancel(reason)
	if err != nil {
		return Training{}, err
	}

	return t.withStatus(next, now)
}

func (t Training) withStatus(status Status, now time.Time) (Training, error) {
	if now.Before(t.updatedAt) {
		return Training{}, errs.NewValueIsInvalidErrorWithCause(
			"updated at",
			fmt.Errorf("%s is before the last update %s", now.Format(time.RFC3339Nano),
				t.updatedAt.Format(time.RFC3339Nano)),
		)
	}

	updated := t
	updated.status = status
	updated.updatedAt = now

	if err := updated.Validate(); err != nil {
		return Training{}, err
	}

	return updated, nil
}

func firstViolation(checks ...func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func validateRequiredText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func validateRequiredTime(name string, value time.Time) error {
	if value.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func validateCapacity(capacity int) error {
	if capacity < MinCapacity {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%d is less than %d", capacity, MinCapacity),
		)
	}
	return nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not a number", price))
	}
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	return nil
}
