package seed

import (
	"fmt"
	"os"
	"strings"
	"time"

	"training/internal/core/domain/model/training"
	"training/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Entry is one training of the fixture, mapped to domain values.
type Entry struct {
	Input        training.Input
	Status       training.StatusKind
	CancelReason string
}

// Loader reads fixture files.
type Loader struct {
	location *time.Location
}

type Option func(*Loader)

// WithLocation sets the time zone of dates written without an offset.
// UTC is used by default.
func WithLocation(loc *time.Location) Option {
	return func(l *Loader) { l.location = loc }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{location: time.UTC}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses the file at path. Values are only mapped here; the domain
// rules are applied when the entries are seeded.
func (l *Loader) Load(path string) ([]Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError(path, err)
	}

	var yc yamlCatalog
	if err = yaml.Unmarshal(b, &yc); err != nil {
		return nil, fileError(path, err)
	}

	entries := make([]Entry, 0, len(yc.Trainings))
	for i, yt := range yc.Trainings {
		entry, mapErr := l.mapEntry(path, i, yt)
		if mapErr != nil {
			return nil, mapErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

type yamlCatalog struct {
	Trainings []yamlTraining `yaml:"trainings"`
}

type yamlTraining struct {
	Title        string  `yaml:"title"`
	Description  string  `yaml:"description"`
	Date         string  `yaml:"date"`
	Location     string  `yaml:"location"`
	Capacity     int     `yaml:"capacity"`
	Level        string  `yaml:"level"`
	Price        float64 `yaml:"price"`
	Status       string  `yaml:"status"`
	CancelReason string  `yaml:"cancel_reason"`
}

func (l *Loader) mapEntry(path string, index int, yt yamlTraining) (Entry, error) {
	date, err := l.parseDate(yt.Date)
	if err != nil {
		return Entry{}, fieldError(path, index, "date", err)
	}

	level, err := training.ParseLevel(yt.Level)
	if err != nil {
		return Entry{}, fieldError(path, index, "level", err)
	}

	status, err := parseStatus(yt.Status)
	if err != nil {
		return Entry{}, fieldError(path, index, "status", err)
	}

	if status != training.Canceled && yt.CancelReason != "" {
		return Entry{}, fieldError(path, index, "cancel_reason",
			fmt.Errorf("only allowed with status canceled, got %s", status))
	}

	return Entry{
		Input: training.Input{
			Title:       yt.Title,
			Description: yt.Description,
			Date:        date,
			Location:    yt.Location,
			Capacity:    yt.Capacity,
			Level:       level,
			Price:       yt.Price,
		},
		Status:       status,
		CancelReason: yt.CancelReason,
	}, nil
}

func (l *Loader) parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errs.NewValueIsRequiredError("date")
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, l.location); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, l.location); err == nil {
		return t, nil
	}

	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
		"date",
		fmt.Errorf("%q is neither RFC 3339 nor YYYY-MM-DD", s),
	)
}

func parseStatus(s string) (training.StatusKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "draft":
		return training.Draft, nil
	case "open":
		return training.Open, nil
	case "completed":
		return training.Completed, nil
	case "canceled", "cancelled":
		return training.Canceled, nil
	default:
		return training.UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not one of draft, open, completed or canceled", s),
		)
	}
}
