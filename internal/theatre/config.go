package theatre

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/metinatakli/movie-theatre/internal/domain"
	"github.com/metinatakli/movie-theatre/internal/validator"
)

var (
	ErrInvalidHall   = errors.New("invalid hall")
	ErrInvalidPeriod = errors.New("invalid period")
)

var configValidator = validator.NewValidator()

// Hall is a screening room. Every session in it starts at Start.
type Hall struct {
	Name   string `validate:"required"`
	Title  string
	Places int `validate:"gte=0"`
	Start  TimeOfDay
}

// Window renders the session's time range for a movie of the given length.
func (h Hall) Window(durationMinutes int) string {
	end := h.Start.Add(time.Duration(durationMinutes) * time.Minute)
	return fmt.Sprintf("%s-%s", h.Start, end)
}

// Config is the theatre's hall and period layout. It is read-only once built.
type Config struct {
	halls      map[string]Hall
	hallOrder  []string
	periods    map[domain.PeriodKey]Period
	periodKeys []domain.PeriodKey
}

func newConfig() *Config {
	return &Config{
		halls:   make(map[string]Hall),
		periods: make(map[domain.PeriodKey]Period),
	}
}

func (c *Config) clone() *Config {
	out := newConfig()
	for _, name := range c.hallOrder {
		out.halls[name] = c.halls[name]
	}
	for _, key := range c.periodKeys {
		out.periods[key] = c.periods[key]
	}
	out.hallOrder = slices.Clone(c.hallOrder)
	out.periodKeys = slices.Clone(c.periodKeys)

	return out
}

func (c *Config) Hall(name string) (Hall, bool) {
	h, ok := c.halls[name]
	return h, ok
}

// Halls returns the halls in registration order.
func (c *Config) Halls() []Hall {
	out := make([]Hall, 0, len(c.hallOrder))
	for _, name := range c.hallOrder {
		out = append(out, c.halls[name])
	}

	return out
}

func (c *Config) Period(key domain.PeriodKey) (Period, bool) {
	p, ok := c.periods[key]
	return p, ok
}

// Periods returns the periods in registration order.
func (c *Config) Periods() []Period {
	out := make([]Period, 0, len(c.periodKeys))
	for _, key := range c.periodKeys {
		out = append(out, c.periods[key])
	}

	return out
}

// Builder assembles a Config. Every Add call validates its input against
// what has been registered so far and leaves the builder untouched on error.
type Builder struct {
	config *Config
}

func NewBuilder() *Builder {
	return &Builder{config: newConfig()}
}

// AddHall registers or replaces a hall.
func (b *Builder) AddHall(h Hall) error {
	if err := configValidator.Struct(h); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidHall, h.Name, err)
	}

	if _, ok := b.config.halls[h.Name]; !ok {
		b.config.hallOrder = append(b.config.hallOrder, h.Name)
	}
	b.config.halls[h.Name] = h

	return nil
}

// AddPeriod registers a period played in the named hall. It fails with a
// *domain.PeriodConflictError when the window overlaps any registered period.
func (b *Builder) AddPeriod(key domain.PeriodKey, start, end TimeOfDay, hall string) error {
	p := Period{Key: key, Start: start, End: end, Hall: hall}

	if err := b.validatePeriod(p); err != nil {
		return err
	}

	for _, existing := range b.config.Periods() {
		if existing.Intersects(p) {
			return &domain.PeriodConflictError{
				Existing: existing.Description(),
				Added:    p.Description(),
			}
		}
	}

	b.config.periods[key] = p
	b.config.periodKeys = append(b.config.periodKeys, key)

	return nil
}

func (b *Builder) validatePeriod(p Period) error {
	if err := configValidator.Var(p.Key.String(), "period_key"); err != nil || p.Key == domain.PeriodAny {
		return fmt.Errorf("%w: key %q is not allowed", ErrInvalidPeriod, p.Key)
	}
	if _, ok := b.config.periods[p.Key]; ok {
		return fmt.Errorf("%w: %q is already registered", ErrInvalidPeriod, p.Key)
	}
	if p.Start < 0 || p.Start >= minutesPerDay || p.End < 0 || p.End >= minutesPerDay {
		return fmt.Errorf("%w: %s is outside of the day", ErrInvalidPeriod, p.Description())
	}
	if p.Start == p.End {
		return fmt.Errorf("%w: %s is empty", ErrInvalidPeriod, p.Description())
	}
	if _, ok := b.config.halls[p.Hall]; !ok {
		return fmt.Errorf("%w %q for period %q", domain.ErrUnknownHall, p.Hall, p.Key)
	}

	return nil
}

// Build returns a snapshot of the registered configuration. Later Add calls
// do not affect configs already built.
func (b *Builder) Build() *Config {
	return b.config.clone()
}

// Rules populates a builder. The first error aborts configuration.
type Rules func(b *Builder) error

// NewConfig applies rules to a fresh builder, falling back to DefaultRules
// when rules is nil.
func NewConfig(rules Rules) (*Config, error) {
	if rules == nil {
		rules = DefaultRules
	}

	b := NewBuilder()
	if err := rules(b); err != nil {
		return nil, err
	}

	return b.Build(), nil
}

// DefaultRules registers a single hall and three periods covering the whole
// day: morning 04:00-12:00, day 12:00-16:00 and evening 16:00-04:00.
func DefaultRules(b *Builder) error {
	err := b.AddHall(Hall{Name: "red", Title: "Red hall", Places: 100, Start: Clock(15, 0)})
	if err != nil {
		return err
	}

	periods := []Period{
		{Key: domain.PeriodMorning, Start: Clock(4, 0), End: Clock(12, 0)},
		{Key: domain.PeriodDay, Start: Clock(12, 0), End: Clock(16, 0)},
		{Key: domain.PeriodEvening, Start: Clock(16, 0), End: Clock(4, 0)},
	}

	for _, p := range periods {
		if err := b.AddPeriod(p.Key, p.Start, p.End, "red"); err != nil {
			return err
		}
	}

	return nil
}

// DefaultConfig is the configuration built from DefaultRules.
func DefaultConfig() *Config {
	config, err := NewConfig(DefaultRules)
	if err != nil {
		panic(err)
	}

	return config
}
