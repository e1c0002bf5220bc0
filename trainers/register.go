package trainers

import (
	"sort"

	"github.com/pkg/errors"
)

// Config selects and configures a Trainer by name, for use with New. Fields that do not apply to
// the chosen kind are ignored.
type Config struct {
	// Kind is the registered name of the Trainer: "simple" or "dynamic", unless others have been
	// added with Register
	Kind string `yaml:"kind"`

	StartRate float32 `yaml:"start_rate"`
	EndRate   float32 `yaml:"end_rate"` // simple
	MaxRate   float32 `yaml:"max_rate"` // dynamic
	Momentum  float32 `yaml:"momentum"` // dynamic
	BatchSize int     `yaml:"batch_size"`

	// if zero, the shuffling seed is taken from the current time
	Seed int64 `yaml:"seed"`

	Status      func(Result) `yaml:"-"`
	StatusEvery int          `yaml:"status_every"`
}

var kinds = map[string]func(Config) (Trainer, error){
	"simple": func(c Config) (Trainer, error) {
		if err := checkSimple(c.StartRate, c.EndRate, c.BatchSize); err != nil {
			return nil, err
		}

		t := NewSimple(c.StartRate, c.EndRate, c.BatchSize)
		if c.Seed != 0 {
			t.Seed(c.Seed)
		}
		return t.Status(c.StatusEvery, c.Status), nil
	},
	"dynamic": func(c Config) (Trainer, error) {
		if err := checkDynamic(c.StartRate, c.MaxRate, c.Momentum, c.BatchSize); err != nil {
			return nil, err
		}

		t := NewDynamic(c.StartRate, c.MaxRate, c.Momentum, c.BatchSize)
		if c.Seed != 0 {
			t.Seed(c.Seed)
		}
		return t.Status(c.StatusEvery, c.Status), nil
	},
}

// New returns the Trainer registered under c.Kind, configured by c.
func New(c Config) (Trainer, error) {
	f, ok := kinds[c.Kind]
	if !ok {
		return nil, errors.Errorf("Trainer kind %q is not registered (have %v)", c.Kind, Kinds())
	}

	if c.Status != nil && c.StatusEvery < 1 {
		return nil, errors.Errorf("Status interval must be at least 1 (got %d)", c.StatusEvery)
	}

	t, err := f(c)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid config for %s trainer", c.Kind)
	}

	return t, nil
}

// Register adds a kind of Trainer for use by New. It is not safe to call concurrently with New,
// and is intended to be called from init functions.
func Register(kind string, f func(Config) (Trainer, error)) error {
	if f == nil {
		return errors.Errorf("Constructor for trainer kind %q is nil", kind)
	} else if _, ok := kinds[kind]; ok {
		return errors.Errorf("Trainer kind %q is already registered", kind)
	}

	kinds[kind] = f
	return nil
}

// Kinds returns the names of every registered kind of Trainer, sorted.
func Kinds() []string {
	ks := make([]string, 0, len(kinds))
	for k := range kinds {
		ks = append(ks, k)
	}

	sort.Strings(ks)
	return ks
}
