package format

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrNilArgument              = errors.New("name and formatter are both required")
	ErrRegistrationNotSupported = errors.New("the registry does not support registering new formatters")
	ErrDuplicatedFormatter      = errors.New("formatter with such name is already registered")
	ErrFormatterNotFound        = errors.New("formatter not found")
)

// Registry is a name-keyed store of formatters. Registration is insert-only:
// a name is never overwritten. A sealed registry rejects registration
// altogether.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
	sealed     bool
}

func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// NewSealedRegistry copies the given formatters into a registry frozen against
// further registration.
func NewSealedRegistry(formatters map[string]Formatter) *Registry {
	frozen := make(map[string]Formatter, len(formatters))
	for name, f := range formatters {
		frozen[name] = f
	}
	return &Registry{formatters: frozen, sealed: true}
}

// NewDefaultRegistry returns a mutable registry with the two built-in
// formatters registered under "json" and "xml".
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	_ = reg.Register(JSONFormat, JSONFormatter{})
	_ = reg.Register(XMLFormat, XMLFormatter{})
	return reg
}

func (r *Registry) Register(name string, formatter Formatter) error {
	if name == "" || formatter == nil {
		return ErrNilArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrRegistrationNotSupported
	}
	if _, ok := r.formatters[name]; ok {
		return errors.Wrapf(ErrDuplicatedFormatter, "%q", name)
	}
	r.formatters[name] = formatter
	return nil
}

func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formatter, ok := r.formatters[name]
	if !ok {
		return nil, errors.Wrapf(ErrFormatterNotFound, "%q", name)
	}
	return formatter, nil
}
