package tweet

import "fmt"

// A ConfigError reports a missing or malformed configuration file, or a
// fragment set with no usable candidates.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// A TemplateError reports a placeholder that cannot be resolved against the
// fragment library or the run's variables.
type TemplateError struct {
	Placeholder string
	Reason      string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template placeholder %q: %s", e.Placeholder, e.Reason)
}

// A ModelError reports a failed call to a generative model provider.
type ModelError struct {
	Provider string
	Stage    string
	Err      error
}

func (e *ModelError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("%s model: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %s model: %v", e.Provider, e.Stage, e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }

// An IOError reports a filesystem failure while persisting run artifacts.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
