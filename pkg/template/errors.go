package template

import "fmt"

// ConfigError reports a template source that is absent, malformed, or missing
// a required key. Source names the file or logical origin; Key names the YAML
// entry at fault when the failure is key-scoped.
type ConfigError struct {
	Source string
	Key    string
	Err    error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Key != "" && e.Source != "":
		return fmt.Sprintf("template: %s: key %q: %v", e.Source, e.Key, e.Err)
	case e.Key != "":
		return fmt.Sprintf("template: key %q: %v", e.Key, e.Err)
	case e.Source != "":
		return fmt.Sprintf("template: %s: %v", e.Source, e.Err)
	default:
		return fmt.Sprintf("template: %v", e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
