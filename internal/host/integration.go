package host

// Integration is a named handle carrying lifecycle hooks.
type Integration struct {
	Name  string `json:"name" yaml:"name"`
	Hooks *Hooks `json:"hooks" yaml:"hooks"`
}

// NewIntegration returns an integration with an empty hook table.
func NewIntegration(name string) *Integration {
	return &Integration{Name: name, Hooks: NewHooks()}
}
