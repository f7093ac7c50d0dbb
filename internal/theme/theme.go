package theme

import (
	"sort"

	"git.home.luguber.info/inful/fishtheme/internal/host"
)

// Name is the name of the base integration.
const Name = "fish"

const (
	// NoMatchStyle is the placeholder stylesheet that resolves to nothing.
	NoMatchStyle = "./__no_match__"
	// EmptyComponent is the default target of every custom export slot.
	EmptyComponent = "./src/components/Empty.astro"

	// ImportUserCustomStyle is the virtual import carrying user stylesheets.
	ImportUserCustomStyle = "fish:userCustomStyle"
	// ImportCustomPrefix prefixes the virtual import of each custom export.
	ImportCustomPrefix = "fish:custom/"
)

// Custom export slots.
const (
	CustomScriptComponent  = "CustomScriptComponent"
	CustomPostHeaderTop    = "CustomPostHeaderTop"
	CustomPostHeaderBottom = "CustomPostHeaderBottom"
	CustomPostFooterTop    = "CustomPostFooterTop"
	CustomPostFooterBottom = "CustomPostFooterBottom"
)

// CustomSlots lists the custom export slots in declaration order.
var CustomSlots = []string{
	CustomScriptComponent,
	CustomPostHeaderTop,
	CustomPostHeaderBottom,
	CustomPostFooterTop,
	CustomPostFooterBottom,
}

// BundledIntegrations are installed alongside the base integration.
var BundledIntegrations = []string{"icon", "pagefind", "sitemap"}

// Imports holds the resolved virtual imports of the theme.
type Imports struct {
	UserCustomStyle []string          `json:"userCustomStyle" yaml:"userCustomStyle"`
	Custom          map[string]string `json:"custom" yaml:"custom"`
}

// DefaultImports returns the imports used when nothing is overridden.
func DefaultImports() Imports {
	custom := make(map[string]string, len(CustomSlots))
	for _, slot := range CustomSlots {
		custom[slot] = EmptyComponent
	}
	return Imports{
		UserCustomStyle: []string{NoMatchStyle},
		Custom:          custom,
	}
}

// Virtual flattens the imports into host import entries.
func (i Imports) Virtual() map[string][]string {
	out := make(map[string][]string, len(i.Custom)+1)
	out[ImportUserCustomStyle] = append([]string(nil), i.UserCustomStyle...)
	slots := make([]string, 0, len(i.Custom))
	for slot := range i.Custom {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	for _, slot := range slots {
		out[ImportCustomPrefix+slot] = []string{i.Custom[slot]}
	}
	return out
}

// Provide builds the base integration from the theme options. Its
// config:setup callback records the bundled integrations and the resolved
// imports into the host config.
func Provide(options map[string]any) (*host.Integration, error) {
	imports, err := ResolveImports(options["overrides"])
	if err != nil {
		return nil, err
	}

	in := host.NewIntegration(Name)
	in.Hooks.Set(host.HookConfigSetup, func(p *host.HookParams) (any, error) {
		var missing []string
		for _, name := range BundledIntegrations {
			if !p.Config.HasIntegration(name) {
				missing = append(missing, name)
			}
		}
		if err := p.UpdateConfig(host.Config{
			Integrations: missing,
			Imports:      imports.Virtual(),
		}); err != nil {
			return nil, err
		}
		p.Logger.Debug("Theme imports resolved", "imports", len(imports.Custom)+1)
		return nil, nil
	})
	return in, nil
}
