package config

import "gopkg.in/yaml.v3"

// ExampleDocsURL points at the upstream example theme configuration.
const ExampleDocsURL = "https://github.com/felishh77/astro-fish/blob/main/package/theme-example/astro-fish.theme.ts"

// ExampleYAML is a minimal working options file.
const ExampleYAML = `config:
  lang: en
  title: Fish Theme
  description: A beautiful blog theme
  side:
    title: Fish Theme
    sub: A blog theme
    bio: Cupidatat ex id eiusmod aute do labore ea minim eu fugiat Lorem fugiat adipisicing.
  # other config
`

// ExampleOptions returns ExampleYAML decoded into an options tree.
func ExampleOptions() map[string]any {
	var options map[string]any
	if err := yaml.Unmarshal([]byte(ExampleYAML), &options); err != nil {
		panic("config: invalid ExampleYAML: " + err.Error())
	}
	return options
}
