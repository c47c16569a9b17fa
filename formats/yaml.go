package formats

import "gopkg.in/yaml.v3"

// YAML renders the report as a YAML document.
var YAML = &RenderFormat{
	Name: "yaml",
	Render: func(r Report) (string, error) {
		data, err := yaml.Marshal(r)
		if err != nil {
			return "", err
		}
		return string(data), nil
	},
}
