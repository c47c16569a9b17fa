package formats

import "encoding/json"

// JSON renders the report as indented JSON.
var JSON = &RenderFormat{
	Name: "json",
	Render: func(r Report) (string, error) {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	},
}
