package shared

type Title struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Every nation starts with (and displays) this title.
const DEFAULT_TITLE_ID = "president"

var TITLE_DEFINITIONS = map[string]Title{
	"president": {Name: "President", Color: "#3498db"},
	"emperor":   {Name: "Emperor", Color: "#FFD700"},
	"warlord":   {Name: "Warlord", Color: "#dc3545"},
	"innovator": {Name: "Innovator", Color: "#17a2b8"},
	"economist": {Name: "Economist", Color: "#28a745"},
	"diplomat":  {Name: "Diplomat", Color: "#6c757d"},
	"tycoon":    {Name: "Tycoon", Color: "#fd7e14"},
	"scholar":   {Name: "Scholar", Color: "#6f42c1"},
	"commander": {Name: "Commander", Color: "#007bff"},
	"pioneer":   {Name: "Pioneer", Color: "#20c997"},
	"guardian":  {Name: "Guardian", Color: "#6c757d"},
}

func ValidTitle(id string) bool {
	_, ok := TITLE_DEFINITIONS[id]
	return ok
}
