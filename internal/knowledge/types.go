package knowledge

// Facility is one named campus location the bot can answer questions about.
type Facility struct {
	// Key is the lowercase lookup identifier, e.g. "library".
	Key string `yaml:"key" json:"key"`
	// Name is how the facility is referred to in answers, e.g. "coffee shop".
	Name string `yaml:"name" json:"name"`
	// Aliases are extra lowercase phrases that also identify the facility.
	Aliases  []string `yaml:"aliases" json:"aliases,omitempty"`
	Location string   `yaml:"location" json:"location,omitempty"`
	Hours    string   `yaml:"hours" json:"hours,omitempty"`
	Details  string   `yaml:"details" json:"details,omitempty"`
	// Responses are pre-written paragraphs; one is picked per answer.
	Responses []string `yaml:"responses" json:"responses"`
}

// DisplayName returns Name, or Key when no name is set.
func (f Facility) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.Key
}

// Terms returns the key followed by the aliases, in lookup order.
func (f Facility) Terms() []string {
	terms := make([]string, 0, 1+len(f.Aliases))
	terms = append(terms, f.Key)
	terms = append(terms, f.Aliases...)
	return terms
}

// file is the on-disk shape of a knowledge YAML file.
type file struct {
	Facilities []Facility `yaml:"facilities"`
}
