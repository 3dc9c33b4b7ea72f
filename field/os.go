package field

// OsModel constrains a field to matching operating systems. Empty members
// match anything.
type OsModel struct {
	Family  string `yaml:"family,omitempty"`
	Name    string `yaml:"name,omitempty"`
	Version string `yaml:"version,omitempty"`
	Arch    string `yaml:"arch,omitempty"`
	Jre     string `yaml:"jre,omitempty"`
}
