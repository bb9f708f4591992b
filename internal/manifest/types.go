package manifest

// FileName is the descriptor file looked up in each template root. It is not
// a recognized source pattern, so it is never copied into generated projects.
const FileName = "template.yaml"

// TemplateManifest describes a template root.
type TemplateManifest struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Requires    string   `yaml:"requires,omitempty"` // semver constraint on the tool version
	Tags        []string `yaml:"tags,omitempty"`
}
