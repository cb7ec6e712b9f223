package projectconfig

// MainGroup is the dependency group installed as regular dependencies.
// Every other group is installed as development-only.
const MainGroup = "main"

// Defaults applied when the document omits the corresponding field.
const (
	DefaultVersion       = "0.1.0"
	DefaultPythonVersion = "3.8"
)

// Config is the in-memory form of a project configuration document.
// Load applies defaults, so consumers can rely on Version, PythonVersion,
// and the template URLs being populated.
type Config struct {
	ProjectName   string `yaml:"project_name"`
	Version       string `yaml:"version"`
	PythonVersion string `yaml:"python_version"`

	// Dependencies maps a group name to an ordered list of dependency
	// names. DependencySources maps a dependency name to the named
	// repository it must be installed from.
	Dependencies      map[string][]string `yaml:"dependencies"`
	DependencySources map[string]string   `yaml:"dependency_sources"`

	Structure Structure `yaml:"structure"`

	RemoteURL          string `yaml:"remote_url"`
	GitignoreURL       string `yaml:"gitignore_url"`
	PreCommitConfigURL string `yaml:"pre_commit_config_url"`
	LicenseURL         string `yaml:"license_url"`
}
