package domain

// Supported environment identifiers. These are the names accepted in the
// configuration file and printed in report section headings.
const (
	EnvNodeJS = "Node.js"
	EnvPython = "Python"
	EnvRuby   = "Ruby"
	EnvMaven  = "Maven"
	EnvGo     = "Go"
)

// SupportedEnvironments lists every recognized environment in display order.
var SupportedEnvironments = []string{EnvNodeJS, EnvPython, EnvRuby, EnvMaven, EnvGo}

// ManifestFiles maps each environment to the manifest file that makes it
// applicable to a directory.
var ManifestFiles = map[string]string{
	EnvNodeJS: "package.json",
	EnvPython: "requirements.txt",
	EnvRuby:   "Gemfile",
	EnvMaven:  "pom.xml",
	EnvGo:     "go.mod",
}

// IsSupportedEnvironment reports whether name is a recognized environment.
func IsSupportedEnvironment(name string) bool {
	_, ok := ManifestFiles[name]
	return ok
}
