package typescript

import (
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Config carries the TypeScript backend's options, read from the
// [bindings.typescript] table of a uniffi.toml file. The zero value is a
// valid config: the component's own name becomes the module name and
// external modules import by bare name.
type Config struct {
	// ModuleName overrides the component's own name in the generated
	// module.
	ModuleName string `toml:"module_name"`

	// ExternalImports maps a supplied external module to the import path
	// the generated bindings load it from.
	ExternalImports map[string]string `toml:"external_imports"`
}

type configFile struct {
	Bindings struct {
		Typescript Config `toml:"typescript"`
	} `toml:"bindings"`
}

// ParseConfig reads backend options from uniffi.toml contents. A missing
// [bindings.typescript] table yields the zero config; tables for other
// backends in the same file are ignored.
func ParseConfig(data []byte) (Config, error) {
	var f configFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Config{}, errors.Wrap(err, "parsing bindings config")
	}
	cfg := f.Bindings.Typescript
	for module, path := range cfg.ExternalImports {
		if path == "" {
			return Config{}, errors.Errorf("external_imports[%q] has an empty path", module)
		}
	}
	return cfg, nil
}
