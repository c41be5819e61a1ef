package types

// ProjectSpec describes where the identifier tables of a test project live.
// Relative paths are resolved against the directory of the project file.
type ProjectSpec struct {
	APIVersion  string             `yaml:"api_version" validate:"required"`
	Application ApplicationSection `yaml:"application"`
	System      SystemSection      `yaml:"system"`
	Libraries   LibrariesSection   `yaml:"libraries"`

	// Dir is the directory the project file was loaded from.
	Dir string `yaml:"-"`
}

type ApplicationSection struct {
	Manifest string `yaml:"manifest" validate:"required"`
	Table    string `yaml:"table" validate:"required"`
	ResDir   string `yaml:"res_dir,omitempty"`
}

type SystemSection struct {
	Table  string `yaml:"table,omitempty"`
	ResDir string `yaml:"res_dir,omitempty"`
}

type LibrariesSection struct {
	Discover  bool              `yaml:"discover"`
	TablesDir string            `yaml:"tables_dir,omitempty" validate:"required_if=Discover true"`
	Mode      LibraryMode       `yaml:"mode,omitempty" validate:"omitempty,oneof=strict lenient"`
	Ignore    []string          `yaml:"ignore,omitempty" validate:"dive,required"`
	Explicit  []LibraryTableRef `yaml:"explicit,omitempty" validate:"dive"`
}

type LibraryTableRef struct {
	Identity string `yaml:"identity" validate:"required"`
	Table    string `yaml:"table" validate:"required"`
}

// LibraryProject is a library found next to the application, in
// discovery order.
type LibraryProject struct {
	Root     string
	Identity string
	Table    string
}
