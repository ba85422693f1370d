package definition

// PackageDef is the root of a definition file.
type PackageDef struct {
	// Name of the package directory.
	Name string `yaml:"package" toml:"package"`

	// OrderClasses sorts the classes of every module by their depends lists.
	OrderClasses bool `yaml:"order_classes,omitempty" toml:"order_classes,omitempty"`

	// Modules in output order. A module named __init__ replaces the default one.
	Modules []ModuleDef `yaml:"modules" toml:"modules"`
}

// ModuleDef describes one .py file.
type ModuleDef struct {
	Name string `yaml:"name" toml:"name"`

	// Lines are written flat, before the classes.
	Lines []string `yaml:"lines,omitempty" toml:"lines,omitempty"`

	Classes []ClassDef `yaml:"classes,omitempty" toml:"classes,omitempty"`
}

// ClassDef describes one class.
type ClassDef struct {
	Name  string `yaml:"name" toml:"name"`
	Super string `yaml:"super,omitempty" toml:"super,omitempty"`

	// Depends names classes that must be declared before this one.
	Depends []string `yaml:"depends,omitempty" toml:"depends,omitempty"`

	// Body lines come right after the class header.
	Body []string `yaml:"body,omitempty" toml:"body,omitempty"`

	// Init generates an __init__ storing its parameters on self.
	// Its name is ignored.
	Init *MethodDef `yaml:"init,omitempty" toml:"init,omitempty"`

	Methods []MethodDef `yaml:"methods,omitempty" toml:"methods,omitempty"`
}

// MethodDef describes a method; self is implied.
type MethodDef struct {
	Name  string   `yaml:"name,omitempty" toml:"name,omitempty"`
	Args  []string `yaml:"args,omitempty" toml:"args,omitempty"`
	Named []ArgDef `yaml:"named,omitempty" toml:"named,omitempty"`
	Body  []string `yaml:"body,omitempty" toml:"body,omitempty"`
}

// ArgDef is a keyword parameter. Default is emitted verbatim.
type ArgDef struct {
	Name    string `yaml:"name" toml:"name"`
	Default string `yaml:"default" toml:"default"`
}
