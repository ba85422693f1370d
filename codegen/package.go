package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"pythoner/internal/diagnostic"
	"pythoner/internal/writer"
)

// InitModule is the module name that marks a directory as a Python package.
const InitModule = "__init__"

// Source file extension of generated modules.
const Ext = ".py"

// Diagnostic codes emitted by Package.Generate.
const (
	CodePackageExists = "package_exists"
	CodeOutputPath    = "output_path"
	CodeInitExists    = "init_exists"
)

// Package is a directory of modules. It always holds exactly one module
// named __init__.
type Package struct {
	name    string
	modules []*Module
	logger  logrus.FieldLogger
}

// NewPackage creates a package holding an empty __init__ module.
func NewPackage(name string) *Package {
	p := &Package{name: name, logger: logrus.StandardLogger()}
	p.Add(NewModule(InitModule))

	return p
}

func (p *Package) Name() string { return p.name }

func (*Package) Kind() Kind { return KindPackage }

// SetLogger replaces the logger used for generation notices.
func (p *Package) SetLogger(logger logrus.FieldLogger) *Package {
	p.logger = logger
	return p
}

// Add appends a module. A module named __init__ replaces the current one.
func (p *Package) Add(m *Module) *Package {
	if m.Name() == InitModule {
		kept := p.modules[:0]
		for _, old := range p.modules {
			if old.Name() != InitModule {
				kept = append(kept, old)
			}
		}

		p.modules = kept
	}

	p.modules = append(p.modules, m)

	return p
}

// Modules returns the modules in insertion order.
func (p *Package) Modules() []*Module {
	return append([]*Module(nil), p.modules...)
}

// Generate writes every module to <baseDir>/<package>/<module>.py on the
// OS filesystem. See GenerateFs.
func (p *Package) Generate(baseDir string) (diagnostic.Diagnostics, error) {
	return p.GenerateFs(afero.NewOsFs(), baseDir)
}

// GenerateFs writes every module to <baseDir>/<package>/<module>.py.
// An empty baseDir means the working directory. An existing __init__.py is
// never overwritten; other files are. Nothing is rolled back on failure.
func (p *Package) GenerateFs(fs afero.Fs, baseDir string) (diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return diags, fmt.Errorf("resolving working directory: %w", err)
		}

		baseDir = wd
	}

	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return diags, fmt.Errorf("resolving base directory %s: %w", baseDir, err)
	}

	target := filepath.Join(baseDir, p.name)

	exists, err := afero.DirExists(fs, target)
	if err != nil {
		return diags, fmt.Errorf("checking package directory %s: %w", target, err)
	}

	if exists {
		diags.AddInfo(CodePackageExists, "package already exists", p.name, target).Log(p.logger)
	}

	diags.AddInfo(CodeOutputPath, "writing package", p.name, target).Log(p.logger)

	files := make([]writer.File, 0, len(p.modules))

	for _, m := range p.modules {
		filename := m.Name() + Ext

		if m.Name() == InitModule {
			present, err := writer.Exists(fs, target, filename)
			if err != nil {
				return diags, err
			}

			if present {
				diags.AddWarning(CodeInitExists, "keeping existing file", p.name, filepath.Join(target, filename)).
					Log(p.logger)

				continue
			}
		}

		text, err := m.Generate()
		if err != nil {
			return diags, fmt.Errorf("generating module %s: %w", filename, err)
		}

		files = append(files, writer.File{Filename: filename, Content: []byte(text)})
	}

	if err := writer.WriteFiles(fs, files, target); err != nil {
		return diags, fmt.Errorf("writing package %s: %w", p.name, err)
	}

	return diags, nil
}
