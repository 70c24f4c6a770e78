package template

import "path"

// FileSpec describes one generated file: the directory it lands in relative
// to the project root, its filename, and the embedded template that produces
// its content.
type FileSpec struct {
	Dir      string // relative to the project root, "" for the root itself
	Name     string
	Template string // path within the embedded template filesystem
}

// RelPath returns the file's destination path relative to the project root,
// using forward slashes.
func (f FileSpec) RelPath() string {
	return path.Join(f.Dir, f.Name)
}

// Directories returns the directory skeleton for a generated project,
// in creation order.
func Directories(packageName string) []string {
	return []string{
		"src",
		path.Join("src", packageName),
		"tests",
		".github",
		path.Join(".github", "workflows"),
	}
}

// Files returns the file manifest for the given template kind. The standard
// set covers every generated file; minimal drops the git-hook and CI
// configuration; web adds a FastAPI application module.
func Files(kind Kind, packageName string) []FileSpec {
	pkgDir := path.Join("src", packageName)

	files := []FileSpec{
		{Dir: "", Name: "pyproject.toml", Template: "pyproject.toml.tmpl"},
		{Dir: "", Name: ".python-version", Template: "python-version.tmpl"},
		{Dir: "", Name: ".gitignore", Template: "gitignore.tmpl"},
		{Dir: "", Name: "README.md", Template: "README.md.tmpl"},
	}

	if kind != KindMinimal {
		files = append(files,
			FileSpec{Dir: "", Name: ".pre-commit-config.yaml", Template: "pre-commit-config.yaml.tmpl"},
			FileSpec{Dir: path.Join(".github", "workflows"), Name: "ci.yml", Template: "ci.yml.tmpl"},
		)
	}

	files = append(files,
		FileSpec{Dir: pkgDir, Name: "__init__.py", Template: "init.py.tmpl"},
		FileSpec{Dir: pkgDir, Name: "main.py", Template: "main.py.tmpl"},
	)

	if kind == KindWeb {
		files = append(files, FileSpec{Dir: pkgDir, Name: "app.py", Template: "app.py.tmpl"})
	}

	files = append(files,
		FileSpec{Dir: "tests", Name: "__init__.py", Template: "tests-init.py.tmpl"},
		FileSpec{Dir: "tests", Name: "test_" + packageName + ".py", Template: "test-package.py.tmpl"},
	)

	return files
}
