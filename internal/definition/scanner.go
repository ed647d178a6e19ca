package definition

import (
	"io/fs"
	"path/filepath"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/models"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/utils"
)

// Scanner discovers definition files of one kind below a set of registered roots
type Scanner struct {
	kind    models.Kind
	files   *utils.FileProcessor
	roots   []string
	rootSet map[string]bool
}

// NewScanner creates a scanner for kind reading through files
func NewScanner(kind models.Kind, files *utils.FileProcessor) *Scanner {
	if files == nil {
		files = utils.NewFileProcessor()
	}
	return &Scanner{
		kind:    kind,
		files:   files,
		rootSet: make(map[string]bool),
	}
}

// Kind returns the definition kind the scanner looks for
func (s *Scanner) Kind() models.Kind {
	return s.kind
}

// AddDirectory registers a root to scan. Registering the same directory twice
// is a no-op. Paths that do not exist or are not directories are skipped and
// report false.
func (s *Scanner) AddDirectory(path string) bool {
	abs, err := s.files.FileOps().Abs(path)
	if err != nil || !utils.IsDirectory(abs) {
		return false
	}
	if s.rootSet[abs] {
		return true
	}
	s.rootSet[abs] = true
	s.roots = append(s.roots, abs)
	return true
}

// Roots returns the registered roots in registration order
func (s *Scanner) Roots() []string {
	roots := make([]string, len(s.roots))
	copy(roots, s.roots)
	return roots
}

// Update scans every registered root and returns a new index of everything found
func (s *Scanner) Update() (*Index, error) {
	found, err := s.scan()
	if err != nil {
		return nil, err
	}

	index := newIndex(s.kind)
	for _, def := range found {
		index.add(def)
	}
	return index, nil
}

// UpdateOnePackage scans every registered root and returns an index holding
// only the definitions of pkg. Definitions whose kind directory sits directly
// inside a registered root are kept as well, since such a root is a package
// checked out under another directory name. Every kept definition is keyed to pkg.
func (s *Scanner) UpdateOnePackage(pkg string) (*Index, error) {
	found, err := s.scan()
	if err != nil {
		return nil, err
	}

	index := newIndex(s.kind)
	for _, def := range found {
		if def.Identifier.Package != pkg && !s.isRootPackage(def) {
			continue
		}
		def.Identifier = def.Identifier.WithPackage(pkg)
		index.add(def)
	}
	return index, nil
}

// isRootPackage reports whether def's package directory is a registered root
func (s *Scanner) isRootPackage(def models.RawDefinition) bool {
	return packageDir(def.Path) == def.Root
}

// scan walks the roots in registration order and reads every qualifying file
func (s *Scanner) scan() ([]models.RawDefinition, error) {
	filter := func(path string, info fs.DirEntry) bool {
		return !info.IsDir() && s.kind.Matches(path)
	}

	var found []models.RawDefinition
	seenPaths := make(map[string]bool)

	for _, root := range s.roots {
		paths, err := s.files.WalkFiles(root, utils.FileWalkOptions{
			FileFilter:      filter,
			DirectoryFilter: utils.DefaultDirectoryFilter(),
			SkipErrors:      true,
		})
		if err != nil {
			return nil, errors.WrapFileSystemError("scan", root, err)
		}

		for _, path := range paths {
			// Nested roots reach the same file twice
			if seenPaths[path] {
				continue
			}
			seenPaths[path] = true

			text, err := s.files.ReadText(path)
			if err != nil {
				return nil, err
			}

			found = append(found, models.RawDefinition{
				Identifier: models.NewTypeIdentifier(filepath.Base(packageDir(path)), s.kind.TypeName(path)),
				Text:       text,
				Kind:       s.kind,
				Path:       path,
				Root:       root,
			})
		}
	}

	return found, nil
}

// packageDir returns the directory containing the kind directory of path
func packageDir(path string) string {
	return filepath.Dir(filepath.Dir(path))
}
