package cli

import (
	"io/fs"
	"strings"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/templates"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/utils"
)

// Cleaner handles cleaning up generated files
type Cleaner struct {
	files *utils.FileProcessor
}

// NewCleaner creates a new cleaner
func NewCleaner(files *utils.FileProcessor) *Cleaner {
	if files == nil {
		files = utils.NewFileProcessor()
	}
	return &Cleaner{files: files}
}

// CleanGeneratedFiles removes every generated interface file below outputDir
// and returns the removed paths. Files without the generated header are kept.
func (c *Cleaner) CleanGeneratedFiles(outputDir string) ([]string, error) {
	isGo := utils.SuffixFileFilter(".go")

	return c.files.RemoveMatching(outputDir, func(path string, info fs.DirEntry) bool {
		if !isGo(path, info) {
			return false
		}
		content, err := c.files.ReadText(path)
		if err != nil {
			return false
		}
		return strings.HasPrefix(content, templates.GeneratedHeader+"\n")
	})
}
