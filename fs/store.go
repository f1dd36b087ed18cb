package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/wixbook"
)

// Ensure FileStore implements wixbook.DocumentStore at compile time.
var _ wixbook.DocumentStore = (*FileStore)(nil)

// FileStore implements wixbook.DocumentStore with atomic update semantics.
// Documents are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir   string
	name      string
	format    Format
	converter wixbook.Converter
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
// converter is only used for FormatMarkdown and may be nil otherwise.
func NewFileStore(baseDir, name string, format Format, converter wixbook.Converter) *FileStore {
	return &FileStore{
		baseDir:   baseDir,
		name:      name,
		format:    format,
		converter: converter,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the document to the temporary directory.
func (s *FileStore) Save(ctx context.Context, doc *wixbook.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc.SourceURL == "" {
		return wixbook.Errorf(wixbook.EINVALID, "document source URL required")
	}

	content, err := s.render(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), FileName(doc, s.format))
	return os.WriteFile(fullPath, []byte(content), 0644)
}

func (s *FileStore) render(doc *wixbook.Document) (string, error) {
	if s.format != FormatMarkdown {
		return doc.HTML(), nil
	}
	if s.converter == nil {
		return "", wixbook.Errorf(wixbook.EINTERNAL, "markdown output requires a converter")
	}
	return FormatMarkdownDocument(doc, s.converter)
}

// Commit replaces the output directory with the saved documents.
func (s *FileStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the temporary directory.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
