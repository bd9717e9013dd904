// Package files persists composed artifacts to the office workspace.
//
// Artifacts are written as plain-text renderings under per-kind subfolders.
// Richer export formats (DOCX/PPTX/XLSX) are the job of downstream tooling;
// the composition core only needs a durable locator back.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Workspace subfolder names.
const (
	KindDocuments     = "documents"
	KindPresentations = "presentations"
	KindSpreadsheets  = "spreadsheets"
	KindTemplates     = "templates"
	KindExports       = "exports"
)

// Descriptor locates a persisted artifact.
type Descriptor struct {
	Status   string `json:"status"`
	FilePath string `json:"file_path"`
	Kind     string `json:"kind"`
}

// FileInfo describes a file in the workspace.
type FileInfo struct {
	FilePath string `json:"file_path"`
	Size     int64  `json:"size"`
	Modified int64  `json:"modified"`
}

// Saver is the persistence contract the composition tools depend on.
type Saver interface {
	SaveDocument(title string, paragraphs []string) (*Descriptor, error)
	SavePresentation(title string, slides []string) (*Descriptor, error)
	SaveWorkbook(title string, rows [][]any) (*Descriptor, error)
}

// Manager writes artifacts under a base workspace directory.
type Manager struct {
	baseDir string
}

// NewManager creates a manager rooted at baseDir, creating the workspace
// subfolders on first use.
func NewManager(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// BaseDir returns the workspace root.
func (m *Manager) BaseDir() string { return m.baseDir }

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normalizes a title into a filesystem- and id-safe slug.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugPattern.ReplaceAllString(slug, "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return "untitled"
	}
	return slug
}

// SaveDocument renders paragraphs to a text artifact under documents/.
func (m *Manager) SaveDocument(title string, paragraphs []string) (*Descriptor, error) {
	content := strings.Join(paragraphs, "\n\n") + "\n"
	return m.write(KindDocuments, title, content)
}

// SavePresentation renders slides to a text artifact under presentations/.
func (m *Manager) SavePresentation(title string, slides []string) (*Descriptor, error) {
	var b strings.Builder
	for i, slide := range slides {
		fmt.Fprintf(&b, "--- Slide %d ---\n%s\n", i+1, slide)
	}
	return m.write(KindPresentations, title, b.String())
}

// SaveWorkbook renders a row grid to a tab-separated text artifact under
// spreadsheets/.
func (m *Manager) SaveWorkbook(title string, rows [][]any) (*Descriptor, error) {
	var b strings.Builder
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%v", cell)
		}
		b.WriteString(strings.Join(cells, "\t"))
		b.WriteString("\n")
	}
	return m.write(KindSpreadsheets, title, b.String())
}

// List returns the files under a workspace subfolder, sorted by path.
func (m *Manager) List(kind string) ([]string, error) {
	dir, err := m.kindDir(kind)
	if err != nil {
		return nil, err
	}

	var items []string
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			items = append(items, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(items)
	return items, nil
}

// Stat returns metadata for a workspace file.
func (m *Manager) Stat(path string) (*FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &FileInfo{
		FilePath: abs,
		Size:     info.Size(),
		Modified: info.ModTime().Unix(),
	}, nil
}

// CreateFolder creates a named folder under a workspace subfolder.
func (m *Manager) CreateFolder(kind, name string) (string, error) {
	dir, err := m.kindDir(kind)
	if err != nil {
		return "", err
	}
	target := filepath.Join(dir, Slugify(name))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}
	return target, nil
}

func (m *Manager) kindDir(kind string) (string, error) {
	switch strings.ToLower(kind) {
	case KindDocuments, KindPresentations, KindSpreadsheets, KindTemplates, KindExports:
	default:
		return "", fmt.Errorf("unknown kind: %s", kind)
	}
	dir := filepath.Join(m.baseDir, strings.ToLower(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create workspace dir: %w", err)
	}
	return dir, nil
}

func (m *Manager) write(kind, title, content string) (*Descriptor, error) {
	dir, err := m.kindDir(kind)
	if err != nil {
		return nil, err
	}

	// Same collision rule as session ids: smallest free _N suffix.
	slug := Slugify(title)
	path := filepath.Join(dir, slug+".txt")
	for i := 1; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d.txt", slug, i))
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("write artifact: %w", err)
	}
	return &Descriptor{Status: "ok", FilePath: path, Kind: kind}, nil
}
