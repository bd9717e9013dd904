package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple", "Quarterly Report", "quarterly_report"},
		{"punctuation", "Q3: Results & Outlook!", "q3_results_outlook"},
		{"leading trailing", "  --Notes--  ", "notes"},
		{"already slug", "notes_2024", "notes_2024"},
		{"empty", "", "untitled"},
		{"only symbols", "!!!", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}

func TestSaveArtifacts(t *testing.T) {
	m := NewManager(t.TempDir())

	doc, err := m.SaveDocument("quality doc", []string{"Heading", "Hello World"})
	require.NoError(t, err)
	pres, err := m.SavePresentation("quality pres", []string{"Slide A", "Slide B"})
	require.NoError(t, err)
	wb, err := m.SaveWorkbook("quality sheet", [][]any{{"A", "B"}, {1, 2}})
	require.NoError(t, err)

	for _, d := range []*Descriptor{doc, pres, wb} {
		assert.Equal(t, "ok", d.Status)
		assert.FileExists(t, d.FilePath)
		assert.Equal(t, ".txt", filepath.Ext(d.FilePath))
	}

	content, err := os.ReadFile(doc.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Hello World")

	content, err = os.ReadFile(wb.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "A\tB")
}

func TestSaveCollisionSuffix(t *testing.T) {
	m := NewManager(t.TempDir())

	first, err := m.SaveDocument("notes", []string{"one"})
	require.NoError(t, err)
	second, err := m.SaveDocument("notes", []string{"two"})
	require.NoError(t, err)

	assert.NotEqual(t, first.FilePath, second.FilePath)
	assert.True(t, strings.HasSuffix(second.FilePath, "notes_1.txt"))
}

func TestListAndStat(t *testing.T) {
	m := NewManager(t.TempDir())

	d, err := m.SaveDocument("alpha", []string{"content"})
	require.NoError(t, err)

	items, err := m.List("documents")
	require.NoError(t, err)
	assert.Equal(t, []string{d.FilePath}, items)

	_, err = m.List("videos")
	assert.EqualError(t, err, "unknown kind: videos")

	info, err := m.Stat(d.FilePath)
	require.NoError(t, err)
	assert.Greater(t, info.Size, int64(0))

	_, err = m.Stat(filepath.Join(m.BaseDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestCreateFolder(t *testing.T) {
	m := NewManager(t.TempDir())

	path, err := m.CreateFolder("templates", "Monthly Reports")
	require.NoError(t, err)
	assert.DirExists(t, path)
	assert.True(t, strings.HasSuffix(path, "monthly_reports"))
}
