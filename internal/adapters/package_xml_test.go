package adapters

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPackageXMLWithVersions = `<?xml version="1.0"?>
<package format="3">
  <name>my_node</name>
  <version>1.0.0</version>
  <description>Test package</description>

  <buildtool_depend>ament_cmake</buildtool_depend>

  <depend version_eq="1.2.3">rclcpp</depend>
  <depend>std_msgs</depend>

  <build_depend version_eq="3.4.0">eigen</build_depend>
  <build_export_depend version_eq="0.7.1">tinyxml2</build_export_depend>
  <buildtool_export_depend version_eq="2.1">ament_cmake_python</buildtool_export_depend>

  <exec_depend version_eq="1.26.4">python3-numpy</exec_depend>
  <exec_depend version_gte="4.5">opencv</exec_depend>

  <doc_depend version_eq="7.1.2">python3-sphinx</doc_depend>
  <test_depend version_eq="1.0.0">ament_lint_auto</test_depend>

  <run_depend version_eq="9.9">ignored_legacy_tag</run_depend>

  <export>
    <build_type>ament_cmake</build_type>
  </export>
</package>
`

func writePackageXML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtractFixedVersions(t *testing.T) {
	path := writePackageXML(t, testPackageXMLWithVersions)

	fixed, err := NewPackageXMLAdapter().ExtractFixedVersions(path)
	require.NoError(t, err)

	want := map[string]string{
		"rclcpp":             "1.2.3",
		"eigen":              "3.4.0",
		"tinyxml2":           "0.7.1",
		"ament_cmake_python": "2.1",
		"python3-numpy":      "1.26.4",
		"python3-sphinx":     "7.1.2",
		"ament_lint_auto":    "1.0.0",
	}
	if diff := cmp.Diff(want, fixed.Versions); diff != "" {
		t.Fatalf("unexpected fixed versions (-want +got):\n%s", diff)
	}
	assert.Equal(t, path, fixed.Source)
	assert.Equal(t, "my_node", fixed.Package)
}

func TestExtractFixedVersionsSingleEq(t *testing.T) {
	path := writePackageXML(t, `<package format="3"><name>p</name><exec_depend version_eq="1.2.3">foo</exec_depend></package>`)

	fixed, err := NewPackageXMLAdapter().ExtractFixedVersions(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"foo": "1.2.3"}, fixed.Versions)
}

func TestExtractFixedVersionsUnsupportedOnly(t *testing.T) {
	path := writePackageXML(t, `<package format="3">
  <name>p</name>
  <depend version_gte="1.0">foo</depend>
  <depend version_lt="2.0" version_gt="1.1" version_lte="1.9">bar</depend>
</package>`)

	fixed, err := NewPackageXMLAdapter().ExtractFixedVersions(path)
	require.NoError(t, err)
	assert.Empty(t, fixed.Versions)
}

// captureLog redirects the global logger into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	decoder := json.NewDecoder(buf)
	for decoder.More() {
		entry := map[string]any{}
		require.NoError(t, decoder.Decode(&entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestExtractFixedVersionsWarnsOnInequality(t *testing.T) {
	buf := captureLog(t)
	path := writePackageXML(t, `<package format="3">
  <name>p</name>
  <depend version_gte="1.0">foo</depend>
</package>`)

	fixed, err := NewPackageXMLAdapter().ExtractFixedVersions(path)
	require.NoError(t, err)
	assert.Empty(t, fixed.Versions)

	entries := logEntries(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "version_gte", entries[0]["attribute"])
	assert.Equal(t, "foo", entries[0]["dependency"])
	assert.Equal(t, path, entries[0]["manifest"])
}

func TestExtractFixedVersionsMixedAttributes(t *testing.T) {
	path := writePackageXML(t, `<package format="3">
  <name>p</name>
  <depend version_gte="1.0" version_eq="1.4">foo</depend>
</package>`)

	fixed, err := NewPackageXMLAdapter().ExtractFixedVersions(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"foo": "1.4"}, fixed.Versions)
}

func TestExtractFixedVersionsDuplicate(t *testing.T) {
	path := writePackageXML(t, `<package format="3">
  <name>p</name>
  <build_depend version_eq="1.0.0">foo</build_depend>
  <exec_depend version_eq="2.0.0">foo</exec_depend>
</package>`)

	_, err := NewPackageXMLAdapter().ExtractFixedVersions(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "1.0.0")
	assert.Contains(t, err.Error(), "2.0.0")
	assert.Contains(t, err.Error(), "foo")
}

func TestExtractFixedVersionsNoVersions(t *testing.T) {
	path := writePackageXML(t, `<?xml version="1.0"?>
<package format="3">
  <name>empty_pkg</name>
  <depend>rclcpp</depend>
</package>`)

	fixed, err := NewPackageXMLAdapter().ExtractFixedVersions(path)
	require.NoError(t, err)
	assert.Empty(t, fixed.Versions)
}

func TestExtractFixedVersionsMissingFile(t *testing.T) {
	_, err := NewPackageXMLAdapter().ExtractFixedVersions(filepath.Join(t.TempDir(), "package.xml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestExtractFixedVersionsMalformed(t *testing.T) {
	path := writePackageXML(t, `<package><depend>foo</package>`)

	_, err := NewPackageXMLAdapter().ExtractFixedVersions(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestExtractFixedVersionsEmptyVersion(t *testing.T) {
	path := writePackageXML(t, `<package format="3">
  <name>p</name>
  <depend version_eq="">foo</depend>
</package>`)

	_, err := NewPackageXMLAdapter().ExtractFixedVersions(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "foo")
	assert.Contains(t, err.Error(), path)
}

func TestExtractFixedVersionsEmptyDependencyName(t *testing.T) {
	path := writePackageXML(t, `<package format="3">
  <name>p</name>
  <exec_depend version_eq="1.0">  </exec_depend>
</package>`)

	_, err := NewPackageXMLAdapter().ExtractFixedVersions(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), path)
}
