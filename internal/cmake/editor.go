package cmake

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	werrors "github.com/extwizard/extwizard/internal/errors"
	"github.com/extwizard/extwizard/internal/output"
)

// ScriptName is the build script edited in a project directory.
const ScriptName = "CMakeLists.txt"

// PlaceholderMarker marks where new modules are inserted.
const PlaceholderMarker = "## NEXT_MODULE"

var (
	rePlaceholder     = regexp.MustCompile(`(?m)^([ \t]*)` + regexp.QuoteMeta(PlaceholderMarker))
	reAddSubdirectory = regexp.MustCompile(`(?m)^([ \t]*)add_subdirectory[(][^)]+[)][^\n]*\n`)
)

// InsertSubdirectory returns script with an add_subdirectory(name) line
// inserted at the insertion point.
func InsertSubdirectory(script, name string) (string, error) {
	offset, indent, ok := insertionPoint(script)
	if !ok {
		return "", werrors.NewNoInsertionPointError(
			"failed to find insertion point for module in parent "+ScriptName, "")
	}

	line := fmt.Sprintf("%sadd_subdirectory(%s)\n", indent, name)
	return script[:offset] + line + script[offset:], nil
}

// insertionPoint returns the byte offset where the new line goes and the
// indentation to give it.
func insertionPoint(script string) (int, string, bool) {
	if m := rePlaceholder.FindStringSubmatchIndex(script); m != nil {
		return m[0], script[m[2]:m[3]], true
	}

	matches := reAddSubdirectory.FindAllStringSubmatchIndex(script, -1)
	if len(matches) == 0 {
		return 0, "", false
	}
	last := matches[len(matches)-1]
	return last[1], script[last[2]:last[3]], true
}

// AddToProject registers subdirectory name in the build script of projectDir.
func AddToProject(projectDir, name string) error {
	path := filepath.Join(projectDir, ScriptName)

	info, err := os.Stat(path)
	if err != nil {
		return werrors.NewMissingBuildScriptError(
			fmt.Sprintf("failed to add module to project '%s': no %s found", projectDir, ScriptName), path)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	updated, err := InsertSubdirectory(string(contents), name)
	if err != nil {
		return &werrors.DetailError{
			Type:     "no insertion point",
			Message:  fmt.Sprintf("failed to find insertion point for module '%s'", name),
			Location: path,
			Hint:     werrors.HintOf(err),
			Cause:    err,
		}
	}

	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	output.Info("registered module", "module", name, "script", path)
	return nil
}
