//go:build integration

package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/extwizard/extwizard/internal/cmake"
	werrors "github.com/extwizard/extwizard/internal/errors"
	"github.com/extwizard/extwizard/internal/registry"
	"github.com/extwizard/extwizard/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullFlowExtensionWithModules tests the complete flow:
// discover templates -> create extension -> add modules -> verify tree and script.
func TestFullFlowExtensionWithModules(t *testing.T) {
	base := setupTemplates(t)
	dest := t.TempDir()

	// Step 1: Discover templates the same way built-ins are discovered.
	reg := registry.NewRegistry()
	require.NoError(t, reg.AddPathArg(base))
	require.NoError(t, reg.AddKeyArg("scripted=ScriptedLoadableModuleTemplate"))

	// Step 2: Create the extension and two modules in one request.
	w := wizard.New(reg, dest, wizard.WithVersion("1.0.0"))
	results, err := w.Run(wizard.Request{
		Extension: &wizard.Spec{Name: "Segmenter"},
		Modules: []wizard.Spec{
			{Kind: "loadable", Name: "Threshold"},
			{Kind: "Scripted", Name: "Sharpen"},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	ext := filepath.Join(dest, "Segmenter")

	// Step 3: Verify the extension tree.
	assertFileContains(t, filepath.Join(ext, "CMakeLists.txt"), "project(Segmenter)")
	assert.FileExists(t, filepath.Join(ext, "Segmenter.png"))
	assert.NoFileExists(t, filepath.Join(ext, "README.md"))
	assert.NoFileExists(t, filepath.Join(ext, "template.yaml"))

	// Step 4: Modules are registered in order before the placeholder.
	script := readFile(t, filepath.Join(ext, cmake.ScriptName))
	want := "# Extension modules\nadd_subdirectory(Threshold)\nadd_subdirectory(Sharpen)\n## NEXT_MODULE\n"
	assert.Contains(t, script, want, "modules should be registered in order")

	// Step 5: Verify module contents.
	header := filepath.Join(ext, "Threshold", "qSlicerThresholdModule.h")
	assertFileContains(t, header, "#ifndef __qSlicerThresholdModule_h")
	assertFileContains(t, header, "Q_SLICER_QTMODULES_THRESHOLD_EXPORT")
	assert.FileExists(t, filepath.Join(ext, "Threshold", "Logic", "vtkSlicerThresholdLogic.cxx"))
	assert.FileExists(t, filepath.Join(ext, "Threshold", "Resources", "UI", "qSlicerThresholdModuleWidget.ui"))
	assertFileContains(t, filepath.Join(ext, "Threshold", "CMakeLists.txt"), "add_subdirectory(Logic)")

	scripted := filepath.Join(ext, "Sharpen", "Sharpen.py")
	assertFileContains(t, scripted, "class Sharpen:")
	assertFileContains(t, scripted, `self.title = "Sharpen"`)
}

// TestFullFlowPartialFailure verifies that a failing module leaves earlier
// modules on disk.
func TestFullFlowPartialFailure(t *testing.T) {
	base := setupTemplates(t)
	dest := t.TempDir()

	reg := registry.NewRegistry()
	require.NoError(t, reg.RegisterCategoryTree(base))

	w := wizard.New(reg, dest)
	_, err := w.CreateExtension("default", "Ext")
	require.NoError(t, err)
	_, err = w.AddModule("loadable", "First")
	require.NoError(t, err)
	_, err = w.AddModule("superloadable", "Second")
	require.ErrorIs(t, err, werrors.ErrUnknownTemplate)

	assert.FileExists(t, filepath.Join(dest, "Ext", "First", "CMakeLists.txt"))
	assert.NoDirExists(t, filepath.Join(dest, "Ext", "Second"))

	// A second create with the same name is refused.
	_, err = wizard.New(reg, dest).CreateExtension("default", "Ext")
	assert.ErrorIs(t, err, werrors.ErrDestinationExists)
}
