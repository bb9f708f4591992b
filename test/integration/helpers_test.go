//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTemplates creates a template base with "extensions" and "modules"
// categories modelled on a CMake extension layout. Returns the base path.
func setupTemplates(t *testing.T) string {
	t.Helper()
	base := t.TempDir()

	// --- Extensions ---
	writeFile(t, filepath.Join(base, "Extensions", "Default", "CMakeLists.txt"), `cmake_minimum_required(VERSION 3.16.3...3.19.7 FATAL_ERROR)

project(TemplateKey)

#-----------------------------------------------------------------------------
# Extension modules
## NEXT_MODULE
#-----------------------------------------------------------------------------

include(${Slicer_EXTENSION_GENERATE_CONFIG})
include(${Slicer_EXTENSION_CPACK})
`)
	writeFile(t, filepath.Join(base, "Extensions", "Default", "TemplateKey.png"), "\x89PNG\r\n")
	writeFile(t, filepath.Join(base, "Extensions", "Default", "README.md"), "# TemplateKey\n")
	writeFile(t, filepath.Join(base, "Extensions", "Default", "template.yaml"), "name: default\ndescription: Empty extension\n")

	// --- Loadable module ---
	loadable := filepath.Join(base, "Modules", "Loadable")
	writeFile(t, filepath.Join(loadable, "CMakeLists.txt"), `set(MODULE_NAME TemplateKey)
add_subdirectory(Logic)
`)
	writeFile(t, filepath.Join(loadable, "qSlicerTemplateKeyModule.h"), `#ifndef __qSlicerTemplateKeyModule_h
#define __qSlicerTemplateKeyModule_h
#include "qSlicerTemplateKeyModuleExport.h"
class Q_SLICER_QTMODULES_TEMPLATEKEY_EXPORT qSlicerTemplateKeyModule {};
#endif
`)
	writeFile(t, filepath.Join(loadable, "Logic", "vtkSlicerTemplateKeyLogic.cxx"), "#include \"vtkSlicerTemplateKeyLogic.h\"\n")
	writeFile(t, filepath.Join(loadable, "Resources", "UI", "qSlicerTemplateKeyModuleWidget.ui"), "<class>qSlicerTemplateKeyModuleWidget</class>\n")

	// --- Scripted module with its own key ---
	writeFile(t, filepath.Join(base, "Modules", "Scripted", "ScriptedLoadableModuleTemplate.py"), `class ScriptedLoadableModuleTemplate:
  def __init__(self):
    self.title = "ScriptedLoadableModuleTemplate"
`)

	return base
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	assert.Contains(t, readFile(t, path), substr, path)
}
