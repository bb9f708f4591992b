package scaffold

import "path/filepath"

// sourcePatterns are the file name patterns copied from a template. Anything
// else in a template tree is ignored.
var sourcePatterns = []string{
	"*.h",
	"*.cxx",
	"*.cpp",
	"CMakeLists.txt",
	"*.txt",
	"*.cmake",
	"*.ui",
	"*.qrc",
	"*.py",
	"*.xml",
	"*.xml.in",
	"*.md5",
	"*.png",
	"*.dox",
}

// IsSourceFile reports whether a file name matches a recognized pattern.
func IsSourceFile(name string) bool {
	for _, pat := range sourcePatterns {
		if ok, _ := filepath.Match(pat, name); ok {
			return true
		}
	}
	return false
}
