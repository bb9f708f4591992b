// Package cmake registers new subdirectories in an existing CMakeLists.txt.
//
// The script is edited as plain text: exactly one add_subdirectory line is
// inserted and every other byte is preserved. The script is never parsed, so
// comments, conditionals and formatting elsewhere survive untouched.
//
// Insertion point, in priority order:
//
//  1. before the first "## NEXT_MODULE" placeholder line, with its indentation;
//  2. after the last add_subdirectory(...) line, with its indentation;
//  3. otherwise the script does not follow the convention and the edit fails.
//
// The heuristics assume consistent formatting. An add_subdirectory call on the
// final line without a trailing newline is not considered, and a call split
// across lines is treated as one match. These cases are left as they are.
package cmake
