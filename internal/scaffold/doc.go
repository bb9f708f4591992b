// Package scaffold instantiates template trees. It copies every recognized
// source file from a template root into a destination, replacing the
// substitution key with the new project name in both relative paths and file
// contents. It powers extension creation and module addition.
package scaffold
