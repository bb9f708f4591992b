package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// filesLabel renders a file count ("1 file", "1,024 files").
func filesLabel(n int) string {
	if n == 1 {
		return "1 file"
	}
	return printer.Sprintf("%d files", n)
}
