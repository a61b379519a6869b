// Command browser loads an HTML document from a file path or URL,
// builds its DOM and layout trees, and saves a rendered PNG.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hhowe/browsercore/css"
	"github.com/hhowe/browsercore/dom"
	"github.com/hhowe/browsercore/html"
	"github.com/hhowe/browsercore/layout"
	"github.com/hhowe/browsercore/log"
	"github.com/hhowe/browsercore/render"
	"github.com/hhowe/browsercore/style"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: browser <html-file-or-url> [output.png]")
		os.Exit(1)
	}

	source := os.Args[1]
	out := "out.png"
	if len(os.Args) >= 3 {
		out = os.Args[2]
	}

	loader := dom.NewResourceLoader(baseURL(source))
	content, err := loader.LoadResourceAsString(source)
	if err != nil {
		fmt.Printf("Error loading %s: %v\n", source, err)
		os.Exit(1)
	}

	win := html.BuildDocument(content)
	sheets := append([]*css.StyleSheet{style.DefaultUserAgentStylesheet()}, win.StyleSheets...)

	items := layout.Run(win.Document(), sheets)
	log.Infof("painted %d display items", len(items))

	canvas := render.Render(items)
	if err := canvas.SavePNG(out); err != nil {
		fmt.Printf("Error saving %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s\n", out)
}

// baseURL returns the directory a relative resource reference in
// source should resolve against, or "" when source is itself a URL.
// The result is stored as the ResourceLoader's BaseURL; LoadResource
// does not itself resolve paths against it.
func baseURL(source string) string {
	if isURL(source) {
		return ""
	}
	return filepath.Dir(source)
}

func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}
