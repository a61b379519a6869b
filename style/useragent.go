// CSS 2.1 §6.4.4: User agent style sheets.
package style

import (
	"github.com/hhowe/browsercore/css"
)

// DefaultUserAgentStylesheet returns the baseline rules every document
// cascades against before its own <style> sheets. It only ever sets the
// three properties this renderer interprets (background-color, color,
// display); font-size defaults are assigned directly by the layout
// builder since font-size is not an interpreted CSS property here.
func DefaultUserAgentStylesheet() *css.StyleSheet {
	const defaultCSS = `
body { display: block; background-color: white; color: black; }
h1 { display: block; }
h2 { display: block; }
p { display: block; }
a { display: inline; color: blue; }
script { display: none; }
style { display: none; }
`
	return css.ParseStylesheet(defaultCSS)
}
