// Package snippet renders the HTML <picture> element and the CSS
// image-set() block that reference the generated variants. Only basenames
// appear in the output; the AVIF entries are included only when an AVIF
// file was actually produced.
package snippet

import (
	"strings"
	"text/template"
)

// Data is the template input for both snippets.
type Data struct {
	Base        string // input basename without extension, e.g. "photo"
	IncludeAVIF bool
}

// Source order matters: browsers pick the first <source> they support, so
// AVIF (smallest) comes before WEBP, with JPEG as the <img> fallback. The
// PNG reference is kept commented out for hand editing.
var pictureTmpl = template.Must(template.New("picture").Parse(`<picture>
{{- if .IncludeAVIF}}
  <source srcset="{{.Base}}.avif" type="image/avif">
{{- end}}
  <source srcset="{{.Base}}.webp" type="image/webp">
  <img src="{{.Base}}.jpg" alt="{{.Base}}">
  <!-- <img src="{{.Base}}.png" alt="{{.Base}}"> -->
</picture>
`))

var imageSetTmpl = template.Must(template.New("imageset").Parse(`.{{.Base}} {
  background-image: url("{{.Base}}.jpg");
  background-image: image-set(
{{- if .IncludeAVIF}}
    url("{{.Base}}.avif") type("image/avif"),
{{- end}}
    url("{{.Base}}.webp") type("image/webp"),
    url("{{.Base}}.jpg") type("image/jpeg")
    /* url("{{.Base}}.png") type("image/png") */
  );
}
`))

// Picture renders the HTML <picture> snippet.
func Picture(d Data) string {
	return render(pictureTmpl, d)
}

// ImageSet renders the CSS image-set() snippet.
func ImageSet(d Data) string {
	return render(imageSetTmpl, d)
}

func render(t *template.Template, d Data) string {
	var b strings.Builder
	// Both templates are static and fully exercised by tests; execution
	// cannot fail on a strings.Builder.
	_ = t.Execute(&b, d)
	return b.String()
}
