// Package bibpage turns a BibTeX bibliography into a static HTML
// publications page.
//
// # Quick Start
//
// Load the records, create a renderer and render the page:
//
//	records, err := bibpage.LoadFile("bibtex.bib", bibpage.LoadOptions{
//	    Emphasize: []string{"Alexander Kolesnikov"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r, err := bibpage.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := r.Render(ctx, bibpage.Input{
//	    Records: records,
//	    Profile: bibpage.Profile{Name: "Alexander Kolesnikov"},
//	    About:   "I work on **representation learning**.",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", page.HTML, 0644)
//
// # Pipeline
//
//  1. BibTeX parsing (entry types and field names lowercased, LaTeX escapes
//     decoded to Unicode)
//  2. Author rewriting: "Family, Given" becomes "Given Family", highlighted
//     names are wrapped in <b>
//  3. Selected subset: records whose selected field is "true", any case
//  4. Citation synthesis from the unmodified author string
//  5. About text from Markdown to HTML via Goldmark
//  6. html/template rendering and CSS injection
//
// Display authors, the about HTML and the citation HTML are the only values
// inserted without escaping. Everything else goes through html/template's
// contextual escaping.
//
// # Custom Assets
//
// Styles and template sets can be overridden from a directory:
//
//	r, err := bibpage.NewRenderer(bibpage.WithAssetPath("./assets"))
//
// Directory layout:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom/
//	        ├── page.html
//	        └── entry.html
//
// Missing assets fall back to the embedded defaults.
package bibpage
