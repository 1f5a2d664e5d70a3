// Package pipeline implements the text transforms behind a rendered page.
//
// The stages are:
//   - Markdown preprocessing of the profile "about" text (line endings,
//     indentation, blank lines, ==highlight== syntax)
//   - Markdown to HTML fragment conversion via Goldmark, with chroma
//     syntax highlighting emitted as CSS classes
//   - CSS injection into the finished HTML document
//   - Plain-text summaries of HTML for <meta name="description">
//   - Relative path rewriting for pages printed from a temporary file
//
// Templating itself lives in the root bibpage package; this package only
// works on strings and never touches the filesystem.
package pipeline
