package bibpage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-bibpage/internal/dateutil"
	"github.com/alnah/go-bibpage/internal/fileutil"
	"github.com/alnah/go-bibpage/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Page defaults.
const (
	DefaultLang  = "en"
	DefaultDate  = "auto"
	defaultTitle = "Publications"
)

// Profile describes the page owner shown in the header.
type Profile struct {
	Name     string
	Headline string // e.g. "Staff Research Scientist"
	Image    string // Portrait URL or site path
}

// Input contains the data for one page.
type Input struct {
	Records []Record
	Profile Profile
	About   string    // Markdown, rendered into the header
	Title   string    // Document title; defaults to Profile.Name
	CSS     string    // Extra CSS appended after the style
	Lang    string    // Document language; defaults to "en"
	Date    string    // Footer date: "auto", "auto:FORMAT" or literal text
	Now     time.Time // Render time; zero means time.Now()
}

// Page is a rendered publications page.
type Page struct {
	HTML     []byte
	Records  []Record // Input records with Citation set
	Selected []Record // Selected subset of Records
}

// Renderer turns records into an HTML page. It is safe for concurrent use
// once created.
type Renderer struct {
	cfg           rendererConfig
	assetLoader   AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	tmpl          *template.Template
	css           string
}

// NewRenderer creates a Renderer. Styles and templates are loaded and
// parsed here, so asset problems surface before any rendering.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg:           defaultRendererConfig(),
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.assetLoader == nil {
		loader, err := NewAssetLoader(r.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		r.assetLoader = loader
	}

	styleCSS, err := r.resolveStyle()
	if err != nil {
		return nil, err
	}

	codeCSS, err := pipeline.HighlightCSS(r.cfg.codeStyle)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCodeStyle, err)
	}
	r.css = styleCSS + "\n" + codeCSS

	ts, err := r.assetLoader.LoadTemplateSet(r.cfg.templateSet)
	if err != nil {
		return nil, fmt.Errorf("loading template set %q: %w", r.cfg.templateSet, err)
	}
	r.tmpl, err = parseTemplateSet(ts)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// resolveStyle loads the configured style from a file path or by name.
func (r *Renderer) resolveStyle() (string, error) {
	style := r.cfg.style
	if fileutil.IsFilePath(style) {
		content, err := os.ReadFile(style) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading style file %q: %w", style, err)
		}
		return string(content), nil
	}

	css, err := r.assetLoader.LoadStyle(style)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", style, err)
	}
	return css, nil
}

func parseTemplateSet(ts *TemplateSet) (*template.Template, error) {
	tmpl, err := template.New("page").Parse(ts.Page)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/page.html: %v", ErrTemplate, ts.Name, err)
	}
	if _, err := tmpl.New("entry").Parse(ts.Entry); err != nil {
		return nil, fmt.Errorf("%w: %s/entry.html: %v", ErrTemplate, ts.Name, err)
	}
	return tmpl, nil
}

// Render produces the HTML page for input. The input records are not
// modified. Output depends only on input, so rendering twice with the same
// Now gives identical bytes.
func (r *Renderer) Render(ctx context.Context, input Input) (page *Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			page = nil
			err = fmt.Errorf("%w: internal error: %v", ErrRenderPage, rec)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	dateSpec := input.Date
	if dateSpec == "" {
		dateSpec = DefaultDate
	}
	date, err := dateutil.ResolveDate(dateSpec, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	aboutHTML, err := r.convertAbout(ctx, input.About)
	if err != nil {
		return nil, err
	}

	records := make([]Record, len(input.Records))
	for i, rec := range input.Records {
		rec.Citation = Citation(rec)
		records[i] = rec
	}

	data := pageData{
		Lang:        valueOr(input.Lang, DefaultLang),
		Title:       valueOr(input.Title, valueOr(input.Profile.Name, defaultTitle)),
		Description: pipeline.Summary(aboutHTML, pipeline.DescriptionLength),
		Image:       input.Profile.Image,
		Name:        input.Profile.Name,
		Headline:    input.Profile.Headline,
		About:       template.HTML(aboutHTML), // #nosec G203 -- goldmark output, raw HTML disabled
		Date:        date,
		Year:        now.Year(),
	}
	for i, rec := range records {
		entry := r.entryData(rec, i+1)
		data.Entries = append(data.Entries, entry)
		if rec.IsSelected() {
			data.Selected = append(data.Selected, entry)
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderPage, err)
	}

	css := r.css
	if input.CSS != "" {
		css += "\n" + input.CSS
	}
	htmlContent := r.cssInjector.InjectCSS(ctx, buf.String(), css)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Page{
		HTML:     []byte(htmlContent),
		Records:  records,
		Selected: Selected(records),
	}, nil
}

// convertAbout renders the about Markdown to an HTML fragment.
func (r *Renderer) convertAbout(ctx context.Context, about string) (string, error) {
	if strings.TrimSpace(about) == "" {
		return "", nil
	}

	md := r.preprocessor.PreprocessMarkdown(ctx, about)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fragment, err := r.htmlConverter.ToHTML(ctx, md)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrAboutConversion, err)
	}

	// Completes ==text== highlighting without enabling raw HTML in goldmark.
	return pipeline.ConvertMarkPlaceholders(fragment), nil
}

// pageData is the value page.html is executed with.
type pageData struct {
	Lang        string
	Title       string
	Description string
	Image       string
	Name        string
	Headline    string
	About       template.HTML
	Selected    []entryData
	Entries     []entryData
	Date        string
	Year        int
}

// entryData is the value entry.html is executed with. Authors and Citation
// are the only pre-rendered HTML fields.
type entryData struct {
	Anchor     string
	Type       string
	Title      string
	Authors    template.HTML
	Year       string
	Journal    string
	Arxiv      string
	PDF        string
	Code       string
	CitationID string
	Citation   template.HTML
	PreviewURL string
}

// entryData builds the template data for the n-th record (1-based).
func (r *Renderer) entryData(rec Record, n int) entryData {
	return entryData{
		Anchor:     rec.ID,
		Type:       rec.Type,
		Title:      fieldOr(rec, FieldTitle, NoTitle),
		Authors:    template.HTML(rec.DisplayAuthor), // #nosec G203 -- author list with <b> markup
		Year:       stripBraces(rec.Get(FieldYear)),
		Journal:    stripBraces(rec.Get(FieldJournal)),
		Arxiv:      rec.Get(FieldArxiv),
		PDF:        rec.Get(FieldPDF),
		Code:       rec.Get(FieldCode),
		CitationID: "citation_" + strconv.Itoa(n),
		Citation:   citationHTML(rec.Citation),
		PreviewURL: previewURL(r.cfg.previewDir, rec.Get(FieldPreview)),
	}
}

// previewURL joins the preview directory and file name. Absolute URLs are
// used as they are.
func previewURL(dir, preview string) string {
	switch {
	case preview == "":
		return ""
	case fileutil.IsURL(preview):
		return preview
	}
	return strings.TrimSuffix(dir, "/") + "/" + strings.TrimPrefix(preview, "/")
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
