package bibpage

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadBibliography  = errors.New("failed to read bibliography")
	ErrParseBibliography = errors.New("failed to parse bibliography")
	ErrAboutConversion   = errors.New("about text conversion failed")
	ErrTemplate          = errors.New("invalid page template")
	ErrRenderPage        = errors.New("page rendering failed")
	ErrInvalidDate       = errors.New("invalid date")

	// Asset loading errors.
	ErrStyleNotFound         = errors.New("style not found")
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required template")
	ErrInvalidAssetPath      = errors.New("invalid asset path")
	ErrUnknownCodeStyle      = errors.New("unknown code highlight style")
)
