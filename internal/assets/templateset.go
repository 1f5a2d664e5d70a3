package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// Built-in asset names.
const (
	DefaultStyleName       = "default"
	DefaultTemplateSetName = "default"
)

// Template file names inside a template set directory.
const (
	pageFile  = "page.html"
	entryFile = "entry.html"
)

// TemplateSet holds the two templates that make up a page layout.
type TemplateSet struct {
	Name  string // Identifier (name or directory path)
	Page  string // Document skeleton; invokes {{template "entry" .}}
	Entry string // One publication block
}

// readTemplateSet reads page.html and entry.html through read, which maps
// a file name to its content. Both missing means the set does not exist;
// one missing means it is incomplete.
func readTemplateSet(name string, read func(file string) ([]byte, error)) (*TemplateSet, error) {
	page, pageErr := read(pageFile)
	entry, entryErr := read(entryFile)

	pageMissing := errors.Is(pageErr, fs.ErrNotExist)
	entryMissing := errors.Is(entryErr, fs.ErrNotExist)

	if pageMissing && entryMissing {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	if pageErr != nil && !pageMissing {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, pageFile, pageErr)
	}
	if entryErr != nil && !entryMissing {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, entryFile, entryErr)
	}
	if pageMissing {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, pageFile)
	}
	if entryMissing {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, entryFile)
	}

	return &TemplateSet{
		Name:  name,
		Page:  string(page),
		Entry: string(entry),
	}, nil
}
