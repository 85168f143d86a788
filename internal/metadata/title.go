// Package metadata derives page metadata for the storefront.
package metadata

import "strings"

// DefaultSiteName is appended to page titles that do not already carry it.
const DefaultSiteName = "Packaging Hippo"

// Title is a derived page title. The zero value means no title was given.
//
// Absolute titles already mention the site name and are rendered verbatim;
// the others still need the site name appended by the caller.
type Title struct {
	Text     string
	Absolute bool
}

// DeriveTitle derives a title against DefaultSiteName.
func DeriveTitle(title string) Title {
	return DeriveTitleFor(title, DefaultSiteName)
}

// DeriveTitleFor derives a title against siteName. The containment check
// is case-insensitive; whitespace is compared as-is.
func DeriveTitleFor(title, siteName string) Title {
	if title == "" {
		return Title{}
	}
	if strings.Contains(strings.ToLower(title), strings.ToLower(siteName)) {
		return Title{Text: title, Absolute: true}
	}
	return Title{Text: title}
}

// IsZero reports whether no title was derived.
func (t Title) IsZero() bool {
	return t.Text == ""
}

// Format renders the document title: the bare site name when there is no
// title, the text verbatim when absolute, and "<text> | <siteName>" otherwise.
func (t Title) Format(siteName string) string {
	switch {
	case t.IsZero():
		return siteName
	case t.Absolute:
		return t.Text
	default:
		return t.Text + " | " + siteName
	}
}
