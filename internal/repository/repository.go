// Package repository provides the storage implementations behind the facade:
// a gorm-backed relational variant and an insertion-ordered in-memory variant.
// Which one a facade gets is decided at composition time in cmd/api.
package repository

import "fmt"

func errUnknownAttribute(name string) error {
	return fmt.Errorf("unknown attribute %q", name)
}

// Page carries optional pagination parameters. A zero value means "no
// pagination": the full result set is returned together with its count.
type Page struct {
	Page    int
	PerPage int
}

func (p Page) enabled() bool { return p.Page > 0 && p.PerPage > 0 }

// Offset returns the number of rows to skip for this page.
func (p Page) Offset() int {
	if !p.enabled() {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}
