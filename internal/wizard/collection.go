package wizard

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultIDPrefix is prepended to every page id.
const DefaultIDPrefix = "wizard-page-"

// PageCollection is the ordered page registry. Order is registration order
// unless a page was inserted at an explicit index. Mutation is reserved to
// the Wizard so the navigator can keep its current page valid.
type PageCollection struct {
	pages       []*Page
	prefix      string
	lastOrdinal int
}

// NewPageCollection creates an empty collection using the given id prefix.
func NewPageCollection(prefix string) *PageCollection {
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	return &PageCollection{prefix: prefix}
}

// Prefix returns the id prefix shared by all pages.
func (c *PageCollection) Prefix() string {
	return c.prefix
}

// Len returns the number of registered pages.
func (c *PageCollection) Len() int {
	return len(c.pages)
}

// Pages returns a copy of the ordered page list.
func (c *PageCollection) Pages() []*Page {
	out := make([]*Page, len(c.pages))
	copy(out, c.pages)
	return out
}

// First returns the first page or nil.
func (c *PageCollection) First() *Page {
	if len(c.pages) == 0 {
		return nil
	}
	return c.pages[0]
}

// Last returns the last page or nil.
func (c *PageCollection) Last() *Page {
	if len(c.pages) == 0 {
		return nil
	}
	return c.pages[len(c.pages)-1]
}

// IndexOf returns the position of p, or -1.
func (c *PageCollection) IndexOf(p *Page) int {
	for i, page := range c.pages {
		if page == p {
			return i
		}
	}
	return -1
}

// Previous returns the page before p, nil at the start or when p is unknown.
func (c *PageCollection) Previous(p *Page) *Page {
	i := c.IndexOf(p)
	if i < 1 {
		return nil
	}
	return c.pages[i-1]
}

// Next returns the page after p, nil at the end or when p is unknown.
func (c *PageCollection) Next(p *Page) *Page {
	i := c.IndexOf(p)
	if i < 0 || i >= len(c.pages)-1 {
		return nil
	}
	return c.pages[i+1]
}

// ByID resolves a page id. Ids are compared against the full prefixed id.
func (c *PageCollection) ByID(id string) (*Page, error) {
	for _, p := range c.pages {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPageNotFound, id)
}

// StepIndicatorID maps a page to its step-nav entry id. It is derived from
// the page id on every call so custom id changes are picked up.
func (c *PageCollection) StepIndicatorID(p *Page) string {
	return stepIndicatorID(p)
}

// insert registers a new page built from opts at index (append when out of range).
func (c *PageCollection) insert(index int, opts PageOptions) *Page {
	c.lastOrdinal++
	p := newPage(c.lastOrdinal, c.prefix, opts)
	if index < 0 || index >= len(c.pages) {
		c.pages = append(c.pages, p)
		return p
	}
	c.pages = append(c.pages, nil)
	copy(c.pages[index+1:], c.pages[index:])
	c.pages[index] = p
	return p
}

// remove drops p and returns its former index, or -1.
func (c *PageCollection) remove(p *Page) int {
	i := c.IndexOf(p)
	if i < 0 {
		return -1
	}
	c.pages = append(c.pages[:i], c.pages[i+1:]...)
	return i
}

func stepIndicatorID(p *Page) string {
	suffix := p.customID
	if suffix == "" {
		suffix = strconv.Itoa(p.ordinal)
	}
	return stepPrefix(p.prefix) + suffix
}

// stepPrefix turns "wizard-page-" into "wizard-step-".
func stepPrefix(pagePrefix string) string {
	if base, ok := strings.CutSuffix(pagePrefix, "page-"); ok {
		return base + "step-"
	}
	return pagePrefix + "step-"
}
