package sitemap

// Page describes one discovered page. Page is the canonical path it was
// registered under.
type Page struct {
	Page string
}

// PathMap maps canonical paths to pages and remembers insertion order.
// Setting an existing key replaces its value in place.
type PathMap struct {
	keys  []string
	pages map[string]Page
}

// NewPathMap returns an empty PathMap.
func NewPathMap() *PathMap {
	return &PathMap{pages: make(map[string]Page)}
}

// Set registers page under path.
func (p *PathMap) Set(path string, page Page) {
	if _, ok := p.pages[path]; !ok {
		p.keys = append(p.keys, path)
	}
	p.pages[path] = page
}

// Get returns the page registered under path.
func (p *PathMap) Get(path string) (Page, bool) {
	page, ok := p.pages[path]
	return page, ok
}

// Delete removes path, keeping the order of the remaining keys.
func (p *PathMap) Delete(path string) {
	if _, ok := p.pages[path]; !ok {
		return
	}
	delete(p.pages, path)
	for i, k := range p.keys {
		if k == path {
			p.keys = append(p.keys[:i:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the paths in insertion order.
func (p *PathMap) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of paths.
func (p *PathMap) Len() int {
	return len(p.keys)
}

// Clone returns an independent copy.
func (p *PathMap) Clone() *PathMap {
	c := &PathMap{
		keys:  p.Keys(),
		pages: make(map[string]Page, len(p.pages)),
	}
	for k, v := range p.pages {
		c.pages[k] = v
	}
	return c
}
