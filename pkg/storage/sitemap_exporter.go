package storage

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"seo-pages-go/pkg/catalog"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type xmlURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority,omitempty"`
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlSitemapRef struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type xmlSitemapIndex struct {
	XMLName  xml.Name        `xml:"sitemapindex"`
	XMLNS    string          `xml:"xmlns,attr"`
	Sitemaps []xmlSitemapRef `xml:"sitemap"`
}

// SitemapPriority maps a page tier to the sitemap <priority> value.
func SitemapPriority(p catalog.Priority) string {
	switch p {
	case catalog.PriorityTop:
		return "1.0"
	case catalog.PriorityHigh:
		return "0.8"
	case catalog.PriorityMedium:
		return "0.5"
	default:
		return "0.3"
	}
}

// SitemapFile is one rendered sitemap document.
type SitemapFile struct {
	Name string
	Data []byte
}

// SitemapExporter renders the registry as sitemap.xml. Above maxURLs pages
// it writes numbered sitemaps plus an index under the configured name.
type SitemapExporter struct {
	path    string
	baseURL string
	maxURLs int
	now     func() time.Time
}

func NewSitemapExporter(path, baseURL string, maxURLs int) *SitemapExporter {
	if maxURLs <= 0 {
		maxURLs = 50000
	}
	return &SitemapExporter{
		path:    path,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxURLs: maxURLs,
		now:     time.Now,
	}
}

func (e *SitemapExporter) Name() string { return "sitemap" }

func (e *SitemapExporter) Export(ctx context.Context, reg *catalog.Registry) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := e.Build(reg)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(e.path)
	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := writeFileAtomic(path, f.Data, 0644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// Build renders the sitemap documents. The first file is the entry point:
// the single urlset, or the index when the registry was split.
func (e *SitemapExporter) Build(reg *catalog.Registry) ([]SitemapFile, error) {
	pages := reg.Pages()
	name := filepath.Base(e.path)

	if len(pages) <= e.maxURLs {
		data, err := encodeXML(e.urlSet(pages))
		if err != nil {
			return nil, err
		}
		return []SitemapFile{{Name: name, Data: data}}, nil
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	lastMod := e.now().UTC().Format("2006-01-02")

	index := xmlSitemapIndex{XMLNS: sitemapNS}
	parts := []SitemapFile{}
	for i, start := 1, 0; start < len(pages); i, start = i+1, start+e.maxURLs {
		end := min(start+e.maxURLs, len(pages))
		partName := fmt.Sprintf("%s-%d%s", stem, i, ext)
		data, err := encodeXML(e.urlSet(pages[start:end]))
		if err != nil {
			return nil, err
		}
		parts = append(parts, SitemapFile{Name: partName, Data: data})
		index.Sitemaps = append(index.Sitemaps, xmlSitemapRef{
			Loc:     e.baseURL + "/" + partName,
			LastMod: lastMod,
		})
	}

	data, err := encodeXML(index)
	if err != nil {
		return nil, err
	}
	return append([]SitemapFile{{Name: name, Data: data}}, parts...), nil
}

func (e *SitemapExporter) urlSet(pages []catalog.Page) xmlURLSet {
	set := xmlURLSet{XMLNS: sitemapNS, URLs: make([]xmlURL, len(pages))}
	for i, p := range pages {
		set.URLs[i] = xmlURL{
			Loc:      e.baseURL + "/" + p.Slug,
			Priority: SitemapPriority(p.Priority),
		}
	}
	return set
}

func encodeXML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
