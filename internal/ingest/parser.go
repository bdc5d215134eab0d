// Package ingest parses scraped job posting files into Job Record
// candidates. Postings arrive as markdown with an optional YAML front
// matter header carrying descriptive metadata and, after extraction has
// run, a fingerprint blob.
package ingest

import (
	"strings"

	"gopkg.in/yaml.v3"
)

type Meta struct {
	ID          string   `yaml:"id"`
	Company     string   `yaml:"company"`
	Role        string   `yaml:"role"`
	Location    string   `yaml:"location"`
	Level       string   `yaml:"level"`
	Domain      string   `yaml:"domain"`
	Skills      []string `yaml:"skills"`
	Source      string   `yaml:"source"`
	DateSaved   string   `yaml:"date_saved"`
	Fingerprint string   `yaml:"fingerprint"`
}

type ParsedJob struct {
	Meta Meta
	Body string
}

// ParseFrontMatter splits a posting into its YAML header and body. Files
// without a header, or with a malformed one, come back with empty metadata
// and the full text as body rather than an error.
func ParseFrontMatter(text string) ParsedJob {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return ParsedJob{Body: strings.TrimSpace(text)}
	}

	end := strings.Index(text[4:], "\n---")
	if end == -1 {
		return ParsedJob{Body: strings.TrimSpace(text)}
	}
	end += 4

	rawMeta := strings.TrimSpace(text[4:end])
	body := strings.TrimSpace(text[end+4:])

	var meta Meta
	if err := yaml.Unmarshal([]byte(rawMeta), &meta); err != nil {
		return ParsedJob{Body: strings.TrimSpace(text)}
	}
	return ParsedJob{Meta: meta, Body: body}
}

// JobID derives the stable record key: an explicit id wins, then a
// company+role slug, then the source filename stem. The key is immutable
// once assigned — re-ingesting the same file updates in place.
func JobID(meta Meta, filename string) string {
	if meta.ID != "" {
		return meta.ID
	}
	if meta.Company != "" && meta.Role != "" {
		return Slugify(meta.Company + "-" + meta.Role)
	}
	stem := filename
	if i := strings.LastIndexByte(stem, '/'); i != -1 {
		stem = stem[i+1:]
	}
	if i := strings.LastIndexByte(stem, '.'); i != -1 {
		stem = stem[:i]
	}
	return Slugify(stem)
}

// Slugify lowercases and keeps alphanumerics, collapsing separator runs
// into single hyphens.
func Slugify(value string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(value) {
		switch {
		case ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == ' ' || ch == '-' || ch == '_' || ch == '.' || ch == '/':
			b.WriteByte('-')
		}
	}
	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
