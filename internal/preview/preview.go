// Package preview decides how a stored file is presented: inline video,
// image, text, or audio when the extension is recognized, a download-only
// page otherwise. Classification is an ordered list of (predicate, renderer)
// pairs evaluated in priority order.
package preview

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"

	"github.com/filedrop/service/internal/storage"
)

// File identifies a stored blob to present.
type File struct {
	ID         string
	StoredName string
	Size       int64
}

// Kind is the presentation class of a stored file.
type Kind string

// Presentation classes, in rule priority order.
const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
	KindText  Kind = "text"
	KindAudio Kind = "audio"
	KindOther Kind = "other"
)

type rule struct {
	kind   Kind
	match  func(ext string) bool
	render func(ctx context.Context, p *Presenter, f File) (template.HTML, error)
}

// rules are evaluated top to bottom; the first match wins. ogg appears in
// both the video and audio groups, and video is checked first, so .ogg
// always classifies as video.
var rules = []rule{
	{KindVideo, extSet("mp4", "webm", "ogg"), renderVideo},
	{KindImage, extSet("png", "jpg", "jpeg", "gif", "bmp", "webp", "svg"), renderImage},
	{KindText, extSet("txt", "md", "html", "css", "js", "json", "csv"), renderText},
	{KindAudio, extSet("mp3", "wav", "ogg", "m4a"), renderAudio},
	{KindOther, func(string) bool { return true }, renderOther},
}

// Classify returns the presentation class for a stored filename. The match
// is case-insensitive on the extension.
func Classify(storedName string) Kind {
	return ruleFor(storedName).kind
}

func ruleFor(storedName string) rule {
	ext := extOf(storedName)
	for _, r := range rules {
		if r.match(ext) {
			return r
		}
	}
	// Unreachable: the last rule matches everything.
	return rules[len(rules)-1]
}

func extOf(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

func extSet(exts ...string) func(string) bool {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		set[e] = struct{}{}
	}
	return func(ext string) bool {
		_, ok := set[ext]
		return ok
	}
}

// textEscaper escapes only &, <, and >, leaving quotes alone. Replacements
// happen in a single pass, so already-escaped text is not escaped twice.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeText escapes &, <, and > in file content for safe embedding in a
// preformatted block.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// Presenter renders preview pages for stored files.
type Presenter struct {
	store storage.Storage

	// maxTextBytes bounds the synchronous whole-file read done for text
	// previews; larger text files render the download-only branch instead.
	// Zero or negative disables the cap.
	maxTextBytes int64

	page *template.Template
}

// NewPresenter creates a Presenter reading blobs from store.
func NewPresenter(store storage.Storage, maxTextBytes int64) *Presenter {
	return &Presenter{
		store:        store,
		maxTextBytes: maxTextBytes,
		page:         template.Must(template.New("preview").Parse(pageHTML)),
	}
}

type pageData struct {
	StoredName   string
	DownloadPath string
	Media        template.HTML
}

// Render writes the complete preview page for f to w. Every presentation
// class includes a direct download link.
func (p *Presenter) Render(ctx context.Context, w io.Writer, f File) error {
	media, err := ruleFor(f.StoredName).render(ctx, p, f)
	if err != nil {
		return err
	}
	return p.page.Execute(w, pageData{
		StoredName:   f.StoredName,
		DownloadPath: downloadPath(f.ID),
		Media:        media,
	})
}

func downloadPath(id string) string {
	return "/download/" + id
}

func renderVideo(_ context.Context, _ *Presenter, f File) (template.HTML, error) {
	return template.HTML(fmt.Sprintf(
		`<video controls><source src=%q type=%q></video>`,
		downloadPath(f.ID), "video/"+extOf(f.StoredName),
	)), nil
}

func renderImage(_ context.Context, _ *Presenter, f File) (template.HTML, error) {
	return template.HTML(fmt.Sprintf(
		`<img src=%q alt=%q>`,
		downloadPath(f.ID), f.StoredName,
	)), nil
}

func renderAudio(_ context.Context, _ *Presenter, f File) (template.HTML, error) {
	return template.HTML(fmt.Sprintf(
		`<audio controls><source src=%q type=%q></audio>`,
		downloadPath(f.ID), "audio/"+extOf(f.StoredName),
	)), nil
}

// renderText reads the whole file and embeds it escaped in a preformatted
// block. Files over the preview cap skip the read and fall back to a
// download-only message.
func renderText(ctx context.Context, p *Presenter, f File) (template.HTML, error) {
	if p.maxTextBytes > 0 && f.Size > p.maxTextBytes {
		return template.HTML(fmt.Sprintf(
			`<p>This text file is %d bytes, too large to preview inline. Use the download link below.</p>`,
			f.Size,
		)), nil
	}

	rc, err := p.store.Open(ctx, f.StoredName)
	if err != nil {
		return "", fmt.Errorf("open text blob: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read text blob: %w", err)
	}
	return template.HTML("<pre>" + EscapeText(string(data)) + "</pre>"), nil
}

func renderOther(_ context.Context, _ *Presenter, _ File) (template.HTML, error) {
	return `<p>No inline preview for this file type. Use the download link below.</p>`, nil
}

const pageHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.StoredName}} - filedrop</title>
<link rel="stylesheet" href="/style.css">
</head>
<body>
<main class="preview">
<h1>{{.StoredName}}</h1>
{{.Media}}
<p class="actions"><a href="{{.DownloadPath}}" download>Download</a></p>
</main>
</body>
</html>
`
