package share

import (
	"bytes"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/filedrop/service/internal/preview"
	"github.com/filedrop/service/internal/response"
)

// maxUploadMemory bounds how much of a multipart body is held in memory
// before spilling to temp files. It is not an upload size limit.
const maxUploadMemory = 32 << 20

// Handler holds HTTP handlers for the share endpoints.
type Handler struct {
	svc        *Service
	presenter  *preview.Presenter
	thumbs     *preview.Thumbnailer
	publicBase string

	uploadedPage *template.Template
}

// NewHandler creates a new share Handler. publicBase overrides share-link
// scheme and host detection when non-empty.
func NewHandler(svc *Service, presenter *preview.Presenter, thumbs *preview.Thumbnailer, publicBase string) *Handler {
	return &Handler{
		svc:          svc,
		presenter:    presenter,
		thumbs:       thumbs,
		publicBase:   strings.TrimRight(publicBase, "/"),
		uploadedPage: template.Must(template.New("uploaded").Parse(uploadedHTML)),
	}
}

type fileItem struct {
	ID            string    `json:"id"            example:"d0s3fj2hb12vl8a7c9e0"`
	StoredName    string    `json:"storedName"    example:"d0s3fj2hb12vl8a7c9e0.png"`
	Size          int64     `json:"size"          example:"102400"`
	UploadedAt    time.Time `json:"uploadedAt"    example:"2026-08-23T14:48:34Z"`
	Kind          string    `json:"kind"          example:"image"`
	PreviewPath   string    `json:"previewPath"   example:"/f/d0s3fj2hb12vl8a7c9e0"`
	DownloadPath  string    `json:"downloadPath"  example:"/download/d0s3fj2hb12vl8a7c9e0"`
	ThumbnailPath string    `json:"thumbnailPath,omitempty" example:"/thumbnail/d0s3fj2hb12vl8a7c9e0"`
}

// Upload godoc
//
//	@Summary		Upload a file
//	@Description	Accepts a single multipart file, stores it under a generated short id, and returns an HTML page with the shareable link.
//	@Tags			share
//	@Accept			multipart/form-data
//	@Produce		html
//	@Param			file	formData	file	true	"File to share"
//	@Success		200		{string}	string	"HTML page containing the share link"
//	@Failure		400		{string}	string	"missing file field"
//	@Failure		500		{string}	string
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	entry, err := h.svc.Store(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		http.Error(w, "could not store file", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.uploadedPage.Execute(&buf, struct{ Link string }{h.shareLink(r, entry.ID)}); err != nil {
		http.Error(w, "could not render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// shareLink builds the absolute share URL for an id. PUBLIC_BASE_URL wins
// when set; otherwise the scheme comes from X-Forwarded-Proto (set by a
// reverse proxy) or from the connection itself.
func (h *Handler) shareLink(r *http.Request, id string) string {
	if h.publicBase != "" {
		return h.publicBase + "/f/" + id
	}
	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/f/" + id
}

// Preview godoc
//
//	@Summary		Preview a shared file
//	@Description	Renders an HTML page embedding the file inline when its extension is recognized (video, image, text, audio), or a download-only page otherwise.
//	@Tags			share
//	@Produce		html
//	@Param			id	path		string	true	"Short file id"
//	@Success		200	{string}	string	"HTML preview page"
//	@Failure		404	{string}	string	"file not found"
//	@Failure		500	{string}	string
//	@Router			/f/{id} [get]
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.svc.Resolve(id)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := h.presenter.Render(r.Context(), &buf, previewFile(entry)); err != nil {
		http.Error(w, "could not render preview", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Download godoc
//
//	@Summary		Download a shared file
//	@Description	Streams the stored bytes as an attachment named after the stored (id-based) filename. The original upload filename is not preserved.
//	@Tags			share
//	@Produce		octet-stream
//	@Param			id	path		string	true	"Short file id"
//	@Success		200	{file}		file
//	@Failure		404	{string}	string	"file not found"
//	@Failure		500	{string}	string
//	@Router			/download/{id} [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.svc.Resolve(id)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	blob, err := h.svc.OpenBlob(r.Context(), entry)
	if err != nil {
		http.Error(w, "could not open file", http.StatusInternalServerError)
		return
	}
	defer blob.Close()

	w.Header().Set("Content-Disposition", `attachment; filename=`+strconv.Quote(entry.StoredName))
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.FormatInt(entry.Size, 10))
	_, _ = io.Copy(w, blob)
}

// ListFiles godoc
//
//	@Summary		List shared files
//	@Description	Returns all files shared since process start, newest first.
//	@Tags			files
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=[]fileItem}
//	@Router			/api/files [get]
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	entries := h.svc.List()

	items := make([]fileItem, 0, len(entries))
	for _, e := range entries {
		item := fileItem{
			ID:           e.ID,
			StoredName:   e.StoredName,
			Size:         e.Size,
			UploadedAt:   e.UploadedAt,
			Kind:         string(preview.Classify(e.StoredName)),
			PreviewPath:  "/f/" + e.ID,
			DownloadPath: "/download/" + e.ID,
		}
		if preview.CanThumbnail(e.StoredName) {
			item.ThumbnailPath = "/thumbnail/" + e.ID
		}
		items = append(items, item)
	}

	response.OK(w, items)
}

// Thumbnail godoc
//
//	@Summary		Image thumbnail
//	@Description	Returns a square JPEG thumbnail for a shared image, generated on first request and cached on disk.
//	@Tags			files
//	@Produce		jpeg
//	@Param			id	path		string	true	"Short file id"
//	@Success		200	{file}		file
//	@Failure		400	{object}	response.Envelope
//	@Failure		404	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/thumbnail/{id} [get]
func (h *Handler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.svc.Resolve(id)
	if err != nil {
		response.NotFound(w, "file not found")
		return
	}
	if !preview.CanThumbnail(entry.StoredName) {
		response.BadRequest(w, "file is not a supported image")
		return
	}

	var buf bytes.Buffer
	if err := h.thumbs.Render(r.Context(), &buf, previewFile(entry)); err != nil {
		response.InternalError(w)
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

func previewFile(e Entry) preview.File {
	return preview.File{ID: e.ID, StoredName: e.StoredName, Size: e.Size}
}

const uploadedHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>File uploaded - filedrop</title>
<link rel="stylesheet" href="/style.css">
</head>
<body>
<main class="uploaded">
<h1>File uploaded</h1>
<p>Share it with this link:</p>
<p class="share-link"><a href="{{.Link}}">{{.Link}}</a></p>
<p class="actions"><a href="/">Upload another file</a></p>
</main>
</body>
</html>
`
