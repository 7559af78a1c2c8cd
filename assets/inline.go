package assets

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"go.uber.org/zap"

	"lovemedo/project"
)

// EmbedProjectMedia converts every media library item of the project into an
// embeddable data literal.
//
// The input is cloned; the caller's document is untouched. Items already
// carrying a data URI are left alone. Remote http(s) references are fetched;
// every item is attempted and a failure on one never aborts the rest: the
// failed item keeps its original reference, the problem is logged, and the
// compiler degrades it to a broken visual. The only error returned is
// context cancellation.
func EmbedProjectMedia(ctx context.Context, client *http.Client, p *project.Project, opts Options, log *zap.Logger) (*project.Project, error) {
	if log == nil {
		log = zap.NewNop()
	}

	work := p.Clone()
	if len(work.MediaLibrary) == 0 {
		return work, nil
	}

	// Deterministic processing order keeps logs stable.
	ids := make([]string, 0, len(work.MediaLibrary))
	for id := range work.MediaLibrary {
		ids = append(ids, id)
	}
	sort.Sort(natural.StringSlice(ids))

	for _, id := range ids {
		item := work.MediaLibrary[id]
		if item.Embedded() {
			continue
		}

		switch {
		case strings.HasPrefix(item.Data, "http://"), strings.HasPrefix(item.Data, "https://"):
			data, err := fetch(ctx, client, item.Data)
			if err != nil {
				if ctx.Err() != nil {
					return work, ctx.Err()
				}
				log.Warn("Unable to fetch media, leaving original reference",
					zap.String("id", id), zap.String("filename", item.Filename), zap.Error(err))
				continue
			}
			embedItem(&item, data, opts, log)
			work.MediaLibrary[id] = item

		case item.Data == "":
			log.Warn("Media item has no data", zap.String("id", id), zap.String("filename", item.Filename))

		default:
			// blob: handles and other editor-transient references cannot be
			// resolved here.
			log.Warn("Media reference cannot be embedded, leaving as-is",
				zap.String("id", id), zap.String("data", truncateRef(item.Data)))
		}
	}
	return work, nil
}

// embedItem turns raw bytes into a data URI on the item, recompressing
// images on the way when enabled.
func embedItem(item *project.MediaItem, data []byte, opts Options, log *zap.Logger) {
	mime := item.MimeType
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		mime = kind.MIME.Value
	}

	if item.Kind == project.MediaKindImage {
		if mime == "image/svg+xml" || looksLikeSVG(data) {
			if img, err := RasterizeSVG(data, opts.MaxDimension); err == nil {
				if out, m := Recompress(encodePNG(img), opts); m != "" {
					data, mime = out, m
				}
			} else {
				log.Warn("Unable to rasterize SVG, embedding source", zap.String("id", item.ID), zap.Error(err))
				mime = "image/svg+xml"
			}
		} else if opts.Optimize {
			before := len(data)
			if out, m := Recompress(data, opts); m != "" {
				data, mime = out, m
				log.Debug("Recompressed image",
					zap.String("id", item.ID), zap.Int("before", before), zap.Int("after", len(data)))
			}
		}
	}

	if mime == "" {
		mime = "application/octet-stream"
	}
	item.Data = dataURI(mime, data)
	item.MimeType = mime
}

func looksLikeSVG(data []byte) bool {
	head := strings.TrimSpace(string(data[:min(len(data), 512)]))
	return strings.HasPrefix(head, "<svg") || strings.Contains(head, "<svg ")
}

func truncateRef(s string) string {
	if len(s) > 64 {
		return s[:64] + "..."
	}
	return s
}
