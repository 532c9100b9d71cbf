// Package render writes the static pages for an export: one HTML page per
// conversation, a shared stylesheet and an index. Pages reference attachment
// files where they already lie, nothing is copied.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"signalhtml/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets/style.css
var styleCSS []byte

// HTMLRenderer implements domain.Renderer by writing one page per thread
// into the output directory.
type HTMLRenderer struct {
	outputDir  string
	title      string
	timeFormat string
	tmpl       *template.Template
	body       *BodyRenderer
	logger     *slog.Logger

	pages []indexEntry
}

func NewHTMLRenderer(outputDir, title, timeFormat string, logger *slog.Logger) (*HTMLRenderer, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create output directory %s: %w", outputDir, err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "style.css"), styleCSS, 0o644); err != nil {
		return nil, fmt.Errorf("cannot write stylesheet: %w", err)
	}

	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))

	return &HTMLRenderer{
		outputDir:  outputDir,
		title:      title,
		timeFormat: timeFormat,
		tmpl:       tmpl,
		body:       NewBodyRenderer(),
		logger:     logger,
	}, nil
}

type threadPage struct {
	Title       string
	Thread      string
	IsGroup     bool
	ColorHex    string
	Messages    []messageView
	GeneratedAt string
}

type messageView struct {
	Sender      string
	ColorHex    string
	Outgoing    bool
	Timestamp   string
	Body        template.HTML
	Quote       *quoteView
	Attachments []attachmentView

	sentAt time.Time
}

type quoteView struct {
	Author   string
	ColorHex string
	Text     string
}

type attachmentView struct {
	Path      string
	Label     string
	IsImage   bool
	IsVideo   bool
	IsAudio   bool
	VoiceNote bool
	Missing   bool
	Width     int
	Height    int
}

type indexEntry struct {
	Name     string
	File     string
	ColorHex string
	IsGroup  bool
	Messages int
}

// RenderThread writes the page for one conversation and remembers it for
// the index.
func (r *HTMLRenderer) RenderThread(t *domain.Thread) error {
	page := r.buildPage(t)
	name := pageFilename(t.Recipient.Name, t.ID)

	f, err := os.Create(filepath.Join(r.outputDir, name))
	if err != nil {
		return fmt.Errorf("cannot create page %s: %w", name, err)
	}
	defer f.Close()

	if err := r.tmpl.ExecuteTemplate(f, "thread.html", page); err != nil {
		return fmt.Errorf("cannot render page %s: %w", name, err)
	}

	r.pages = append(r.pages, indexEntry{
		Name:     t.Recipient.Name,
		File:     name,
		ColorHex: domain.ColorHex(t.Recipient.Color),
		IsGroup:  t.Recipient.IsGroup,
		Messages: len(page.Messages),
	})
	r.logger.Debug("wrote page", "file", name, "messages", len(page.Messages))
	return nil
}

// WriteIndex writes the overview page linking every rendered thread. Call it
// once, after the last thread.
func (r *HTMLRenderer) WriteIndex() error {
	f, err := os.Create(filepath.Join(r.outputDir, "index.html"))
	if err != nil {
		return fmt.Errorf("cannot create index: %w", err)
	}
	defer f.Close()

	if err := r.tmpl.ExecuteTemplate(f, "index.html", map[string]any{
		"Title":       r.title,
		"Threads":     r.pages,
		"GeneratedAt": time.Now().Format(r.timeFormat),
	}); err != nil {
		return fmt.Errorf("cannot render index: %w", err)
	}
	return nil
}

func (r *HTMLRenderer) buildPage(t *domain.Thread) threadPage {
	msgs := make([]messageView, 0, len(t.SMS)+len(t.MMS))
	for _, m := range t.SMS {
		msgs = append(msgs, messageView{
			Sender:    m.Sender.Name,
			ColorHex:  domain.ColorHex(m.Sender.Color),
			Outgoing:  m.Outgoing(),
			Timestamp: m.SentAt.Format(r.timeFormat),
			Body:      r.body.Render(m.Body),
			sentAt:    m.SentAt,
		})
	}
	for _, m := range t.MMS {
		view := messageView{
			Sender:    m.Sender.Name,
			ColorHex:  domain.ColorHex(m.Sender.Color),
			Outgoing:  m.Outgoing(),
			Timestamp: m.SentAt.Format(r.timeFormat),
			Body:      r.body.Render(m.Body),
			sentAt:    m.SentAt,
		}
		if m.Quote != nil {
			view.Quote = &quoteView{
				Author:   m.Quote.Author.Name,
				ColorHex: domain.ColorHex(m.Quote.Author.Color),
				Text:     m.Quote.Text,
			}
		}
		for _, a := range m.Attachments {
			view.Attachments = append(view.Attachments, newAttachmentView(a))
		}
		msgs = append(msgs, view)
	}

	// SMS and MMS come in ordered separately; merge into one timeline.
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].sentAt.Before(msgs[j].sentAt)
	})

	return threadPage{
		Title:       r.title,
		Thread:      t.Recipient.Name,
		IsGroup:     t.Recipient.IsGroup,
		ColorHex:    domain.ColorHex(t.Recipient.Color),
		Messages:    msgs,
		GeneratedAt: time.Now().Format(r.timeFormat),
	}
}

func newAttachmentView(a domain.Attachment) attachmentView {
	label := a.ContentType
	if label == "" {
		label = "attachment"
	}
	return attachmentView{
		Path:      a.Path,
		Label:     label,
		IsImage:   strings.HasPrefix(a.ContentType, "image/"),
		IsVideo:   strings.HasPrefix(a.ContentType, "video/"),
		IsAudio:   strings.HasPrefix(a.ContentType, "audio/"),
		VoiceNote: a.VoiceNote,
		Missing:   a.Path == "",
		Width:     a.Width,
		Height:    a.Height,
	}
}

// pageFilename builds the output file name for a thread. The name part is
// sanitized, the thread id keeps files unique when names collide.
func pageFilename(name string, threadID int64) string {
	return fmt.Sprintf("%s-%d.html", sanitizeName(name), threadID)
}

// sanitizeName reduces a display name to a safe file name: lower case with
// runs of anything outside a-z0-9 collapsed to single underscores.
func sanitizeName(name string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			underscore = false
		} else if !underscore {
			b.WriteByte('_')
			underscore = true
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "thread"
	}
	return s
}
