package pipeline

import (
	"strconv"
	"strings"

	"github.com/alnah/go-md2typst/internal/markdown"
	"github.com/alnah/go-md2typst/internal/typst"
)

// Images rewrites source images into out-of-flow destination image calls.
//
// Source images always arrive wrapped in a paragraph, with their alt text
// as nested events. The destination treats images as standalone function
// calls, so this converter renegotiates paragraph boundaries around them:
// a paragraph whose sole content is one image loses its wrapper entirely,
// an image after prose splits the paragraph and re-opens it for trailing
// content, and alt text never reaches the output.
//
// It peeks ahead of paragraph boundaries through an internal pushback
// queue, drained before further upstream pulls. The lookahead is bounded by
// the next structural boundary.
type Images struct {
	iter           Iterator
	pending        []Event
	inParagraph    bool
	inHeading      bool
	closedForImage bool
}

func NewImages(iter Iterator) *Images {
	return &Images{iter: iter}
}

func (c *Images) Next() (Event, bool) {
	if len(c.pending) > 0 {
		e := c.pending[0]
		c.pending = c.pending[1:]
		return e, true
	}

	for {
		e, ok := c.iter.Next()
		if !ok {
			return Event{}, false
		}

		switch ty := e.Typst.(type) {
		case typst.Start:
			switch ty.Tag.(type) {
			case typst.Heading:
				c.inHeading = true
				return e, true
			case typst.Paragraph:
				return c.startParagraph()
			}
		case typst.End:
			switch ty.Tag.(type) {
			case typst.Heading:
				c.inHeading = false
				return e, true
			case typst.Paragraph:
				if c.closedForImage {
					// Already closed ahead of the image; swallow the
					// original boundary.
					c.closedForImage = false
					continue
				}
				c.inParagraph = false
				return e, true
			}
		}

		if md, isStart := e.Markdown.(markdown.Start); isStart {
			if img, isImage := md.Tag.(markdown.Image); isImage {
				return c.convertImage(img)
			}
		}

		if c.closedForImage && !c.inParagraph {
			// Trailing content after a split-off image. Inside a heading it
			// flows bare; otherwise it needs a fresh paragraph.
			c.closedForImage = false
			if c.inHeading {
				return e, true
			}
			c.inParagraph = true
			c.pending = append(c.pending, e)
			return Ty(typst.Start{Tag: typst.Paragraph{}}), true
		}

		return e, true
	}
}

// startParagraph peeks past a paragraph start to detect a paragraph whose
// content begins with an image, collapsing the wrapper when the image is
// the sole content.
func (c *Images) startParagraph() (Event, bool) {
	peeked, ok := c.iter.Next()
	if !ok {
		c.inParagraph = true
		return Ty(typst.Start{Tag: typst.Paragraph{}}), true
	}

	if md, isStart := peeked.Markdown.(markdown.Start); isStart {
		if img, isImage := md.Tag.(markdown.Image); isImage {
			c.skipImageContent()
			call := imageCall(img)

			next, ok := c.iter.Next()
			if !ok {
				return call, true
			}
			if end, isEnd := next.Typst.(typst.End); isEnd {
				if _, isPar := end.Tag.(typst.Paragraph); isPar {
					// Sole-content image: both wrapper boundaries vanish.
					return call, true
				}
			}
			// Trailing content: re-open a paragraph for it after the image.
			c.inParagraph = true
			c.pending = append(c.pending, Ty(typst.Start{Tag: typst.Paragraph{}}), next)
			return call, true
		}
	}

	c.inParagraph = true
	c.pending = append(c.pending, peeked)
	return Ty(typst.Start{Tag: typst.Paragraph{}}), true
}

// convertImage handles an image that was not the first event of its
// paragraph: mid-paragraph images close the open paragraph first.
func (c *Images) convertImage(img markdown.Image) (Event, bool) {
	c.skipImageContent()
	call := imageCall(img)

	if c.inParagraph {
		c.inParagraph = false
		c.closedForImage = true
		c.pending = append(c.pending, call)
		return Ty(typst.End{Tag: typst.Paragraph{}}), true
	}
	return call, true
}

// skipImageContent discards everything up to and including the image end:
// alt text has no destination equivalent.
func (c *Images) skipImageContent() {
	for {
		e, ok := c.iter.Next()
		if !ok {
			return
		}
		if md, isEnd := e.Markdown.(markdown.End); isEnd {
			if _, isImage := md.Tag.(markdown.Image); isImage {
				return
			}
		}
	}
}

func imageCall(img markdown.Image) Event {
	path := strings.TrimPrefix(img.Destination, "./")
	return Ty(typst.FunctionCall{Name: "image", Args: []string{strconv.Quote(path)}})
}
