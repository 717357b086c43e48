package inspect

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/sirupsen/logrus"

	"doc-counter/pkg/utils"
)

// Inspector reports the page count of a document given its raw bytes
type Inspector interface {
	PageCount(ctx context.Context, data []byte) (int, error)
}

// PDFInspector counts pages in PDF documents using pdfcpu. Validation
// runs in relaxed mode so mildly non-conforming files still yield a
// count; genuinely corrupt, encrypted or non-PDF input fails with a
// descriptive message.
type PDFInspector struct {
	conf *model.Configuration
	log  *logrus.Logger
}

// NewPDFInspector creates a PDF inspector with relaxed validation
func NewPDFInspector(log *logrus.Logger) *PDFInspector {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFInspector{
		conf: conf,
		log:  log,
	}
}

// PageCount parses data as a PDF and returns its page count
func (p *PDFInspector) PageCount(ctx context.Context, data []byte) (int, error) {
	// pdfcpu has no context plumbing; honor cancellation at the boundary
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count, err := api.PageCount(bytes.NewReader(data), p.conf)
	if err != nil {
		p.log.Debugf("PDF inspection failed: %v", err)
		return 0, fmt.Errorf("%w: %v", utils.ErrInspection, err)
	}
	if count < 0 {
		return 0, fmt.Errorf("%w: negative page count %d", utils.ErrInspection, count)
	}
	return count, nil
}
