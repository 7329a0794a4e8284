package pdf

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// CountPages returns the number of pages in a PDF document.
func CountPages(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, &Error{Message: "empty PDF"}
	}
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	count, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return 0, &Error{Message: "failed to count PDF pages", Cause: err}
	}
	return count, nil
}
