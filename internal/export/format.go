package export

import "strings"

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts "xlsx" or "pdf" in any case. Empty means xlsx.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatXLSX, true
	case FormatXLSX, FormatPDF:
		return f, true
	}
	return "", false
}

func (f Format) ContentType() string {
	if f == FormatPDF {
		return PDFContentType
	}
	return XLSXContentType
}
