package wire

import "httpcommon/message"

// Part describes the headers of one multipart/form-data section. Empty
// Filename and ContentType are omitted.
type Part struct {
	Name        string
	Filename    string
	ContentType string
}

// MultipartSection opens a section. The caller writes the part payload
// after it, then either the next section or MultipartTerminator.
func MultipartSection(boundary message.Boundary, part Part) *Builder {
	b := &Builder{}

	b.WriteString(crlf + "--")
	b.WriteString(boundary.String())
	b.WriteString(crlf)

	b.WriteString(`Content-Disposition: form-data; name="`)
	b.WriteString(part.Name)
	b.WriteString(`"`)
	if part.Filename != "" {
		b.WriteString(`; filename="`)
		b.WriteString(part.Filename)
		b.WriteString(`"`)
	}
	b.WriteString(crlf)

	if part.ContentType != "" {
		b.WriteString("Content-Type: ")
		b.WriteString(part.ContentType)
		b.WriteString(crlf)
	}

	b.WriteString(crlf)
	return b
}

func MultipartTerminator(boundary message.Boundary) *Builder {
	b := &Builder{}
	b.WriteString(crlf + "--")
	b.WriteString(boundary.String())
	b.WriteString("--" + crlf)
	return b
}
