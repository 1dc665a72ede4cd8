package response

import (
	"bytes"
	"html/template"

	"github.com/shravanasati/courier/status"
)

// OfTemplate renders tmpl with data and binds the result as an HTML body.
// Nothing is returned if execution fails part way.
func OfTemplate(code status.Code, tmpl *template.Template, data any) (*Response, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	resp := ofBuffer(code, buf.Bytes())
	resp.Headers().Set("content-type", "text/html; charset=utf-8")
	return resp, nil
}

// OfHTML parses content as an html/template and renders it with data.
func OfHTML(code status.Code, content string, data any) (*Response, error) {
	tmpl, err := template.New("response").Parse(content)
	if err != nil {
		return nil, err
	}
	return OfTemplate(code, tmpl, data)
}
