package handlers

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	domainsvcs "github.com/ghuser/solarbom/services/materials/domain/services"
)

// maxFormFieldSize caps a single multipart field value. The entry form only
// carries short strings; anything larger is not a form field.
const maxFormFieldSize = 1 << 16

// readOrderedForm decodes a form request body into fields in wire order.
// net/http's ParseForm folds fields into a map and loses the order the
// browser sent them in, which is exactly the order the operator saw on
// screen — so the body is walked by hand instead. Both urlencoded and
// multipart/form-data bodies are supported; multipart parts arrive in wire
// order already, urlencoded bodies are split on "&".
//
// Undecodable names or values skip just that pair, mirroring the
// per-candidate fallback policy of the collector.
func readOrderedForm(r *http.Request) ([]domainsvcs.FormField, error) {
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && mediaType == "multipart/form-data" {
		return readOrderedMultipart(r.Body, params["boundary"])
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read form body: %w", err)
	}

	var fields []domainsvcs.FormField
	for _, pair := range strings.Split(string(body), "&") {
		if pair == "" {
			continue
		}
		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		fields = append(fields, domainsvcs.FormField{Name: name, Value: value})
	}
	return fields, nil
}

// readOrderedMultipart walks multipart parts in the order they were sent.
// File parts and unnamed parts are skipped; only plain field values matter
// here.
func readOrderedMultipart(body io.Reader, boundary string) ([]domainsvcs.FormField, error) {
	if boundary == "" {
		return nil, fmt.Errorf("multipart body without boundary")
	}

	mr := multipart.NewReader(body, boundary)
	var fields []domainsvcs.FormField
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read multipart body: %w", err)
		}
		name := part.FormName()
		if name == "" || part.FileName() != "" {
			part.Close()
			continue
		}
		value, err := io.ReadAll(io.LimitReader(part, maxFormFieldSize))
		part.Close()
		if err != nil {
			continue
		}
		fields = append(fields, domainsvcs.FormField{Name: name, Value: string(value)})
	}
	return fields, nil
}

// firstValue returns the first occurrence of name in fields, or "".
func firstValue(fields []domainsvcs.FormField, name string) string {
	for _, f := range fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}
