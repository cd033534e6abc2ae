package req

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Decode decodes a JSON body into a value of type T.
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// FormValues extracts the submitted field map from the request. Both
// form-encoded bodies and flat JSON objects of strings are accepted, so the
// validation schemas see the same field-to-string mapping either way.
func FormValues(r *http.Request) (url.Values, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		fields, err := Decode[map[string]string](r.Body)
		if err != nil {
			return nil, err
		}
		values := url.Values{}
		for name, value := range fields {
			values.Set(name, value)
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}
