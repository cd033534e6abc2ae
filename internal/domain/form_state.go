package domain

// FormState is the structured result returned to the UI after a command
// attempt. Absence of both fields signals success.
type FormState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// OK reports whether the command attempt succeeded.
func (f FormState) OK() bool {
	return len(f.Errors) == 0 && f.Message == ""
}
