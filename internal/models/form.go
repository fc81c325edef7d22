package models

// FieldError represents a single field-level validation error
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// FormField describes one input of a form the rendering layer should draw
type FormField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	MaxLen   int    `json:"max_length,omitempty"`
}

// FormDescriptor describes a blank submission form. The core exposes
// plain data; turning this into markup belongs to the rendering layer.
type FormDescriptor struct {
	Action string      `json:"action"`
	Method string      `json:"method"`
	Fields []FormField `json:"fields"`
}

// NewCommentForm returns the blank comment-submission form attached to a
// post detail view
func NewCommentForm(postID string) *FormDescriptor {
	return &FormDescriptor{
		Action: "/v1/posts/" + postID + "/comments",
		Method: "POST",
		Fields: []FormField{
			{Name: "text", Type: "textarea", Required: true, MaxLen: MaxCommentLength},
		},
	}
}
