package forms

import "time"

// FormField describes one field of a form. FieldType is a free-form tag
// ("text", "number", ...) used by the rendering client; it is not validated
// against a closed set.
type FormField struct {
	FieldName string `json:"fieldName"`
	FieldType string `json:"fieldType"`
}

// Submission is one anonymous respondent's payload against a form. Data is
// stored opaquely and is not cross-checked against the form's field list.
type Submission struct {
	SubmittedAt time.Time      `json:"submittedAt"`
	Data        map[string]any `json:"data"`
}

// Form is a named, ordered list of field definitions owned by one admin,
// plus an append-only log of submissions. Field order is the rendering
// order.
type Form struct {
	ID          string       `json:"id"`
	AdminID     string       `json:"adminId"`
	FormName    string       `json:"formName"`
	Fields      []FormField  `json:"fields"`
	Submissions []Submission `json:"submissions"`
	CreatedAt   time.Time    `json:"createdAt"`
}
