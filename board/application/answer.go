package application

import (
	"encoding/json"
	"fmt"

	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// AnswerKind tags the runtime type of an answer value
type AnswerKind string

const (
	AnswerKindString AnswerKind = "STRING"
	AnswerKindNumber AnswerKind = "NUMBER"
	AnswerKindBool   AnswerKind = "BOOLEAN"
)

// AnswerValue is a tagged union of the three value shapes an answer can
// take (string | number | boolean), keyed by the originating question's
// declared type. It marshals to the bare JSON value.
type AnswerValue struct {
	Kind AnswerKind
	Str  string
	Num  float64
	Bool bool
}

// StringAnswer builds a string-valued answer
func StringAnswer(s string) AnswerValue {
	return AnswerValue{Kind: AnswerKindString, Str: s}
}

// NumberAnswer builds a number-valued answer
func NumberAnswer(n float64) AnswerValue {
	return AnswerValue{Kind: AnswerKindNumber, Num: n}
}

// BoolAnswer builds a boolean-valued answer
func BoolAnswer(b bool) AnswerValue {
	return AnswerValue{Kind: AnswerKindBool, Bool: b}
}

// EmptyAnswer is the sentinel stored for unanswered optional questions
func EmptyAnswer() AnswerValue {
	return AnswerValue{Kind: AnswerKindString, Str: ""}
}

// IsEmpty reports whether the value is the type's empty sentinel
func (v AnswerValue) IsEmpty() bool {
	switch v.Kind {
	case AnswerKindString:
		return v.Str == ""
	case AnswerKindNumber, AnswerKindBool:
		return false
	default:
		return true
	}
}

// MarshalJSON encodes the bare value
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AnswerKindString:
		return json.Marshal(v.Str)
	case AnswerKindNumber:
		return json.Marshal(v.Num)
	case AnswerKindBool:
		return json.Marshal(v.Bool)
	default:
		// Untagged zero value persists as the empty-string sentinel
		return json.Marshal("")
	}
}

// UnmarshalJSON decodes a bare string, number or boolean
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case string:
		*v = StringAnswer(val)
	case float64:
		*v = NumberAnswer(val)
	case bool:
		*v = BoolAnswer(val)
	case nil:
		*v = EmptyAnswer()
	default:
		return fmt.Errorf("answer value must be a string, number or boolean, got %T", raw)
	}
	return nil
}

// Answer pairs a question id and a denormalized label copy with the
// applicant's value. The label copy keeps submitted answers readable even
// if the job's question schema is edited later.
type Answer struct {
	QuestionID    kernel.QuestionID `json:"question_id"`
	QuestionLabel string            `json:"question_label"`
	Value         AnswerValue       `json:"answer"`
}
