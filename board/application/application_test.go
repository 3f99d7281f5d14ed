package application

import (
	"encoding/json"
	"testing"

	"github.com/jobdeck/jobdeck/pkg/kernel"
)

func newApplication() *Application {
	return &Application{
		ID:     kernel.ApplicationID("app-1"),
		JobID:  kernel.JobID("job-1"),
		Status: ApplicationStatusNew,
	}
}

func TestSetStatusStampsReviewer(t *testing.T) {
	app := newApplication()
	reviewer := kernel.UserID("admin-1")

	if err := app.SetStatus(ApplicationStatusReviewed, reviewer); err != nil {
		t.Fatalf("setting status: %v", err)
	}
	if app.Status != ApplicationStatusReviewed {
		t.Fatalf("status = %s, want REVIEWED", app.Status)
	}
	if app.ReviewedBy == nil || *app.ReviewedBy != reviewer {
		t.Fatalf("ReviewedBy = %v, want %s", app.ReviewedBy, reviewer)
	}
	if app.ReviewedAt == nil {
		t.Fatal("ReviewedAt not stamped")
	}

	// Any enumerated status may follow any other
	if err := app.SetStatus(ApplicationStatusHired, reviewer); err != nil {
		t.Fatalf("setting status again: %v", err)
	}
	if err := app.SetStatus(ApplicationStatusNew, reviewer); err != nil {
		t.Fatalf("setting status back to NEW: %v", err)
	}
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	app := newApplication()
	if err := app.SetStatus("ARCHIVED", "admin-1"); err == nil {
		t.Fatal("unknown status should be rejected")
	}
	if app.Status != ApplicationStatusNew {
		t.Fatalf("status changed to %s on failure", app.Status)
	}
}

func TestSetRatingBounds(t *testing.T) {
	app := newApplication()
	reviewer := kernel.UserID("admin-1")

	for _, r := range []int{0, 6, -1} {
		if err := app.SetRating(r, reviewer); err == nil {
			t.Fatalf("rating %d should be rejected", r)
		}
	}
	if app.Rating != nil {
		t.Fatal("rating set despite rejection")
	}

	if err := app.SetRating(MinRating, reviewer); err != nil {
		t.Fatalf("rating %d: %v", MinRating, err)
	}
	if err := app.SetRating(MaxRating, reviewer); err != nil {
		t.Fatalf("rating %d: %v", MaxRating, err)
	}
	if app.Rating == nil || *app.Rating != MaxRating {
		t.Fatalf("rating = %v, want %d", app.Rating, MaxRating)
	}
}

func TestSetNotesOverwrites(t *testing.T) {
	app := newApplication()

	app.SetNotes("first pass", "admin-1")
	app.SetNotes("second pass", "admin-2")

	if app.Notes == nil || *app.Notes != "second pass" {
		t.Fatalf("notes = %v, want overwrite", app.Notes)
	}
	if app.ReviewedBy == nil || *app.ReviewedBy != kernel.UserID("admin-2") {
		t.Fatalf("ReviewedBy = %v, want admin-2", app.ReviewedBy)
	}
}

func TestAnswerValueMarshalsBareValues(t *testing.T) {
	answers := []Answer{
		{QuestionID: "q1", QuestionLabel: "Why us?", Value: StringAnswer("because")},
		{QuestionID: "q2", QuestionLabel: "Remote OK?", Value: BoolAnswer(true)},
		{QuestionID: "q3", QuestionLabel: "Years", Value: NumberAnswer(4)},
		{QuestionID: "q4", QuestionLabel: "Optional", Value: EmptyAnswer()},
	}

	data, err := json.Marshal(answers)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `[{"question_id":"q1","question_label":"Why us?","answer":"because"},` +
		`{"question_id":"q2","question_label":"Remote OK?","answer":true},` +
		`{"question_id":"q3","question_label":"Years","answer":4},` +
		`{"question_id":"q4","question_label":"Optional","answer":""}]`
	if string(data) != want {
		t.Fatalf("marshaled:\n%s\nwant:\n%s", data, want)
	}

	var back []Answer
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back[1].Value.Kind != AnswerKindBool || !back[1].Value.Bool {
		t.Fatalf("bool answer decoded as %+v", back[1].Value)
	}
	if back[2].Value.Kind != AnswerKindNumber || back[2].Value.Num != 4 {
		t.Fatalf("number answer decoded as %+v", back[2].Value)
	}
	if !back[3].Value.IsEmpty() {
		t.Fatalf("empty sentinel decoded as %+v", back[3].Value)
	}
}

func TestAnswerValueRejectsObjects(t *testing.T) {
	var v AnswerValue
	if err := json.Unmarshal([]byte(`{"nested":1}`), &v); err == nil {
		t.Fatal("object value should be rejected")
	}
}

func TestNumberAndBoolAnswersAreNeverEmpty(t *testing.T) {
	if NumberAnswer(0).IsEmpty() {
		t.Fatal("zero number should not be the empty sentinel")
	}
	if BoolAnswer(false).IsEmpty() {
		t.Fatal("false should not be the empty sentinel")
	}
	if !StringAnswer("").IsEmpty() {
		t.Fatal("empty string is the empty sentinel")
	}
}
