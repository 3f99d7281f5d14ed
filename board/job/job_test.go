package job

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jobdeck/jobdeck/pkg/errx"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

func draftJob() *Job {
	return &Job{
		ID:          kernel.JobID("job-1"),
		Title:       kernel.JobTitle("Backend Engineer"),
		Company:     kernel.CompanyName("Acme"),
		Status:      JobStatusDraft,
		MaxOpenings: 1,
	}
}

func question(id string) Question {
	return Question{
		ID:    kernel.QuestionID(id),
		Label: "Question " + id,
		Type:  QuestionTypeShortText,
	}
}

func TestPublishRequiresDraft(t *testing.T) {
	j := draftJob()
	if err := j.Publish(); err != nil {
		t.Fatalf("publishing a draft job: %v", err)
	}
	if !j.IsOpen() {
		t.Fatalf("status = %s, want OPEN", j.Status)
	}
	if j.PublishedAt == nil {
		t.Fatal("PublishedAt not stamped")
	}

	if err := j.Publish(); err == nil {
		t.Fatal("publishing an open job should fail")
	}
}

func TestCloseIsTerminal(t *testing.T) {
	j := draftJob()
	if err := j.Close(); err != nil {
		t.Fatalf("closing: %v", err)
	}
	if !j.IsClosed() {
		t.Fatalf("status = %s, want CLOSED", j.Status)
	}
	if err := j.Close(); err == nil {
		t.Fatal("closing a closed job should fail")
	}
	if err := j.Publish(); err == nil {
		t.Fatal("publishing a closed job should fail")
	}
}

func TestAddQuestionCap(t *testing.T) {
	j := draftJob()
	for i := 0; i < MaxQuestions; i++ {
		if err := j.AddQuestion(question(fmt.Sprintf("q%d", i))); err != nil {
			t.Fatalf("adding question %d: %v", i, err)
		}
	}

	err := j.AddQuestion(question("q5"))
	if err == nil {
		t.Fatal("sixth question should be rejected")
	}
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != "JOB_TOO_MANY_QUESTIONS" {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(j.Questions) != MaxQuestions {
		t.Fatalf("question count = %d, want %d", len(j.Questions), MaxQuestions)
	}
}

func TestAddQuestionValidation(t *testing.T) {
	j := draftJob()

	if err := j.AddQuestion(Question{ID: "q1", Label: "", Type: QuestionTypeShortText}); err == nil {
		t.Fatal("empty label should be rejected")
	}
	if err := j.AddQuestion(Question{ID: "q1", Label: "ok", Type: "DROPDOWN"}); err == nil {
		t.Fatal("unknown type should be rejected")
	}
	if err := j.AddQuestion(question("q1")); err != nil {
		t.Fatalf("valid question: %v", err)
	}
	if err := j.AddQuestion(question("q1")); err == nil {
		t.Fatal("duplicate id should be rejected")
	}
}

func TestRemoveQuestion(t *testing.T) {
	j := draftJob()
	j.AddQuestion(question("q1"))
	j.AddQuestion(question("q2"))

	if err := j.RemoveQuestion("q1"); err != nil {
		t.Fatalf("removing: %v", err)
	}
	if len(j.Questions) != 1 || j.Questions[0].ID != "q2" {
		t.Fatalf("questions after remove: %+v", j.Questions)
	}
	if err := j.RemoveQuestion("q1"); err == nil {
		t.Fatal("removing a missing question should fail")
	}
}

func TestMoveQuestionBoundsAreNoOps(t *testing.T) {
	j := draftJob()
	j.AddQuestion(question("q1"))
	j.AddQuestion(question("q2"))
	j.AddQuestion(question("q3"))

	order := func() string {
		s := ""
		for _, q := range j.Questions {
			s += q.ID.String()
		}
		return s
	}

	j.MoveQuestionUp(0) // top, no-op
	if order() != "q1q2q3" {
		t.Fatalf("order after no-op up: %s", order())
	}
	j.MoveQuestionDown(2) // bottom, no-op
	if order() != "q1q2q3" {
		t.Fatalf("order after no-op down: %s", order())
	}
	j.MoveQuestionUp(5) // out of range
	j.MoveQuestionDown(-1)
	if order() != "q1q2q3" {
		t.Fatalf("order after out-of-range moves: %s", order())
	}

	j.MoveQuestionUp(2)
	if order() != "q1q3q2" {
		t.Fatalf("order after up(2): %s", order())
	}
	j.MoveQuestionDown(0)
	if order() != "q3q1q2" {
		t.Fatalf("order after down(0): %s", order())
	}
}

func TestEditQuestion(t *testing.T) {
	j := draftJob()
	j.AddQuestion(question("q1"))

	if err := j.EditQuestion("q1", "Years of Go experience", QuestionTypeNumber, true); err != nil {
		t.Fatalf("editing: %v", err)
	}
	q, _ := j.QuestionByID("q1")
	if q.Label != "Years of Go experience" || q.Type != QuestionTypeNumber || !q.Required {
		t.Fatalf("edited question: %+v", q)
	}

	if err := j.EditQuestion("missing", "x", QuestionTypeShortText, false); err == nil {
		t.Fatal("editing a missing question should fail")
	}
	if err := j.EditQuestion("q1", "", QuestionTypeShortText, false); err == nil {
		t.Fatal("empty label should be rejected")
	}
}
