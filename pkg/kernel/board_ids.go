package kernel

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (j JobID) String() string { return string(j) }
func (j JobID) IsEmpty() bool  { return string(j) == "" }

type QuestionID string

func NewQuestionID(id string) QuestionID { return QuestionID(id) }
func (q QuestionID) String() string      { return string(q) }
func (q QuestionID) IsEmpty() bool       { return string(q) == "" }

type WizardID string

func NewWizardID(id string) WizardID { return WizardID(id) }
func (w WizardID) String() string    { return string(w) }
func (w WizardID) IsEmpty() bool     { return string(w) == "" }
