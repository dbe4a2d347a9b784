package domain

import "time"

// TranscriptEntry is an immutable dialogue record. Entries are appended in
// strict chronological order and never edited or removed.
type TranscriptEntry struct {
	Scene          Scene     `json:"scene"`
	Character      string    `json:"character"`
	Speaker        Speaker   `json:"speaker"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
	ExchangeNumber int       `json:"exchange_number"`
}

// CapturedAttribute records one detected attribute. Once present it is never
// removed and its confidence is never lowered; only Evidence may grow.
type CapturedAttribute struct {
	AttributeID string    `json:"attribute_id"`
	CapturedAt  time.Time `json:"captured_at"`
	Scene       Scene     `json:"scene"`
	Evidence    []string  `json:"evidence"`
	Confidence  float64   `json:"confidence"`
}

// InterviewSession is the mutable state of one interview. It is owned
// exclusively by the engine driving it; once Status leaves StatusActive the
// session becomes immutable.
type InterviewSession struct {
	ID                 string                        `json:"id"`
	CandidateName      string                        `json:"candidate_name"`
	AttributeSetID     string                        `json:"attribute_set_id"`
	Transcript         []TranscriptEntry             `json:"transcript"`
	CapturedAttributes map[string]*CapturedAttribute `json:"captured_attributes"`
	CurrentScene       Scene                         `json:"current_scene"`
	SceneExchanges     map[Scene]int                 `json:"scene_exchanges"`
	StartedAt          time.Time                     `json:"started_at"`
	LastActivityAt     time.Time                     `json:"last_activity_at"`
	Status             SessionStatus                 `json:"status"`
}

// Active reports whether the session still accepts mutation.
func (s *InterviewSession) Active() bool {
	return s.Status == StatusActive
}

// CandidateText concatenates every candidate-side transcript entry.
func (s *InterviewSession) CandidateText() string {
	var out string
	for _, e := range s.Transcript {
		if e.Speaker != SpeakerCandidate {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += e.Text
	}
	return out
}

// CaptureProgress summarizes how far attribute capture has progressed against
// the session's attribute set.
type CaptureProgress struct {
	RequiredCaptured int      `json:"required_captured"`
	RequiredTotal    int      `json:"required_total"`
	OptionalCaptured int      `json:"optional_captured"`
	OptionalTotal    int      `json:"optional_total"`
	Percent          float64  `json:"percent"`
	MissingRequired  []string `json:"missing_required"`
}

// CaptureResult is returned per logged exchange: what the latest candidate
// text newly evidenced, plus updated progress and follow-up suggestions.
type CaptureResult struct {
	NewlyCaptured      []string        `json:"newly_captured"`
	Progress           CaptureProgress `json:"progress"`
	SuggestedQuestions []string        `json:"suggested_questions"`
	SceneCapReached    bool            `json:"scene_cap_reached"`
}
