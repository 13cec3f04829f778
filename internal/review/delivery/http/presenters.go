package http

import (
	"time"

	"task-capture/internal/extraction"
	"task-capture/internal/model"
	"task-capture/internal/review"
	"task-capture/pkg/datemath"
	"task-capture/pkg/response"
)

// --- Request DTOs ---

type candidateURI struct {
	SessionID string
	Index     int
}

type editReq struct {
	candidateURI `json:"-"`

	Title             string              `json:"title"              binding:"required,max=255"`
	Date              *datemath.Date      `json:"date"`
	Time              *datemath.ClockTime `json:"time"`
	SuggestedCategory string              `json:"suggested_category" binding:"max=64"`
	Confidence        float64             `json:"confidence"`
	Keywords          []string            `json:"keywords"`
	InferredPriority  string              `json:"inferred_priority"  binding:"omitempty,oneof=low medium high urgent"`
}

func (r editReq) validate() error { return nil }

// toInput keeps the provenance of the stored candidate the user is editing.
func (r editReq) toInput(prev extraction.Candidate) review.EditInput {
	c := prev
	c.Title = r.Title
	c.Date = r.Date
	c.Time = r.Time
	c.SuggestedCategory = r.SuggestedCategory
	c.Confidence = r.Confidence
	c.Keywords = r.Keywords
	c.InferredPriority = model.Priority(r.InferredPriority)
	return review.EditInput{
		SessionID: r.SessionID,
		Index:     r.Index,
		Candidate: c,
	}
}

// --- Response DTOs ---

type candidateResp struct {
	Index             int                 `json:"index"`
	Title             string              `json:"title"`
	Date              *datemath.Date      `json:"date,omitempty"`
	Time              *datemath.ClockTime `json:"time,omitempty"`
	SuggestedCategory string              `json:"suggested_category,omitempty"`
	Confidence        float64             `json:"confidence"`
	Keywords          []string            `json:"keywords"`
	InferredPriority  string              `json:"inferred_priority"`
	SourceSpan        string              `json:"source_span"`
	Strategy          string              `json:"strategy"`
}

type sessionResp struct {
	ID         string            `json:"id"`
	Source     string            `json:"source"`
	Candidates []candidateResp   `json:"candidates"`
	CreatedAt  response.DateTime `json:"created_at"`
	UpdatedAt  response.DateTime `json:"updated_at"`
}

func newSessionResp(sess review.Session) sessionResp {
	cands := make([]candidateResp, len(sess.Candidates))
	for i, c := range sess.Candidates {
		cands[i] = candidateResp{
			Index:             i,
			Title:             c.Title,
			Date:              c.Date,
			Time:              c.Time,
			SuggestedCategory: c.SuggestedCategory,
			Confidence:        c.Confidence,
			Keywords:          c.Keywords,
			InferredPriority:  string(c.InferredPriority),
			SourceSpan:        c.SourceSpan,
			Strategy:          c.Strategy,
		}
	}
	return sessionResp{
		ID:         sess.ID,
		Source:     string(sess.Source),
		Candidates: cands,
		CreatedAt:  response.DateTime(sess.CreatedAt),
		UpdatedAt:  response.DateTime(sess.UpdatedAt),
	}
}

type taskResp struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Category string     `json:"category,omitempty"`
	Priority string     `json:"priority"`
	Due      *time.Time `json:"due,omitempty"`
	AllDay   bool       `json:"all_day"`
	URL      string     `json:"url,omitempty"`
}

type acceptResp struct {
	Task      taskResp    `json:"task"`
	Scheduled bool        `json:"scheduled"`
	Session   sessionResp `json:"session"`
}

func (h *handler) newAcceptResp(out review.AcceptOutput) acceptResp {
	return acceptResp{
		Task: taskResp{
			ID:       out.Task.ID,
			Title:    out.Task.Title,
			Category: out.Task.CategoryID,
			Priority: string(out.Task.Priority),
			Due:      out.Task.Due,
			AllDay:   out.Task.AllDay,
			URL:      out.Task.MemoURL,
		},
		Scheduled: out.Scheduled,
		Session:   newSessionResp(out.Session),
	}
}
