package http

import (
	"errors"
	"strings"
	"time"

	"task-capture/internal/extraction"
	"task-capture/internal/model"
	"task-capture/pkg/datemath"
)

var errBlankText = errors.New("text must not be blank")

// --- Request DTOs ---

type extractReq struct {
	Text                string     `json:"text"                 binding:"required,max=20000"`
	AppName             string     `json:"app_name"             binding:"max=64"`
	ConversationContext string     `json:"conversation_context" binding:"max=2000"`
	SenderInfo          string     `json:"sender_info"          binding:"max=255"`
	Now                 *time.Time `json:"now"`
}

func (r extractReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errBlankText
	}
	return nil
}

func (r extractReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{
		Content: model.SharedContent{
			Text:                r.Text,
			AppName:             r.AppName,
			ConversationContext: r.ConversationContext,
			SenderInfo:          r.SenderInfo,
		},
		Now: deref(r.Now),
	}
}

// ---

type voiceReq struct {
	Transcript string     `json:"transcript" binding:"required,max=2000"`
	Now        *time.Time `json:"now"`
}

func (r voiceReq) validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return errBlankText
	}
	return nil
}

func (r voiceReq) toInput() extraction.VoiceInput {
	return extraction.VoiceInput{Transcript: r.Transcript, Now: deref(r.Now)}
}

// ---

type resolveReq struct {
	Fragment string     `json:"fragment" binding:"required,max=500"`
	Now      *time.Time `json:"now"`
}

func (r resolveReq) validate() error { return nil }

func (r resolveReq) toInput() extraction.ResolveInput {
	return extraction.ResolveInput{Fragment: r.Fragment, Now: deref(r.Now)}
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// --- Response DTOs ---

type candidateResp struct {
	Title             string   `json:"title"`
	Date              string   `json:"date,omitempty"`
	Time              string   `json:"time,omitempty"`
	SuggestedCategory string   `json:"suggested_category,omitempty"`
	Confidence        float64  `json:"confidence"`
	Keywords          []string `json:"keywords"`
	InferredPriority  string   `json:"inferred_priority"`
	SourceSpan        string   `json:"source_span"`
	Strategy          string   `json:"strategy"`
}

func newCandidateResp(c extraction.Candidate) candidateResp {
	resp := candidateResp{
		Title:             c.Title,
		SuggestedCategory: c.SuggestedCategory,
		Confidence:        c.Confidence,
		Keywords:          c.Keywords,
		InferredPriority:  string(c.InferredPriority),
		SourceSpan:        c.SourceSpan,
		Strategy:          c.Strategy,
	}
	if c.Date != nil {
		resp.Date = c.Date.String()
	}
	if c.Time != nil {
		resp.Time = c.Time.String()
	}
	return resp
}

type extractResp struct {
	SessionID  string          `json:"session_id,omitempty"`
	Candidates []candidateResp `json:"candidates"`
	ElapsedMS  float64         `json:"elapsed_ms"`
}

func (h *handler) newExtractResp(out extraction.ExtractOutput, sessionID string) extractResp {
	cands := make([]candidateResp, len(out.Candidates))
	for i, c := range out.Candidates {
		cands[i] = newCandidateResp(c)
	}
	return extractResp{
		SessionID:  sessionID,
		Candidates: cands,
		ElapsedMS:  float64(out.Elapsed.Microseconds()) / 1000,
	}
}

type parsedResp struct {
	Date          string  `json:"date"`
	Time          string  `json:"time,omitempty"`
	Confidence    float64 `json:"confidence"`
	OriginalInput string  `json:"original_input"`
	Rule          string  `json:"rule"`
}

func newParsedResp(p datemath.ParsedDateTime) parsedResp {
	resp := parsedResp{
		Date:          p.Date.String(),
		Confidence:    p.Confidence,
		OriginalInput: p.OriginalInput,
		Rule:          p.Rule,
	}
	if p.Time != nil {
		resp.Time = p.Time.String()
	}
	return resp
}

type voiceResp struct {
	Title    string      `json:"title"`
	Category string      `json:"category,omitempty"`
	Priority string      `json:"priority"`
	When     *parsedResp `json:"when,omitempty"`
}

func (h *handler) newVoiceResp(out extraction.VoiceOutput) voiceResp {
	resp := voiceResp{
		Title:    out.Title,
		Category: out.Category,
		Priority: string(out.Priority),
	}
	if out.When != nil {
		when := newParsedResp(*out.When)
		resp.When = &when
	}
	return resp
}

type resolveResp struct {
	Found  bool        `json:"found"`
	Result *parsedResp `json:"result,omitempty"`
}

func (h *handler) newResolveResp(out extraction.ResolveOutput) resolveResp {
	if !out.Found {
		return resolveResp{Found: false}
	}
	res := newParsedResp(out.Result)
	return resolveResp{Found: true, Result: &res}
}
