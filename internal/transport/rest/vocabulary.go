package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/vocabcore/internal/domain"
	"github.com/heartmarshall/vocabcore/internal/service/study"
)

// studyService defines the minimal interface needed by VocabularyHandler.
type studyService interface {
	AddToList(ctx context.Context, input study.AddToListInput) (domain.Record, error)
	RemoveList(ctx context.Context, listID string) (study.RemoveListResult, error)
	GetWord(ctx context.Context, word string) (domain.Record, error)
	ClearFailed(ctx context.Context, word string) error
	Review(ctx context.Context, input study.ReviewInput) (study.ReviewOutcome, error)
	Ban(ctx context.Context, input study.BlacklistInput) error
	Unban(ctx context.Context, word string) error
	Blacklist(ctx context.Context) ([]domain.BlacklistItem, error)
	Queue(ctx context.Context, input study.QueueInput) (study.QueueResult, error)
	ActiveCount(ctx context.Context) int
	Stats(ctx context.Context) domain.Stats
}

// VocabularyHandler serves the vocabulary REST endpoints.
type VocabularyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc studyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

// AddToList handles PUT /api/lists/{list}/words/{word}.
func (h *VocabularyHandler) AddToList(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.AddToList(r.Context(), study.AddToListInput{
		Word: pathParam(r, "word"),
		List: pathParam(r, "list"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// RemoveList handles DELETE /api/lists/{list}.
func (h *VocabularyHandler) RemoveList(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.RemoveList(r.Context(), pathParam(r, "list"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, removeListResponse{Updated: res.Updated, Deleted: res.Deleted})
}

// GetWord handles GET /api/words/{word}.
func (h *VocabularyHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetWord(r.Context(), pathParam(r, "word"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// ClearFailed handles POST /api/words/{word}/clear-failed.
func (h *VocabularyHandler) ClearFailed(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearFailed(r.Context(), pathParam(r, "word")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Review handles POST /api/reviews. A stale review answers 200 with
// applied=false and the current record.
func (h *VocabularyHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var missing []domain.FieldError
	if req.Attempts == nil {
		missing = append(missing, domain.FieldError{Field: "attempts", Message: "required"})
	}
	if req.Result == nil {
		missing = append(missing, domain.FieldError{Field: "result", Message: "required"})
	}
	if len(missing) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(missing))
		return
	}

	out, err := h.svc.Review(r.Context(), study.ReviewInput{
		Word:      req.Word,
		Attempts:  *req.Attempts,
		Result:    domain.ReviewResult(*req.Result),
		Timestamp: req.Timestamp,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewResponse{Applied: out.Applied, Record: toRecordResponse(out.Record)})
}

// Ban handles PUT /api/blacklist.
func (h *VocabularyHandler) Ban(w http.ResponseWriter, r *http.Request) {
	var req blacklistItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.Ban(r.Context(), study.BlacklistInput{
		Word:       req.Word,
		Pinyin:     req.Pinyin,
		Definition: req.Definition,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Unban handles DELETE /api/blacklist/{word}.
func (h *VocabularyHandler) Unban(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Unban(r.Context(), pathParam(r, "word")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Blacklist handles GET /api/blacklist.
func (h *VocabularyHandler) Blacklist(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Blacklist(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]blacklistItem, 0, len(items))
	for _, it := range items {
		out = append(out, blacklistItem{Word: it.Word, Pinyin: it.Pinyin, Definition: it.Definition})
	}
	writeJSON(w, http.StatusOK, out)
}

// Queue handles GET /api/queue/{kind}?mode=next|all|count with optional
// Unix-second cutoffs last_before, due_before, before, start and end.
func (h *VocabularyHandler) Queue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := study.QueueInput{
		Kind: study.QueueKind(pathParam(r, "kind")),
		Mode: study.QueueMode(q.Get("mode")),
	}

	var errs []domain.FieldError
	for _, p := range []struct {
		name string
		dst  **int64
	}{
		{"last_before", &input.LastBefore},
		{"due_before", &input.DueBefore},
		{"before", &input.Before},
		{"start", &input.Start},
		{"end", &input.End},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: p.name, Message: "must be an integer Unix timestamp"})
			continue
		}
		*p.dst = &v
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	res, err := h.svc.Queue(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := queueResponse{Count: res.Count}
	if res.Record != nil {
		rec := toRecordResponse(*res.Record)
		resp.Record = &rec
	}
	if input.Mode == study.ModeAll {
		resp.Records = toRecordResponses(res.Records)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Count handles GET /api/count.
func (h *VocabularyHandler) Count(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, countResponse{Count: h.svc.ActiveCount(r.Context())})
}

// Stats handles GET /api/stats.
func (h *VocabularyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Stats(r.Context())
	writeJSON(w, http.StatusOK, statsResponse{
		Total:     st.Total,
		Attempted: st.Attempted,
		Successes: st.Successes,
		Failures:  st.Failures,
		Unseen:    st.Unseen,
	})
}
