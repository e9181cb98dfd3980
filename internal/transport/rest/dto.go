package rest

import "github.com/heartmarshall/vocabcore/internal/domain"

type recordResponse struct {
	Word      string   `json:"word"`
	Last      *int64   `json:"last"`
	Next      *int64   `json:"next"`
	Lists     []string `json:"lists"`
	Attempts  int      `json:"attempts"`
	Successes int      `json:"successes"`
	Failed    bool     `json:"failed"`
}

func toRecordResponse(r domain.Record) recordResponse {
	lists := r.Lists
	if lists == nil {
		lists = []string{}
	}
	return recordResponse{
		Word:      r.Word,
		Last:      r.Last,
		Next:      r.Next,
		Lists:     lists,
		Attempts:  r.Attempts,
		Successes: r.Successes,
		Failed:    r.Failed,
	}
}

func toRecordResponses(recs []domain.Record) []recordResponse {
	out := make([]recordResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, toRecordResponse(r))
	}
	return out
}

type reviewRequest struct {
	Word      string `json:"word"`
	Attempts  *int   `json:"attempts"`
	Result    *int   `json:"result"`
	Timestamp *int64 `json:"timestamp"`
}

type reviewResponse struct {
	Applied bool           `json:"applied"`
	Record  recordResponse `json:"record"`
}

type removeListResponse struct {
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

type blacklistItem struct {
	Word       string `json:"word"`
	Pinyin     string `json:"pinyin"`
	Definition string `json:"definition"`
}

type queueResponse struct {
	Count   int              `json:"count"`
	Record  *recordResponse  `json:"record,omitempty"`
	Records []recordResponse `json:"records,omitempty"`
}

type countResponse struct {
	Count int `json:"count"`
}

type statsResponse struct {
	Total     int `json:"total"`
	Attempted int `json:"attempted"`
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
	Unseen    int `json:"unseen"`
}
