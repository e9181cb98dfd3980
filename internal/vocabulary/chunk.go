package vocabulary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf16"

	"github.com/heartmarshall/vocabcore/internal/domain"
)

// NumChunks is the fixed number of partitions records are spread over.
const NumChunks = 16

// BlacklistKey is the persistence key holding the whole blacklist.
const BlacklistKey = "blacklist"

// legacyColumns is the column order of the positional record encoding.
var legacyColumns = [...]string{"word", "last", "next", "lists", "attempts", "successes", "failed"}

// ChunkOf returns the chunk index a word is stored in. It is the absolute
// value of the 31-multiplier polynomial string hash over UTF-16 code units
// with int32 overflow, reduced modulo NumChunks, so chunk keys written by
// older clients stay valid.
func ChunkOf(word string) int {
	var h int32
	for _, u := range utf16.Encode([]rune(word)) {
		h = 31*h + int32(u)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % NumChunks)
}

// ChunkKey is the persistence key of chunk i.
func ChunkKey(i int) string {
	return strconv.Itoa(i)
}

type recordJSON struct {
	Word      string   `json:"word"`
	Last      *int64   `json:"last"`
	Next      *int64   `json:"next"`
	Lists     []string `json:"lists"`
	Attempts  int      `json:"attempts"`
	Successes int      `json:"successes"`
	Failed    bool     `json:"failed"`
}

type blacklistItemJSON struct {
	Word       string `json:"word"`
	Pinyin     string `json:"pinyin"`
	Definition string `json:"definition"`
}

func encodeChunk(entries []*domain.Record) ([]byte, error) {
	out := make([]recordJSON, len(entries))
	for i, e := range entries {
		lists := e.Lists
		if lists == nil {
			lists = []string{}
		}
		out[i] = recordJSON{
			Word:      e.Word,
			Last:      e.Last,
			Next:      e.Next,
			Lists:     lists,
			Attempts:  e.Attempts,
			Successes: e.Successes,
			Failed:    e.Failed,
		}
	}
	return json.Marshal(out)
}

// decodeChunk accepts both the named-field encoding and the positional
// one. A positional record with the wrong field count is corrupt.
func decodeChunk(data []byte) ([]*domain.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: chunk is not an array: %v", domain.ErrCorrupt, err)
	}

	out := make([]*domain.Record, 0, len(raw))
	for i, r := range raw {
		rec, err := decodeRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeRecord(raw json.RawMessage) (*domain.Record, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		return decodeLegacyRecord(raw)
	}

	var r recordJSON
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorrupt, err)
	}
	rec := &domain.Record{
		Word:      r.Word,
		Last:      r.Last,
		Next:      r.Next,
		Lists:     r.Lists,
		Attempts:  r.Attempts,
		Successes: r.Successes,
		Failed:    r.Failed,
	}
	return rec, checkRecord(rec)
}

func decodeLegacyRecord(raw json.RawMessage) (*domain.Record, error) {
	var cols []json.RawMessage
	if err := json.Unmarshal(raw, &cols); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorrupt, err)
	}
	if len(cols) != len(legacyColumns) {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", domain.ErrCorrupt, len(legacyColumns), len(cols))
	}

	rec := &domain.Record{}
	targets := []any{&rec.Word, &rec.Last, &rec.Next, &rec.Lists, &rec.Attempts, &rec.Successes, &rec.Failed}
	for i, target := range targets {
		if err := json.Unmarshal(cols[i], target); err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", domain.ErrCorrupt, legacyColumns[i], err)
		}
	}
	return rec, checkRecord(rec)
}

func checkRecord(r *domain.Record) error {
	if r.Word == "" {
		return fmt.Errorf("%w: empty word", domain.ErrCorrupt)
	}
	if r.Attempts < 0 || r.Successes < 0 || r.Successes > r.Attempts {
		return fmt.Errorf("%w: %q has successes=%d attempts=%d", domain.ErrCorrupt, r.Word, r.Successes, r.Attempts)
	}
	if r.Lists == nil {
		r.Lists = []string{}
	}
	return nil
}

func encodeBlacklist(items []domain.BlacklistItem) ([]byte, error) {
	out := make([]blacklistItemJSON, len(items))
	for i, it := range items {
		out[i] = blacklistItemJSON(it)
	}
	return json.Marshal(out)
}

func decodeBlacklist(data []byte) ([]domain.BlacklistItem, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var raw []blacklistItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: blacklist: %v", domain.ErrCorrupt, err)
	}

	out := make([]domain.BlacklistItem, 0, len(raw))
	for _, it := range raw {
		if it.Word == "" {
			return nil, fmt.Errorf("%w: blacklist item without word", domain.ErrCorrupt)
		}
		out = append(out, domain.BlacklistItem(it))
	}
	return out, nil
}
