package opt_test

import (
	"encoding/json"
	"testing"

	"pitwall/internal/platform/opt"
)

type payload struct {
	Notes opt.Field[[]string] `json:"notes,omitzero"`
	Count opt.Field[int]      `json:"count,omitzero"`
}

func TestFieldOmitsAbsentValues(t *testing.T) {
	t.Parallel()
	raw, err := json.Marshal(payload{Count: opt.Of(0)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"count":0}` {
		t.Fatalf("unexpected payload %s", raw)
	}
}

func TestFieldDistinguishesMissingFromEmpty(t *testing.T) {
	t.Parallel()
	var p payload
	if err := json.Unmarshal([]byte(`{"notes":[]}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	notes, ok := p.Notes.Get()
	if !ok || len(notes) != 0 {
		t.Fatalf("expected present empty notes, got %v %v", notes, ok)
	}
	if p.Count.Present() {
		t.Fatalf("count should be absent")
	}
	if got := p.Count.OrElse(7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
}

func TestFieldNullIsAbsent(t *testing.T) {
	t.Parallel()
	var p payload
	if err := json.Unmarshal([]byte(`{"notes":null,"count":3}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Notes.Present() {
		t.Fatalf("null notes should be absent")
	}
	if v, _ := p.Count.Get(); v != 3 {
		t.Fatalf("expected count 3, got %d", v)
	}
}
