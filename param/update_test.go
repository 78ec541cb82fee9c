package param

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeUpdate(t *testing.T) {
	data := []byte(`{
		"normalized": 0.75,
		"precision": 0,
		"unitID": 0,
		"info": {
			"id": 102,
			"title": "Pan",
			"stepCount": 0,
			"flags": 1,
			"defaultNormalizedValue": 0.5,
			"units": "",
			"shortTitle": "Pan"
		},
		"isRangeParameter": true,
		"min": -1,
		"max": 1
	}`)

	got, err := DecodeUpdate(data)
	if err != nil {
		t.Fatalf("DecodeUpdate() error = %v", err)
	}
	want := ParameterUpdate{
		Normalized: 0.75,
		Info: ParameterInfo{
			ID:                     Pan,
			Title:                  "Pan",
			ShortTitle:             "Pan",
			Flags:                  1,
			DefaultNormalizedValue: 0.5,
		},
		IsRangeParameter: true,
		Min:              -1,
		Max:              1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeUpdate() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeUpdate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `notifyParameterChange(`},
		{"wrong type", `{"normalized": "half"}`},
		{"above range", `{"normalized": 1.5, "info": {"id": 102}}`},
		{"below range", `{"normalized": -0.1, "info": {"id": 102}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeUpdate([]byte(tt.data)); !errors.Is(err, ErrInvalidUpdate) {
				t.Errorf("DecodeUpdate() error = %v, expected ErrInvalidUpdate", err)
			}
		})
	}
}
