package view

import (
	"testing"

	"github.com/boolean-maybe/trialscope/query"
)

func TestModeLabel(t *testing.T) {
	tests := []struct {
		name   string
		mode   query.InsertMode
		expect string
	}{
		{name: "append and", mode: query.AppendAnd, expect: "AND"},
		{name: "append or", mode: query.AppendOr, expect: "OR"},
		{name: "append not", mode: query.AppendNot, expect: "NOT"},
		{name: "nest and", mode: query.NestAnd, expect: "nest AND"},
		{name: "nest or", mode: query.NestOr, expect: "nest OR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modeLabel(tt.mode); got != tt.expect {
				t.Errorf("modeLabel(%v) = %q, want %q", tt.mode, got, tt.expect)
			}
		})
	}
}
