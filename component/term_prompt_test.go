package component

import "testing"

func TestTermPromptHint(t *testing.T) {
	tests := []struct {
		name   string
		words  []string
		typed  string
		expect string
	}{
		{
			name:   "single match shows remainder",
			words:  []string{"Diabetes", "Obesity"},
			typed:  "Diab",
			expect: "etes",
		},
		{
			name:   "case-insensitive prefix, hint keeps catalog casing",
			words:  []string{"Diabetes", "Obesity"},
			typed:  "diab",
			expect: "etes",
		},
		{
			name:   "multiple matches show no hint",
			words:  []string{"Diabetes", "Diastolic"},
			typed:  "Dia",
			expect: "",
		},
		{
			name:   "no match shows no hint",
			words:  []string{"Diabetes"},
			typed:  "Met",
			expect: "",
		},
		{
			name:   "exact full match shows no hint",
			words:  []string{"Diabetes"},
			typed:  "Diabetes",
			expect: "",
		},
		{
			name:   "empty input shows no hint",
			words:  []string{"Diabetes"},
			typed:  "",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewTermPrompt(tt.words)
			p.SetText(tt.typed)
			p.updateHint()
			if p.currentHint != tt.expect {
				t.Errorf("hint = %q, want %q", p.currentHint, tt.expect)
			}
		})
	}
}

func TestTermPromptSetWordsRefreshesHint(t *testing.T) {
	p := NewTermPrompt([]string{"Diabetes"})
	p.SetText("Ob")
	p.updateHint()
	if p.currentHint != "" {
		t.Fatalf("hint = %q before SetWords, want empty", p.currentHint)
	}

	p.SetWords([]string{"Obesity"})
	if p.currentHint != "esity" {
		t.Errorf("hint = %q after SetWords, want %q", p.currentHint, "esity")
	}
}

func TestTermPromptClear(t *testing.T) {
	p := NewTermPrompt([]string{"Diabetes"})
	p.SetText("Diab")
	p.updateHint()

	p.Clear()
	if p.GetText() != "" || p.currentHint != "" {
		t.Error("Clear() left text or hint behind")
	}
}
