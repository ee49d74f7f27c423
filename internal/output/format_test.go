package output

import (
	"bytes"
	"testing"

	"github.com/pbozzay/kanbanist/internal/model"
)

func TestFormatItem(t *testing.T) {
	tests := []struct {
		name string
		item model.Item
		want string
	}{
		{"plain", model.Item{Content: "Buy milk"}, "   1  Buy milk\n"},
		{"untitled", model.Item{Content: "  "}, "   1  (untitled)\n"},
		{"newlines", model.Item{Content: "a\nb"}, "   1  a b\n"},
		{"due", model.Item{Content: "Pay", Due: &model.Due{Date: "2024-01-01"}}, "   1  Pay  (due 2024-01-01)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatItem(&buf, 1, tt.item)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestFormatItemWithLetter(t *testing.T) {
	var buf bytes.Buffer
	FormatItemWithLetter(&buf, 'c', 12, model.Item{Content: "Ship"})
	if want := "     c12  Ship\n"; buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatListName(t *testing.T) {
	var buf bytes.Buffer
	FormatListName(&buf, model.List{ID: "work", Title: "Work", Items: []model.Item{{ID: "1"}}})
	FormatListName(&buf, model.List{ID: "2024-01-01", Title: "Mon Jan 1"})
	FormatListName(&buf, model.List{ID: model.BacklogID, Title: ""})

	want := "Work (1)\nMon Jan 1 [2024-01-01] (0)\n(untitled) [backlog] (0)\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
