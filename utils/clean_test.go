package utils_test

import (
	"strings"
	"testing"

	"vacancy_report_go/utils"
)

func TestCleanCell(t *testing.T) {
	cases := []struct {
		name         string
		raw          string
		keepNewlines bool
		want         string
	}{
		{
			name: "strips html tags",
			raw:  "<p><strong>Обязанности:</strong> разработка</p>",
			want: "Обязанности: разработка",
		},
		{
			name: "collapses whitespace runs",
			raw:  "  Разработка \t сервисов\nна   Go ",
			want: "Разработка сервисов на Go",
		},
		{
			name:         "keeps newlines for item lists",
			raw:          " Python \n  SQL\nLinux ",
			keepNewlines: true,
			want:         "Python\nSQL\nLinux",
		},
		{
			name:         "strips tags inside multiline cells",
			raw:          "<b>Python</b>\nSQL",
			keepNewlines: true,
			want:         "Python\nSQL",
		},
		{
			name: "plain cell is untouched",
			raw:  "Москва",
			want: "Москва",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := utils.CleanCell(tc.raw, tc.keepNewlines); got != tc.want {
				t.Errorf("CleanCell(%q, %v) = %q, want %q", tc.raw, tc.keepNewlines, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := utils.Truncate("короткая строка", 100); got != "короткая строка" {
		t.Errorf("short string must pass through, got %q", got)
	}

	long := strings.Repeat("я", 120)
	got := utils.Truncate(long, 100)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated string must end with ellipsis, got %q", got)
	}
	if n := len([]rune(got)); n != 103 {
		t.Errorf("truncated length = %d runes, want 100 plus marker", n)
	}
}
