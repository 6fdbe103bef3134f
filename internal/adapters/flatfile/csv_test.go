package flatfile

import (
	"reflect"
	"strings"
	"testing"

	"worklog/internal/domain"
)

func TestMarshalCSV(t *testing.T) {
	records := []domain.LogRecord{
		{
			Date:     "2026-08-31",
			Time:     "09:00",
			Content:  "写周报",
			Category: "日常工作",
			Tags:     []string{"周报", "汇报"},
		},
		{
			Date:     "2026-08-30",
			Time:     "14:00",
			Content:  `修复"登录"超时`,
			Category: "运维",
		},
	}

	got := MarshalCSV(records)
	want := CSVHeader + "\n" +
		`2026-08-31,09:00,"写周报",日常工作,"周报, 汇报"` + "\n" +
		`2026-08-30,14:00,"修复""登录""超时",运维,""`

	if got != want {
		t.Errorf("MarshalCSV =\n%s\nwant\n%s", got, want)
	}
}

func TestParseCSV(t *testing.T) {
	text := CSVHeader + "\n" +
		`2026-08-31,09:00,"写周报",日常工作,"周报, 汇报"` + "\n" +
		"\n" +
		`2026-08-30,14:00,"修复""登录""超时",运维,""` + "\n" +
		"2026-08-29,,只有三个字段,," + "\n"

	result := ParseCSV(text)

	if result.Total != 3 {
		t.Errorf("Total = %d, want 3", result.Total)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(result.Rows))
	}

	first := result.Rows[0]
	if first.Date != "2026-08-31" || first.Content != "写周报" {
		t.Errorf("first row = %+v", first)
	}
	if !reflect.DeepEqual(first.Tags, []string{"周报", "汇报"}) {
		t.Errorf("first row tags = %v", first.Tags)
	}

	second := result.Rows[1]
	if second.Content != `修复"登录"超时` {
		t.Errorf("doubled quotes not unescaped: %q", second.Content)
	}
	if second.Tags != nil {
		t.Errorf("empty tags cell should yield nil, got %v", second.Tags)
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	result := ParseCSV(CSVHeader)
	if result.Total != 0 || len(result.Rows) != 0 {
		t.Errorf("header-only text should yield nothing, got %+v", result)
	}
}

func TestParseCSV_EmptyText(t *testing.T) {
	result := ParseCSV("")
	if result.Total != 0 || result.Skipped != 0 || result.Rows != nil {
		t.Errorf("empty text should yield zero result, got %+v", result)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "bare cells",
			line: "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "comma inside quotes",
			line: `a,"b, c",d`,
			want: []string{"a", "b, c", "d"},
		},
		{
			name: "doubled quote is a literal",
			line: `"say ""hi""",x`,
			want: []string{`say "hi"`, "x"},
		},
		{
			name: "cells are trimmed",
			line: " a , b ",
			want: []string{"a", "b"},
		},
		{
			name: "trailing empty cell",
			line: "a,b,",
			want: []string{"a", "b", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestCSVRoundTrip(t *testing.T) {
	records := []domain.LogRecord{
		{
			Date:     "2026-08-31",
			Time:     "09:00",
			Content:  "写周报；含分号",
			Category: "日常工作",
			Tags:     []string{"周报"},
		},
	}

	result := ParseCSV(MarshalCSV(records))
	if len(result.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(result.Rows))
	}

	row := result.Rows[0]
	if row.Date != records[0].Date || row.Time != records[0].Time ||
		row.Content != records[0].Content || row.Category != records[0].Category {
		t.Errorf("row did not round-trip: %+v", row)
	}
	if !strings.Contains(row.Content, "；") {
		t.Error("full-width semicolon lost in round trip")
	}
}
