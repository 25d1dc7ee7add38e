package types

import "testing"

func TestColumnIndex(t *testing.T) {
	table := &Table{Headers: []string{"id", "schedule", "location"}}

	tests := []struct {
		name   string
		column string
		want   int
	}{
		{"first column", "id", 0},
		{"middle column", "schedule", 1},
		{"last column", "location", 2},
		{"missing column", "owner", -1},
		{"case sensitive", "Schedule", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.ColumnIndex(tt.column); got != tt.want {
				t.Errorf("ColumnIndex(%q) = %d, want %d", tt.column, got, tt.want)
			}
		})
	}
}

func TestCounts(t *testing.T) {
	table := &Table{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "2"}, {"3"}},
	}

	if got := table.RowCount(); got != 2 {
		t.Errorf("RowCount = %d, want 2", got)
	}
	if got := table.ColumnCount(); got != 2 {
		t.Errorf("ColumnCount = %d, want 2", got)
	}
}
