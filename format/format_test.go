package format

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
	}{
		{"txt", "txt", Text},
		{"text alias", "text", Text},
		{"docx", "docx", DOCX},
		{"html", "html", HTML},
		{"htm alias", "htm", HTML},
		{"uppercase", "TXT", Text},
		{"surrounding whitespace", "  docx  ", DOCX},
		{"unsupported", "pdf", Unknown},
		{"empty", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.expected {
				t.Errorf("Parse(%q): expected %v, got %v", tt.input, tt.expected, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{Text, "txt"},
		{DOCX, "docx"},
		{HTML, "html"},
		{Unknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{Text, ".txt"},
		{DOCX, ".docx"},
		{HTML, ".html"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected bool
	}{
		{"pdf header", []byte("%PDF-1.7\n"), true},
		{"plain text", []byte("hello world"), false},
		{"too short", []byte("%PD"), false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPDF(tt.data); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
