package view

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestMatchLocale(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.AmericanEnglish},
		{"en-US,en;q=0.9", language.AmericanEnglish},
		{"en-GB,en;q=0.8", language.BritishEnglish},
		{"de-DE,de;q=0.9,en;q=0.5", language.German},
		{"ja", language.Japanese},
		{"not a header;;", language.AmericanEnglish},
	}
	for _, tt := range tests {
		if got := MatchLocale(tt.header); got != tt.want {
			t.Errorf("MatchLocale(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestFormatStamp(t *testing.T) {
	ts := time.Date(2025, 11, 4, 9, 7, 3, 0, time.UTC)
	tests := []struct {
		tag        language.Tag
		date, time string
	}{
		{language.AmericanEnglish, "11/4/2025", "9:07:03 AM"},
		{language.BritishEnglish, "04/11/2025", "09:07:03"},
		{language.German, "4.11.2025", "09:07:03"},
		{language.Japanese, "2025/11/4", "09:07:03"},
	}
	for _, tt := range tests {
		d, c := FormatStamp(ts, tt.tag)
		if d != tt.date || c != tt.time {
			t.Errorf("FormatStamp(%v) = %q %q, want %q %q", tt.tag, d, c, tt.date, tt.time)
		}
	}
}
