package view

import (
	"time"

	"golang.org/x/text/language"
)

type stampLayout struct {
	date  string
	clock string
}

// Locales the date/time stamp fields can be rendered in. The first entry is
// the fallback when nothing in Accept-Language matches.
var stampLocales = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Japanese,
	language.Chinese,
}

var stampLayouts = []stampLayout{
	{date: "1/2/2006", clock: "3:04:05 PM"},
	{date: "02/01/2006", clock: "15:04:05"},
	{date: "2.1.2006", clock: "15:04:05"},
	{date: "02/01/2006", clock: "15:04:05"},
	{date: "2/1/2006", clock: "15:04:05"},
	{date: "2006/1/2", clock: "15:04:05"},
	{date: "2006/1/2", clock: "15:04:05"},
}

var stampMatcher = language.NewMatcher(stampLocales)

// MatchLocale picks the stamp locale for an Accept-Language header value.
func MatchLocale(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return stampLocales[0]
	}
	_, idx, conf := stampMatcher.Match(tags...)
	if conf == language.No {
		return stampLocales[0]
	}
	return stampLocales[idx]
}

// FormatStamp renders t as the locale's short date and time strings.
func FormatStamp(t time.Time, tag language.Tag) (date, clock string) {
	_, idx, conf := stampMatcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	l := stampLayouts[idx]
	return t.Format(l.date), t.Format(l.clock)
}
