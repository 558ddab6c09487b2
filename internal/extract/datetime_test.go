package extract

import "testing"

func TestDateTimeExtractor_Extract(t *testing.T) {
	extractor := NewDateTimeExtractor()

	tests := []struct {
		path  string
		date  string
		clock string
		desc  string
	}{
		{path: "rec_2019-05-14_12-30-45.brw", date: "2019-05-14", clock: "12:30:45", desc: "ISO date and dashed time"},
		{path: "2019_05_14_12_30_45/rec.brw", date: "2019-05-14", clock: "12:30:45", desc: "underscores everywhere"},
		{path: "data/14.05.2019/rec.dat", date: "2019-05-14", clock: "", desc: "German date"},
		{path: "20190514_rec.dat", date: "2019-05-14", clock: "", desc: "compact date"},
		{path: "2018_01_01/2019_05_14_rec.dat", date: "2019-05-14", clock: "", desc: "rightmost date wins"},
		{path: "rec_13h05m10s.dat", date: "", clock: "13:05:10", desc: "hms time"},
		{path: "rec_2019-13-40.dat", date: "", clock: "", desc: "invalid month and day"},
		{path: "rec_2019-02-30.dat", date: "", clock: "", desc: "no such day"},
		{path: "rec_25-61-00.dat", date: "", clock: "", desc: "invalid time"},
		{path: "rec_123456789.dat", date: "", clock: "", desc: "long digit run"},
		{path: "", date: "", clock: "", desc: "empty path"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			date, clock := extractor.Extract(tt.path)
			if date.String() != tt.date {
				t.Errorf("Expected date %q for %s, got %q", tt.date, tt.path, date)
			}
			if clock.String() != tt.clock {
				t.Errorf("Expected time %q for %s, got %q", tt.clock, tt.path, clock)
			}
		})
	}
}
