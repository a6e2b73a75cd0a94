package mstime

import (
	"testing"
	"time"
)

func TestUnixMilliRoundTrip(t *testing.T) {
	tests := []int64{0, 1, 999, 1000, 1700000000000, 1700000000123}

	for _, ms := range tests {
		roundTripped := TimeToUnixMilli(UnixMilliToTime(ms))
		if roundTripped != ms {
			t.Errorf("TestUnixMilliRoundTrip: Expected %d, found: %d", ms, roundTripped)
		}
	}
}

func TestReduceToMillisecondPrecision(t *testing.T) {
	withNanos := time.Unix(1700000000, 123456789)
	reduced := ReduceToMillisecondPrecision(withNanos)

	if reduced.Nanosecond() != 123000000 {
		t.Fatalf("TestReduceToMillisecondPrecision: Expected 123000000 nanoseconds, found: %d",
			reduced.Nanosecond())
	}
	if reduced.Unix() != withNanos.Unix() {
		t.Fatalf("TestReduceToMillisecondPrecision: Expected seconds %d, found: %d",
			withNanos.Unix(), reduced.Unix())
	}
}

func TestNowHasMillisecondPrecision(t *testing.T) {
	now := Now()
	if int64(now.Nanosecond())%1000000 != 0 {
		t.Fatalf("TestNowHasMillisecondPrecision: found sub-millisecond part: %d", now.Nanosecond())
	}
}
