package logger

import (
	"testing"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		input         string
		expectedLevel Level
		expectedOk    bool
	}{
		{"trace", LevelTrace, true},
		{"DEBUG", LevelDebug, true},
		{"inf", LevelInfo, true},
		{"warn", LevelWarn, true},
		{"off", LevelOff, true},
		{"verbose", LevelInfo, false},
	}

	for _, test := range tests {
		level, ok := LevelFromString(test.input)
		if ok != test.expectedOk {
			t.Errorf("TestLevelFromString: '%s': Expected ok %t, found: %t", test.input, test.expectedOk, ok)
		}
		if level != test.expectedLevel {
			t.Errorf("TestLevelFromString: '%s': Expected %s, found: %s",
				test.input, test.expectedLevel, level)
		}
	}
}

func TestParseAndSetLogLevels(t *testing.T) {
	log := RegisterSubSystem("TEST")

	err := ParseAndSetLogLevels("debug")
	if err != nil {
		t.Fatalf("TestParseAndSetLogLevels: unexpected error: %s", err)
	}
	if log.Level() != LevelDebug {
		t.Fatalf("TestParseAndSetLogLevels: Expected %s, found: %s", LevelDebug, log.Level())
	}

	err = ParseAndSetLogLevels("TEST=trace")
	if err != nil {
		t.Fatalf("TestParseAndSetLogLevels: unexpected error: %s", err)
	}
	if log.Level() != LevelTrace {
		t.Fatalf("TestParseAndSetLogLevels: Expected %s, found: %s", LevelTrace, log.Level())
	}

	err = ParseAndSetLogLevels("TEST=verbose")
	if err == nil {
		t.Fatal("TestParseAndSetLogLevels: Expected an error for an invalid level, found: nil")
	}
	err = ParseAndSetLogLevels("NOSUCHSUBSYSTEM=debug")
	if err == nil {
		t.Fatal("TestParseAndSetLogLevels: Expected an error for an unknown subsystem, found: nil")
	}
}

func TestRegisterSubSystemReturnsSameLogger(t *testing.T) {
	first := RegisterSubSystem("SAME")
	second := RegisterSubSystem("SAME")
	if first != second {
		t.Fatal("TestRegisterSubSystemReturnsSameLogger: Expected the same logger for the same tag")
	}
}
