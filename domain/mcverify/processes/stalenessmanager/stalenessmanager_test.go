package stalenessmanager

import (
	"testing"
	"time"
)

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}

func TestTipStalenessThreshold(t *testing.T) {
	tests := []struct {
		name               string
		explicitSeconds    *uint64
		securityParameter  *uint64
		activeSlotsCoeff   *float64
		slotDurationMillis *uint64
		expectedThreshold  time.Duration
	}{
		{
			name:               "explicit override wins",
			explicitSeconds:    uint64Ptr(600),
			securityParameter:  uint64Ptr(432),
			activeSlotsCoeff:   float64Ptr(0.05),
			slotDurationMillis: uint64Ptr(1000),
			expectedThreshold:  600 * time.Second,
		},
		{
			name:               "derived from mainchain parameters",
			securityParameter:  uint64Ptr(432),
			activeSlotsCoeff:   float64Ptr(0.05),
			slotDurationMillis: uint64Ptr(1000),
			expectedThreshold:  4320 * time.Second,
		},
		{
			name:               "derived with a smaller security parameter",
			securityParameter:  uint64Ptr(129),
			activeSlotsCoeff:   float64Ptr(0.05),
			slotDurationMillis: uint64Ptr(1000),
			expectedThreshold:  1290 * time.Second,
		},
		{
			name:               "derived value is truncated, not rounded",
			securityParameter:  uint64Ptr(333),
			activeSlotsCoeff:   float64Ptr(0.07),
			slotDurationMillis: uint64Ptr(1000),
			// 0.5 * 333 * 1000 / 0.07 / 1000 = 2378.57...
			expectedThreshold: 2378 * time.Second,
		},
		{
			name:               "zero active slots coefficient falls back to default",
			securityParameter:  uint64Ptr(432),
			activeSlotsCoeff:   float64Ptr(0),
			slotDurationMillis: uint64Ptr(1000),
			expectedThreshold:  4320 * time.Second,
		},
		{
			name:               "missing security parameter falls back to default",
			activeSlotsCoeff:   float64Ptr(0.05),
			slotDurationMillis: uint64Ptr(1000),
			expectedThreshold:  4320 * time.Second,
		},
		{
			name:              "missing everything falls back to default",
			expectedThreshold: 4320 * time.Second,
		},
	}

	for _, test := range tests {
		manager := New(test.explicitSeconds, test.securityParameter,
			test.activeSlotsCoeff, test.slotDurationMillis)
		threshold := manager.TipStalenessThreshold()
		if threshold != test.expectedThreshold {
			t.Errorf("TestTipStalenessThreshold: %s: Expected %s, found: %s",
				test.name, test.expectedThreshold, threshold)
		}
	}
}
