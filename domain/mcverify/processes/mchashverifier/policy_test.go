package mchashverifier

import (
	"testing"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		policyName     string
		expectedPolicy Policy
		expectError    bool
	}{
		{"staleness-aware", PolicyStalenessAware, false},
		{"existence-first", PolicyExistenceFirst, false},
		{"optimistic", 0, true},
		{"", 0, true},
	}

	for _, test := range tests {
		policy, err := ParsePolicy(test.policyName)
		if test.expectError {
			if err == nil {
				t.Errorf("TestParsePolicy: '%s': Expected an error, found: nil", test.policyName)
			}
			continue
		}
		if err != nil {
			t.Errorf("TestParsePolicy: '%s': unexpected error: %s", test.policyName, err)
			continue
		}
		if policy != test.expectedPolicy {
			t.Errorf("TestParsePolicy: '%s': Expected %s, found: %s",
				test.policyName, test.expectedPolicy, policy)
		}
	}
}

func TestPolicyStringRoundTrip(t *testing.T) {
	for _, policy := range []Policy{PolicyStalenessAware, PolicyExistenceFirst} {
		parsed, err := ParsePolicy(policy.String())
		if err != nil {
			t.Fatalf("TestPolicyStringRoundTrip: unexpected error: %s", err)
		}
		if parsed != policy {
			t.Fatalf("TestPolicyStringRoundTrip: Expected %s, found: %s", policy, parsed)
		}
	}
}
