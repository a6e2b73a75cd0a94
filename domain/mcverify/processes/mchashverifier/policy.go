package mchashverifier

import "github.com/pkg/errors"

// Policy selects how nonexistence of a mainchain reference is handled.
type Policy byte

// Policy constants
const (
	// PolicyStalenessAware is the canonical three-step policy: stability,
	// then existence, then local-observer health. A reference missing from a
	// stale local view defers instead of rejecting.
	PolicyStalenessAware Policy = iota

	// PolicyExistenceFirst is the stricter two-step policy: stability, then
	// existence. A reference missing from the local view rejects regardless
	// of how fresh that view is.
	PolicyExistenceFirst
)

const (
	policyStalenessAwareName = "staleness-aware"
	policyExistenceFirstName = "existence-first"
)

// ParsePolicy parses a policy name as it appears in configuration.
func ParsePolicy(policyName string) (Policy, error) {
	switch policyName {
	case policyStalenessAwareName:
		return PolicyStalenessAware, nil
	case policyExistenceFirstName:
		return PolicyExistenceFirst, nil
	default:
		return 0, errors.Errorf("unknown verification policy '%s'. Valid policies: {%s, %s}",
			policyName, policyStalenessAwareName, policyExistenceFirstName)
	}
}

func (p Policy) String() string {
	switch p {
	case PolicyStalenessAware:
		return policyStalenessAwareName
	case PolicyExistenceFirst:
		return policyExistenceFirstName
	default:
		return "Unknown Policy"
	}
}
