package entities

import "testing"

func TestHTBClaimStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from HTBClaimStatus
		to   HTBClaimStatus
		want bool
	}{
		{"forward single step", HTBStatusInitiated, HTBStatusAccessCodeReceived, true},
		{"forward mid machine", HTBStatusClaimCodeReceived, HTBStatusFundsRequested, true},
		{"forward last step", HTBStatusDepositApplied, HTBStatusCompleted, true},
		{"skip a step", HTBStatusInitiated, HTBStatusAccessCodeSubmitted, false},
		{"backwards", HTBStatusFundsReceived, HTBStatusFundsRequested, false},
		{"self transition", HTBStatusInitiated, HTBStatusInitiated, false},
		{"abort from early state", HTBStatusInitiated, HTBStatusCancelled, true},
		{"abort from late state", HTBStatusFundsReceived, HTBStatusRejected, true},
		{"expire from mid state", HTBStatusDeveloperProcessing, HTBStatusExpired, true},
		{"out of completed", HTBStatusCompleted, HTBStatusDepositApplied, false},
		{"out of cancelled", HTBStatusCancelled, HTBStatusInitiated, false},
		{"out of rejected", HTBStatusRejected, HTBStatusCancelled, false},
		{"into unknown status", HTBStatusInitiated, HTBClaimStatus("BOGUS"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
				t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
			}
		})
	}
}

func TestHTBClaimStatus_FullForwardWalk(t *testing.T) {
	for i := 0; i < len(htbForwardOrder)-1; i++ {
		from, to := htbForwardOrder[i], htbForwardOrder[i+1]
		if !from.CanTransitionTo(to) {
			t.Fatalf("forward step %s -> %s rejected", from, to)
		}
	}
}

func TestHTBClaimStatus_IsTerminal(t *testing.T) {
	terminal := []HTBClaimStatus{HTBStatusCompleted, HTBStatusRejected, HTBStatusExpired, HTBStatusCancelled}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Fatalf("expected %s terminal", s)
		}
	}
	for _, s := range htbForwardOrder[:len(htbForwardOrder)-1] {
		if s.IsTerminal() {
			t.Fatalf("expected %s non-terminal", s)
		}
	}
}

func TestHTBClaimStatus_IsValid(t *testing.T) {
	if !HTBStatusFundsRequested.IsValid() || !HTBStatusExpired.IsValid() {
		t.Fatal("known statuses reported invalid")
	}
	if HTBClaimStatus("BOGUS").IsValid() {
		t.Fatal("unknown status reported valid")
	}
}
