package domain

import "testing"

func TestNewLedger_StartingValues(t *testing.T) {
	l := NewLedger()

	if l.Reputation != StartingReputation {
		t.Errorf("Reputation = %d, want %d", l.Reputation, StartingReputation)
	}
	if l.ForcePoints != StartingForcePoints {
		t.Errorf("ForcePoints = %d, want %d", l.ForcePoints, StartingForcePoints)
	}
	if l.Credits != StartingCredits {
		t.Errorf("Credits = %d, want %d", l.Credits, StartingCredits)
	}
	if l.ShipsAvailable != StartingShips {
		t.Errorf("ShipsAvailable = %d, want %d", l.ShipsAvailable, StartingShips)
	}
	if l.PilotsAvailable != StartingPilots {
		t.Errorf("PilotsAvailable = %d, want %d", l.PilotsAvailable, StartingPilots)
	}
	if !l.MentorAlive {
		t.Error("expected mentor alive at start")
	}
	if l.LeiaRescued || l.DeathStarPlans {
		t.Error("expected narrative flags unset at start")
	}
	if err := l.Validate(); err != nil {
		t.Errorf("starting ledger should validate: %v", err)
	}
}

func TestLedger_GainReputation_Clamps(t *testing.T) {
	l := NewLedger()
	l.GainReputation(500)
	if l.Reputation != MaxReputation {
		t.Errorf("Reputation = %d, want clamped to %d", l.Reputation, MaxReputation)
	}
}

func TestLedger_LoseReputation_Clamps(t *testing.T) {
	l := NewLedger()
	for i := 0; i < 10; i++ {
		l.LoseReputation(30)
	}
	if l.Reputation != 0 {
		t.Errorf("Reputation = %d, want clamped to 0", l.Reputation)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("clamped ledger should validate: %v", err)
	}
}

func TestLedger_Validate_Negative(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Ledger)
	}{
		{"negative credits", func(l *Ledger) { l.Credits = -1 }},
		{"negative ships", func(l *Ledger) { l.ShipsAvailable = -2 }},
		{"negative pilots", func(l *Ledger) { l.PilotsAvailable = -1 }},
		{"negative force", func(l *Ledger) { l.ForcePoints = -5 }},
		{"reputation above max", func(l *Ledger) { l.Reputation = MaxReputation + 1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			tc.mutate(&l)
			if err := l.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSession_Clone_Independent(t *testing.T) {
	sess := &Session{
		ID:      "s1",
		Phase:   PhaseRescue,
		Ledger:  NewLedger(),
		Options: []Option{{ID: 1, Text: "a", Available: true}},
	}

	cp := sess.Clone()
	cp.Options[0].Available = false
	cp.Ledger.Credits = 0

	if !sess.Options[0].Available {
		t.Error("mutating clone options leaked into original")
	}
	if sess.Ledger.Credits != StartingCredits {
		t.Error("mutating clone ledger leaked into original")
	}
}
