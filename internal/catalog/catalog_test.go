package catalog

import (
	"strings"
	"testing"

	"github.com/anthropics/rebel-command-engine/internal/domain"
)

func TestOptionsFor_DeclarationOrder(t *testing.T) {
	cat := New()
	l := domain.NewLedger()

	wantCounts := map[domain.Phase]int{
		domain.PhaseRescue:  4,
		domain.PhaseDecode:  4,
		domain.PhasePrepare: 5,
		domain.PhaseAssault: 5,
	}

	for phase, want := range wantCounts {
		opts := cat.OptionsFor(phase, l)
		if len(opts) != want {
			t.Errorf("phase %d: %d options, want %d", phase, len(opts), want)
		}
		for i, o := range opts {
			if o.ID != i+1 {
				t.Errorf("phase %d position %d: id = %d, want %d", phase, i, o.ID, i+1)
			}
		}
	}
}

func TestOptionsFor_TerminalPhaseEmpty(t *testing.T) {
	cat := New()
	if opts := cat.OptionsFor(domain.PhaseComplete, domain.NewLedger()); len(opts) != 0 {
		t.Errorf("expected no options for completed phase, got %d", len(opts))
	}
}

func TestOptionsFor_UnmetRequirementSurfaced(t *testing.T) {
	cat := New()
	l := domain.NewLedger() // reputation 50

	opts := cat.OptionsFor(domain.PhaseRescue, l)

	// Direct assault needs 70+ reputation: surfaced but unavailable.
	assault := opts[2]
	if assault.Available {
		t.Error("direct assault should be unavailable at starting reputation")
	}
	if assault.Requirement == "" {
		t.Error("unavailable option should carry its requirement reason")
	}

	// Stormtrooper disguise needs 40+: available at start.
	if !opts[0].Available {
		t.Error("disguise should be available at starting reputation")
	}

	// Cost-only options have no requirement and stay available;
	// affordability is checked at apply time.
	han := opts[1]
	if !han.Available {
		t.Error("cost-only option should be available regardless of credits")
	}
	if han.Requirement != "" {
		t.Errorf("cost-only option requirement = %q, want empty", han.Requirement)
	}
	if han.Cost != 50 {
		t.Errorf("han option cost = %d, want 50", han.Cost)
	}
}

func TestOptionsFor_PredicatesTrackLedger(t *testing.T) {
	cat := New()
	l := domain.NewLedger()

	l.Reputation = 70
	opts := cat.OptionsFor(domain.PhaseRescue, l)
	if !opts[2].Available {
		t.Error("direct assault should unlock at 70 reputation")
	}

	l.ForcePoints = 4
	opts = cat.OptionsFor(domain.PhaseDecode, l)
	if opts[1].Available {
		t.Error("force meditation should be locked below 5 force points")
	}
}

func TestAssaultOptions_Branches(t *testing.T) {
	cat := New()
	l := domain.NewLedger()
	l.DeathStarPlans = true

	opts := cat.OptionsFor(domain.PhaseAssault, l)

	if !opts[0].Available {
		t.Error("precision run should be available with decoded plans")
	}
	if opts[1].Available {
		t.Error("destiny branch should be locked below 20 force points")
	}
	if opts[2].Available {
		t.Error("massive assault should be locked with the starting fleet")
	}
	// Starting fleet of 5 ships qualifies as depleted.
	if !opts[3].Available {
		t.Error("heroic sacrifice should be available with 5 ships")
	}
	if !opts[4].Available {
		t.Error("desperate charge should always be available")
	}

	l.ShipsAvailable = 6
	l.PilotsAvailable = 10
	l.ForcePoints = 20
	opts = cat.OptionsFor(domain.PhaseAssault, l)
	if !opts[1].Available {
		t.Error("destiny branch should unlock at 20 force points")
	}
	if !opts[2].Available {
		t.Error("massive assault should unlock at 6 ships / 10 pilots")
	}
	if opts[3].Available {
		t.Error("heroic sacrifice should lock once the fleet exceeds 5 ships")
	}
}

func TestTemplate_Lookup(t *testing.T) {
	cat := New()

	tpl, ok := cat.Template(domain.PhaseAssault, 4)
	if !ok {
		t.Fatal("expected template for assault option 4")
	}
	if !tpl.Fatal || !tpl.Heroic {
		t.Error("sacrifice template should be fatal and heroic")
	}

	if _, ok := cat.Template(domain.PhaseRescue, 99); ok {
		t.Error("expected no template for unknown option id")
	}
	if _, ok := cat.Template(domain.PhaseComplete, 1); ok {
		t.Error("expected no template for terminal phase")
	}
}

func TestPhaseComplete_Criteria(t *testing.T) {
	cat := New()
	l := domain.NewLedger()

	if cat.PhaseComplete(domain.PhaseRescue, l) {
		t.Error("rescue phase should not complete before Leia is rescued")
	}
	l.LeiaRescued = true
	if !cat.PhaseComplete(domain.PhaseRescue, l) {
		t.Error("rescue phase should complete once Leia is rescued")
	}

	if cat.PhaseComplete(domain.PhasePrepare, l) {
		t.Error("prepare phase should not complete at 0 preparations")
	}
	l.PreparationsMade = 2
	if !cat.PhaseComplete(domain.PhasePrepare, l) {
		t.Error("prepare phase should complete at 2 preparations")
	}

	if !cat.PhaseComplete(domain.PhaseAssault, l) {
		t.Error("every assault option is decisive")
	}
}

func TestDescriptionFor(t *testing.T) {
	cat := New()
	l := domain.NewLedger()
	l.PreparationsMade = 1

	desc := cat.DescriptionFor(domain.PhasePrepare, l)
	if !strings.Contains(desc, "1/2") {
		t.Errorf("prepare description should report preparations, got %q", desc)
	}

	if got := cat.DescriptionFor(domain.PhaseComplete, l); got != "Mission complete." {
		t.Errorf("terminal description = %q", got)
	}
}

func TestAssaultDescription_SuccessProbability(t *testing.T) {
	cat := New()

	// Starting fleet, no plans: base chance only.
	l := domain.NewLedger()
	if desc := cat.DescriptionFor(domain.PhaseAssault, l); !strings.Contains(desc, "Mission Success Probability: 30%") {
		t.Errorf("baseline description = %q", desc)
	}

	// Every bonus met tops out at the 95% cap.
	l.DeathStarPlans = true
	l.ShipsAvailable = 8
	l.PilotsAvailable = 12
	l.Reputation = 70
	if desc := cat.DescriptionFor(domain.PhaseAssault, l); !strings.Contains(desc, "Mission Success Probability: 95%") {
		t.Errorf("maxed description = %q", desc)
	}

	// Plans alone add 30.
	mid := domain.NewLedger()
	mid.DeathStarPlans = true
	if desc := cat.DescriptionFor(domain.PhaseAssault, mid); !strings.Contains(desc, "Mission Success Probability: 60%") {
		t.Errorf("plans-only description = %q", desc)
	}
}

func TestForceMeditation_MentorBranches(t *testing.T) {
	cat := New()
	tpl, ok := cat.Template(domain.PhaseDecode, 2)
	if !ok {
		t.Fatal("expected meditation template")
	}

	withMentor := domain.NewLedger()
	tpl.Apply(&withMentor)
	if withMentor.Reputation != 75 {
		t.Errorf("reputation with mentor = %d, want 75", withMentor.Reputation)
	}
	if withMentor.ForcePoints != 15 {
		t.Errorf("force with mentor = %d, want 15 (spend 5, gain 10)", withMentor.ForcePoints)
	}
	if !strings.Contains(tpl.Result(withMentor), "guides your meditation") {
		t.Errorf("unexpected mentor result: %q", tpl.Result(withMentor))
	}

	without := domain.NewLedger()
	without.MentorAlive = false
	tpl.Apply(&without)
	if without.Reputation != 65 {
		t.Errorf("reputation without mentor = %d, want 65", without.Reputation)
	}
	if without.ForcePoints != 5 {
		t.Errorf("force without mentor = %d, want 5", without.ForcePoints)
	}
	if !strings.Contains(tpl.Result(without), "from beyond") {
		t.Errorf("unexpected fallen-mentor result: %q", tpl.Result(without))
	}
}
