// Package catalog defines the immutable phase catalog: the description
// and option set of each campaign phase, with typed requirement
// predicates and effect functions evaluated against a ledger snapshot.
package catalog

import (
	"fmt"

	"github.com/anthropics/rebel-command-engine/internal/domain"
)

// Requirement is an availability predicate over the ledger plus the
// human-readable reason surfaced when it gates an option. Predicates
// never mutate the ledger.
type Requirement struct {
	Label string
	Met   func(l domain.Ledger) bool
}

// Template is the immutable definition of one option. Cost is a credit
// cost (zero means free) debited before Apply runs. Fatal marks
// sacrifice/death branches that end the campaign from any phase;
// Heroic distinguishes the victory-flavored sacrifice. Destiny marks
// the phase 4 force branch for ending classification. Result renders
// the outcome marker from the post-apply ledger; it is nil for
// decisive phase 4 options whose marker comes from the ending
// classifier instead.
type Template struct {
	ID          int
	Text        string
	Description string
	Icon        string
	Cost        int
	Requirement *Requirement
	Fatal       bool
	Heroic      bool
	Destiny     bool
	Apply       func(l *domain.Ledger)
	Result      func(l domain.Ledger) string
}

type phaseDef struct {
	describe func(l domain.Ledger) string
	complete func(l domain.Ledger) bool
	options  []Template
}

// Catalog is the static, read-only lookup shared by all sessions.
type Catalog struct {
	phases map[domain.Phase]*phaseDef
}

// New builds the four-phase campaign catalog.
func New() *Catalog {
	return &Catalog{phases: map[domain.Phase]*phaseDef{
		domain.PhaseRescue:  rescuePhase(),
		domain.PhaseDecode:  decodePhase(),
		domain.PhasePrepare: preparePhase(),
		domain.PhaseAssault: assaultPhase(),
	}}
}

// DescriptionFor returns the narrative description for a phase. Phases
// past the assault report mission completion.
func (c *Catalog) DescriptionFor(phase domain.Phase, l domain.Ledger) string {
	def, ok := c.phases[phase]
	if !ok {
		return "Mission complete."
	}
	return def.describe(l)
}

// OptionsFor returns the phase's options in declaration order, each
// annotated with availability from its requirement predicate. Options
// with unmet requirements are surfaced, not omitted. Terminal phases
// have no options.
func (c *Catalog) OptionsFor(phase domain.Phase, l domain.Ledger) []domain.Option {
	def, ok := c.phases[phase]
	if !ok {
		return nil
	}
	opts := make([]domain.Option, 0, len(def.options))
	for _, t := range def.options {
		o := domain.Option{
			ID:          t.ID,
			Text:        t.Text,
			Description: t.Description,
			Icon:        t.Icon,
			Cost:        t.Cost,
			Available:   true,
		}
		if t.Requirement != nil {
			o.Requirement = t.Requirement.Label
			o.Available = t.Requirement.Met(l)
		}
		opts = append(opts, o)
	}
	return opts
}

// Template returns the option definition for a phase and option id.
func (c *Catalog) Template(phase domain.Phase, id int) (Template, bool) {
	def, ok := c.phases[phase]
	if !ok {
		return Template{}, false
	}
	for _, t := range def.options {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// PhaseComplete reports whether the phase's completion criterion holds
// for the given ledger.
func (c *Catalog) PhaseComplete(phase domain.Phase, l domain.Ledger) bool {
	def, ok := c.phases[phase]
	if !ok {
		return false
	}
	return def.complete(l)
}

// preparationsRequired is how many phase 3 preparations unlock the
// final assault.
const preparationsRequired = 2

func rescuePhase() *phaseDef {
	return &phaseDef{
		describe: func(domain.Ledger) string {
			return "🚀 PHASE 1: RESCUE PRINCESS LEIA\n\nThe Death Star has captured Princess Leia! R2-D2 and C-3PO have escaped with secret plans. You must decide how to rescue the princess..."
		},
		complete: func(l domain.Ledger) bool { return l.LeiaRescued },
		options: []Template{
			{
				ID:          1,
				Text:        "Disguise as Stormtroopers",
				Description: "Risky but stealthy infiltration",
				Icon:        "🎭",
				Requirement: &Requirement{
					Label: "40+ reputation required",
					Met:   func(l domain.Ledger) bool { return l.Reputation >= 40 },
				},
				Apply: func(l *domain.Ledger) {
					l.LeiaRescued = true
					l.MentorAlive = false
					l.GainReputation(20)
					l.ForcePoints += 10
				},
				Result: func(domain.Ledger) string {
					return "✅ Mission success! Princess Leia rescued, but Obi-Wan sacrifices himself..."
				},
			},
			{
				ID:          2,
				Text:        "Hire Han Solo & Chewbacca",
				Description: "Expensive but reliable smugglers",
				Icon:        "💰",
				Cost:        50,
				Apply: func(l *domain.Ledger) {
					l.LeiaRescued = true
					l.ShipsAvailable++
					l.GainReputation(15)
				},
				Result: func(domain.Ledger) string {
					return "✅ Han Solo: 'I've got a bad feeling about this...' Mission successful!"
				},
			},
			{
				ID:          3,
				Text:        "Direct Assault on Death Star",
				Description: "High-risk military operation",
				Icon:        "⚔️",
				Requirement: &Requirement{
					Label: "70+ reputation required",
					Met:   func(l domain.Ledger) bool { return l.Reputation >= 70 },
				},
				Apply: func(l *domain.Ledger) {
					l.LeiaRescued = true
					l.ShipsAvailable -= 2
					l.PilotsAvailable -= 3
					l.GainReputation(30)
				},
				Result: func(domain.Ledger) string {
					return "✅ Massive battle but Leia is rescued! Heavy casualties sustained."
				},
			},
			{
				ID:          4,
				Text:        "Check Mission Intel",
				Description: "Review strategic information",
				Icon:        "📊",
				Apply:       func(*domain.Ledger) {},
				Result: func(domain.Ledger) string {
					return "📊 Intel gathered. Death Star defenses are extremely heavy. Success depends on reputation and strategy."
				},
			},
		},
	}
}

func decodePhase() *phaseDef {
	return &phaseDef{
		describe: func(domain.Ledger) string {
			return "🔍 PHASE 2: DECODE DEATH STAR PLANS\n\nR2-D2 has the complete Death Star technical readouts, but the data is encrypted with Imperial codes..."
		},
		complete: func(l domain.Ledger) bool { return l.DeathStarPlans },
		options: []Template{
			{
				ID:          1,
				Text:        "Use C-3PO's Protocol Skills",
				Description: "Slow but safe decoding method",
				Icon:        "🤖",
				Apply: func(l *domain.Ledger) {
					l.DeathStarPlans = true
					l.GainReputation(10)
				},
				Result: func(domain.Ledger) string {
					return "✅ C-3PO successfully decodes the plans! Weakness discovered: thermal exhaust port!"
				},
			},
			{
				ID:          2,
				Text:        "Force Meditation",
				Description: "Use the Force to understand the plans",
				Icon:        "🧠",
				Requirement: &Requirement{
					Label: "5 Force Points required",
					Met:   func(l domain.Ledger) bool { return l.ForcePoints >= 5 },
				},
				Apply: func(l *domain.Ledger) {
					l.ForcePoints -= 5
					l.DeathStarPlans = true
					if l.MentorAlive {
						l.GainReputation(25)
						l.ForcePoints += 10
					} else {
						l.GainReputation(15)
					}
				},
				Result: func(l domain.Ledger) string {
					if l.MentorAlive {
						return "✅ Obi-Wan guides your meditation! Perfect understanding achieved!"
					}
					return "✅ Obi-Wan's spirit helps from beyond! Plans decoded!"
				},
			},
			{
				ID:          3,
				Text:        "Hire Rebel Technicians",
				Description: "Professional analysis team",
				Icon:        "💻",
				Cost:        30,
				Apply: func(l *domain.Ledger) {
					l.DeathStarPlans = true
					l.ShipsAvailable++
				},
				Result: func(domain.Ledger) string {
					return "✅ Expert analysis complete! Weakness identified and ship upgraded!"
				},
			},
			{
				ID:          4,
				Text:        "Rush the Analysis",
				Description: "Quick but risky decode attempt",
				Icon:        "⏰",
				Requirement: &Requirement{
					Label: "60+ reputation required",
					Met:   func(l domain.Ledger) bool { return l.Reputation >= 60 },
				},
				Apply: func(l *domain.Ledger) {
					l.DeathStarPlans = true
				},
				Result: func(domain.Ledger) string {
					return "✅ Quick but accurate decode! Your reputation attracted the best analysts!"
				},
			},
		},
	}
}

func preparePhase() *phaseDef {
	return &phaseDef{
		describe: func(l domain.Ledger) string {
			return fmt.Sprintf("⚔️ PHASE 3: PREPARE FOR BATTLE\n\nThe Death Star is approaching Yavin 4! You have limited time to prepare the final assault. Choose %d preparations:\n\n📊 Preparations Complete: %d/%d",
				preparationsRequired, l.PreparationsMade, preparationsRequired)
		},
		complete: func(l domain.Ledger) bool { return l.PreparationsMade >= preparationsRequired },
		options: []Template{
			{
				ID:          1,
				Text:        "Train Pilots",
				Description: "Intensive combat training session",
				Icon:        "🎓",
				Apply: func(l *domain.Ledger) {
					l.PilotsAvailable += 2
					l.PreparationsMade++
				},
				Result: func(l domain.Ledger) string {
					return fmt.Sprintf("✅ Pilot training complete! +2 experienced pilots gained. (Preparation %d/%d)", l.PreparationsMade, preparationsRequired)
				},
			},
			{
				ID:          2,
				Text:        "Upgrade Ships",
				Description: "Enhance weapons and shields",
				Icon:        "🔧",
				Cost:        40,
				Apply: func(l *domain.Ledger) {
					l.ShipsAvailable++
					l.PreparationsMade++
				},
				Result: func(l domain.Ledger) string {
					return fmt.Sprintf("✅ Ship upgrades complete! Fleet effectiveness increased. (Preparation %d/%d)", l.PreparationsMade, preparationsRequired)
				},
			},
			{
				ID:          3,
				Text:        "Recruit Volunteers",
				Description: "Find brave pilots to join",
				Icon:        "👥",
				Apply: func(l *domain.Ledger) {
					if l.Reputation >= 50 {
						l.PilotsAvailable += 3
					} else {
						l.PilotsAvailable++
					}
					l.PreparationsMade++
				},
				Result: func(l domain.Ledger) string {
					return fmt.Sprintf("✅ Volunteers recruited! (Preparation %d/%d)", l.PreparationsMade, preparationsRequired)
				},
			},
			{
				ID:          4,
				Text:        "Force Training",
				Description: "Meditation and spiritual preparation",
				Icon:        "🧘",
				Apply: func(l *domain.Ledger) {
					l.ForcePoints += 15
					if l.MentorAlive {
						l.ForcePoints += 10
					}
					l.PreparationsMade++
				},
				Result: func(l domain.Ledger) string {
					return fmt.Sprintf("✅ Force training complete! (Preparation %d/%d)", l.PreparationsMade, preparationsRequired)
				},
			},
			{
				ID:          5,
				Text:        "Review Strategy",
				Description: "Check current battle readiness",
				Icon:        "📋",
				Apply:       func(*domain.Ledger) {},
				Result: func(l domain.Ledger) string {
					plans := "Incomplete"
					if l.DeathStarPlans {
						plans = "Complete"
					}
					return fmt.Sprintf("📋 Battle Readiness: %d ships, %d pilots, Plans: %s, Reputation: %d/%d, Force: %d points, Preparations: %d/%d",
						l.ShipsAvailable, l.PilotsAvailable, plans,
						l.Reputation, domain.MaxReputation, l.ForcePoints,
						l.PreparationsMade, preparationsRequired)
				},
			},
		},
	}
}

// Thresholds for the decisive phase 4 branches.
const (
	destinyForceCost   = 20
	assaultMinShips    = 6
	assaultMinPilots   = 10
	sacrificeMaxShips  = 5
	assaultPilotLosses = 5
	assaultShipLosses  = 3
)

// successChance renders the briefing's probability line. Pure display:
// resolution is deterministic and never rolls against it.
func successChance(l domain.Ledger) int {
	chance := 30
	if l.DeathStarPlans {
		chance += 30
	}
	if l.ShipsAvailable >= 8 {
		chance += 20
	}
	if l.PilotsAvailable >= 12 {
		chance += 15
	}
	if l.Reputation >= 70 {
		chance += 20
	}
	if chance > 95 {
		chance = 95
	}
	return chance
}

func assaultPhase() *phaseDef {
	return &phaseDef{
		describe: func(l domain.Ledger) string {
			return fmt.Sprintf("💥 PHASE 4: DEATH STAR ASSAULT\n\nRed Squadron launches for the final battle! The fate of the rebellion rests in your hands...\n\n📊 Mission Success Probability: %d%%", successChance(l))
		},
		// Every assault option is decisive.
		complete: func(domain.Ledger) bool { return true },
		options: []Template{
			{
				ID:          1,
				Text:        "Precision Targeting Run",
				Description: "Follow Death Star plans exactly",
				Icon:        "🎯",
				Requirement: &Requirement{
					Label: "Complete Death Star plans required",
					Met:   func(l domain.Ledger) bool { return l.DeathStarPlans },
				},
				Apply: func(l *domain.Ledger) {
					l.GainReputation(50)
				},
			},
			{
				ID:          2,
				Text:        "Trust in the Force",
				Description: "Use the Force for the impossible shot",
				Icon:        "✨",
				Destiny:     true,
				Requirement: &Requirement{
					Label: "20 Force Points required",
					Met:   func(l domain.Ledger) bool { return l.ForcePoints >= destinyForceCost },
				},
				Apply: func(l *domain.Ledger) {
					l.ForcePoints -= destinyForceCost
					l.GainReputation(75)
				},
			},
			{
				ID:          3,
				Text:        "Massive Coordinated Assault",
				Description: "Launch all available fighters",
				Icon:        "🚀",
				Requirement: &Requirement{
					Label: "6+ ships and 10+ pilots required",
					Met: func(l domain.Ledger) bool {
						return l.ShipsAvailable >= assaultMinShips && l.PilotsAvailable >= assaultMinPilots
					},
				},
				Apply: func(l *domain.Ledger) {
					l.PilotsAvailable -= assaultPilotLosses
					l.ShipsAvailable -= assaultShipLosses
				},
			},
			{
				ID:          4,
				Text:        "Heroic Sacrifice",
				Description: "Fly your own ship into the reactor core",
				Icon:        "🕯️",
				Fatal:       true,
				Heroic:      true,
				Requirement: &Requirement{
					Label: "Depleted fleet (5 or fewer ships) required",
					Met:   func(l domain.Ledger) bool { return l.ShipsAvailable <= sacrificeMaxShips },
				},
				Apply: func(*domain.Ledger) {},
			},
			{
				ID:          5,
				Text:        "Desperate Frontal Charge",
				Description: "All-or-nothing attack without a plan",
				Icon:        "🎲",
				Fatal:       true,
				Apply:       func(*domain.Ledger) {},
			},
		},
	}
}
