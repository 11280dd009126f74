package campaign

import (
	"github.com/anthropics/rebel-command-engine/internal/catalog"
	"github.com/anthropics/rebel-command-engine/internal/domain"
)

// Classify selects the ending for a concluded campaign from the final
// decisive option and the final ledger. Precedence is significant:
// heroic sacrifice outranks every other death, the force destiny branch
// outranks resource-based classification, and a flawless campaign
// outranks one with material losses.
func Classify(final catalog.Template, l domain.Ledger) domain.Outcome {
	switch {
	case final.Fatal && final.Heroic:
		return domain.OutcomeHeroicSacrifice
	case final.Fatal:
		return domain.OutcomeDefeat
	case final.Destiny:
		return domain.OutcomeLegendary
	case l.LeiaRescued && l.DeathStarPlans && l.MentorAlive &&
		l.PilotsAvailable >= domain.StartingPilots &&
		l.ShipsAvailable >= domain.StartingShips:
		return domain.OutcomePerfect
	case l.PilotsAvailable < domain.StartingPilots || l.ShipsAvailable < domain.StartingShips:
		return domain.OutcomeCostly
	default:
		return domain.OutcomeVictory
	}
}

// endingTexts maps each outcome tag to its fixed display string. The
// presentation layer consumes the string; the engine never parses it
// back.
var endingTexts = map[domain.Outcome]string{
	domain.OutcomeHeroicSacrifice: "🏆 HEROIC SACRIFICE! Your final run destroys the Death Star! You die a hero!",
	domain.OutcomeDefeat:          "💀 DEFEAT! The desperate attack fails! The Empire wins!",
	domain.OutcomeLegendary:       "🌟 LEGENDARY FORCE VICTORY! The Force guides your shot perfectly! You are now a true Jedi!",
	domain.OutcomePerfect:         "🌟 PERFECT VICTORY! Direct hit on the exhaust port! The Death Star explodes!",
	domain.OutcomeCostly:          "⚔️ COSTLY VICTORY! The Death Star falls, but many brave pilots were lost...",
	domain.OutcomeVictory:         "🎉 VICTORY! The Death Star has been destroyed! The Rebellion lives on!",
}

// EndingText returns the display string for an outcome tag.
func EndingText(o domain.Outcome) string {
	return endingTexts[o]
}
