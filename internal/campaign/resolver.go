// Package campaign implements the choice resolution state machine and
// the ending classifier for the four-phase campaign.
package campaign

import (
	"fmt"

	"github.com/anthropics/rebel-command-engine/internal/catalog"
	"github.com/anthropics/rebel-command-engine/internal/domain"
)

// Resolver applies player choices to a session: it validates the chosen
// option against the currently offered set, debits cost, applies the
// effects atomically, advances the phase on completion, and classifies
// the ending when the campaign concludes. The caller serializes access
// to the session.
type Resolver struct {
	Catalog *catalog.Catalog
}

// NewResolver creates a Resolver backed by the given catalog.
func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{Catalog: cat}
}

// Seed initializes a fresh session's options and phase description
// state for phase 1.
func (r *Resolver) Seed(sess *domain.Session) {
	sess.Phase = domain.PhaseRescue
	sess.Ledger = domain.NewLedger()
	sess.Options = r.Catalog.OptionsFor(sess.Phase, sess.Ledger)
}

// Apply runs one choice against the session. Rejections (unknown or
// unavailable option, insufficient credits) leave the session
// untouched; the session stays playable. Terminal is absorbing: a
// concluded session always rejects with ErrGameAlreadyOver.
func (r *Resolver) Apply(sess *domain.Session, optionID int) error {
	if sess.GameOver {
		return domain.ErrGameAlreadyOver
	}

	var chosen *domain.Option
	for i := range sess.Options {
		if sess.Options[i].ID == optionID {
			chosen = &sess.Options[i]
			break
		}
	}
	if chosen == nil {
		return domain.NewEngineError(
			domain.ErrInvalidChoice.Code,
			fmt.Sprintf("option %d is not offered in phase %d", optionID, sess.Phase),
		)
	}
	if !chosen.Available {
		return domain.NewEngineError(
			domain.ErrInvalidChoice.Code,
			fmt.Sprintf("option %d is not available: %s", optionID, chosen.Requirement),
		)
	}

	tpl, ok := r.Catalog.Template(sess.Phase, optionID)
	if !ok {
		// The offered set is recomputed from the catalog, so this can
		// only happen on a catalog authoring defect.
		return domain.ErrCatalogMismatch
	}

	if tpl.Cost > 0 && sess.Ledger.Credits < tpl.Cost {
		return domain.ErrInsufficientCredits
	}

	// Apply cost and effects on a scratch copy so an invariant
	// violation aborts this request without corrupting the session.
	next := sess.Ledger
	if tpl.Cost > 0 {
		next.Credits -= tpl.Cost
	}
	tpl.Apply(&next)
	if err := next.Validate(); err != nil {
		return domain.WrapEngineError(domain.ErrLedgerInvariant.Code,
			fmt.Sprintf("phase %d option %d", sess.Phase, optionID), err)
	}

	sess.Ledger = next
	if tpl.Result != nil {
		sess.LastResult = tpl.Result(next)
	}

	if tpl.Fatal {
		r.conclude(sess, tpl)
		return nil
	}

	if r.Catalog.PhaseComplete(sess.Phase, sess.Ledger) {
		sess.Phase++
		if sess.Phase > domain.PhaseAssault {
			r.conclude(sess, tpl)
			return nil
		}
	}

	sess.Options = r.Catalog.OptionsFor(sess.Phase, sess.Ledger)
	return nil
}

// conclude marks the session over and runs the ending classifier once.
func (r *Resolver) conclude(sess *domain.Session, final catalog.Template) {
	sess.GameOver = true
	sess.Options = nil
	sess.Outcome = Classify(final, sess.Ledger)
	sess.LastResult = EndingText(sess.Outcome)
}
