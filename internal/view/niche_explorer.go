package view

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/novraux/novraux-desk/internal/api"
	"github.com/novraux/novraux-desk/internal/model"
)

// Fallback texts for application failures reported without a message
const (
	msgNoNicheData      = "No data found for this niche."
	msgAnalysisFailed   = "Niche analysis failed."
	msgBriefFailed      = "Design brief generation failed."
	msgListingFailed    = "Listing copy generation failed."
	msgMockupFailed     = "Mockup generation failed."
	msgVariationsFailed = "Variation generation failed."
)

// DesignWork is what was generated for one design idea in this session
type DesignWork struct {
	Brief      *model.BriefResult
	Listing    *model.ListingUpdate
	Mockup     *model.MockupResult
	Variations *model.VariationsResult
	InVault    bool   // set once the backend accepted the save
	SavedID    int    // vault id, 0 when the backend did not return one
	Busy       string // action in flight, empty when idle
	Err        error  // failure of the last action
}

// Saved reports whether the idea is in the vault
func (w DesignWork) Saved() bool {
	return w.InVault
}

// Design actions
const (
	ActionBrief      = "brief"
	ActionListing    = "listing"
	ActionMockup     = "mockup"
	ActionVariations = "variations"
	ActionSave       = "save"
)

// NicheExplorer is the state of the Niche Explorer page
type NicheExplorer struct {
	backend    ResearchBackend
	validation *Resource[model.NicheValidation]
	analysis   *Resource[model.NicheAnalysis]
	gap        *Resource[model.GapAnalysis]

	mu       sync.Mutex
	keyword  string
	style    string
	work     map[string]*DesignWork
	onChange func()
}

// NewNicheExplorer creates the explorer
func NewNicheExplorer(backend ResearchBackend, style string) *NicheExplorer {
	e := &NicheExplorer{
		backend:    backend,
		validation: NewResource[model.NicheValidation](),
		analysis:   NewResource[model.NicheAnalysis](),
		gap:        NewResource[model.GapAnalysis](),
		style:      style,
		work:       make(map[string]*DesignWork),
	}
	e.validation.SetChangeCallback(func(Snapshot[model.NicheValidation]) { e.changed() })
	e.analysis.SetChangeCallback(func(Snapshot[model.NicheAnalysis]) { e.changed() })
	e.gap.SetChangeCallback(func(Snapshot[model.GapAnalysis]) { e.changed() })
	return e
}

// SetChangeCallback sets the callback run on any state change
func (e *NicheExplorer) SetChangeCallback(callback func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = callback
}

func (e *NicheExplorer) changed() {
	e.mu.Lock()
	onChange := e.onChange
	e.mu.Unlock()
	if onChange != nil {
		onChange()
	}
}

// Keyword returns the niche of the last search
func (e *NicheExplorer) Keyword() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.keyword
}

// SetStyle sets the style preference sent to the generators
func (e *NicheExplorer) SetStyle(style string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.style = style
}

// Style returns the style preference
func (e *NicheExplorer) Style() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.style
}

// Validation returns the search result state
func (e *NicheExplorer) Validation() Snapshot[model.NicheValidation] {
	return e.validation.Snapshot()
}

// Analysis returns the POD analysis state
func (e *NicheExplorer) Analysis() Snapshot[model.NicheAnalysis] {
	return e.analysis.Snapshot()
}

// Gap returns the gap report state
func (e *NicheExplorer) Gap() Snapshot[model.GapAnalysis] {
	return e.gap.Snapshot()
}

// Activate consumes the seed left for the explorer and searches it. It
// reports whether a seed was found.
func (e *NicheExplorer) Activate(ctx context.Context, nav *Navigator) (string, bool, error) {
	seed, ok := nav.TakeSeed(PageExplorer)
	if !ok {
		return "", false, nil
	}
	return seed, true, e.Search(ctx, seed)
}

// Search validates keyword across marketplaces. Results of the previous
// search are dropped first. An empty keyword does nothing.
func (e *NicheExplorer) Search(ctx context.Context, keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}

	e.mu.Lock()
	e.keyword = keyword
	e.work = make(map[string]*DesignWork)
	e.mu.Unlock()
	e.analysis.Clear()
	e.gap.Clear()

	return e.validation.Load(ctx, func(ctx context.Context) (model.NicheValidation, error) {
		result, err := e.backend.ExploreNiche(ctx, keyword)
		if err != nil {
			return model.NicheValidation{}, err
		}
		if !result.Success {
			return model.NicheValidation{}, newAppError(result.Message, msgNoNicheData)
		}
		return result, nil
	})
}

// Analyze runs the POD analysis of the current niche with design ideas
func (e *NicheExplorer) Analyze(ctx context.Context) error {
	niche, style := e.Keyword(), e.Style()
	if niche == "" {
		return nil
	}
	return e.analysis.Load(ctx, func(ctx context.Context) (model.NicheAnalysis, error) {
		result, err := e.backend.AnalyzeNiche(ctx, api.AnalyzeParams{
			Niche:           niche,
			GenerateDesigns: true,
			StylePreference: style,
		})
		if err != nil {
			return model.NicheAnalysis{}, err
		}
		if !result.Success || result.ErrorMessage() != "" {
			return model.NicheAnalysis{}, newAppError(result.ErrorMessage(), msgAnalysisFailed)
		}
		return result, nil
	})
}

// GapReport fetches the competitor gap report of the current niche
func (e *NicheExplorer) GapReport(ctx context.Context, platform string) error {
	niche := e.Keyword()
	if niche == "" {
		return nil
	}
	return e.gap.Load(ctx, func(ctx context.Context) (model.GapAnalysis, error) {
		return e.backend.GapAnalysis(ctx, niche, platform)
	})
}

// Work returns what was generated for idea so far
func (e *NicheExplorer) Work(idea model.DesignIdea) DesignWork {
	e.mu.Lock()
	defer e.mu.Unlock()
	if w, ok := e.work[e.keyLocked(idea)]; ok {
		return *w
	}
	return DesignWork{}
}

// IsSaved reports whether idea was saved to the vault in this session
func (e *NicheExplorer) IsSaved(idea model.DesignIdea) bool {
	return e.Work(idea).Saved()
}

func (e *NicheExplorer) keyLocked(idea model.DesignIdea) string {
	return model.DesignKey(e.keyword, idea.Title)
}

func (e *NicheExplorer) workLocked(key string) *DesignWork {
	w, ok := e.work[key]
	if !ok {
		w = &DesignWork{}
		e.work[key] = w
	}
	return w
}

// begin marks action as running for idea. It returns nil when another
// action of the idea is still running, or when skip rejects the work.
func (e *NicheExplorer) begin(idea model.DesignIdea, action string, skip func(DesignWork) bool) (*DesignWork, DesignWork, string, string) {
	e.mu.Lock()
	w := e.workLocked(e.keyLocked(idea))
	if w.Busy != "" || (skip != nil && skip(*w)) {
		e.mu.Unlock()
		return nil, DesignWork{}, "", ""
	}
	w.Busy = action
	w.Err = nil
	current, niche, style := *w, e.keyword, e.style
	e.mu.Unlock()
	e.changed()
	return w, current, niche, style
}

// end applies the outcome of an action started by begin. Work replaced by
// a newer search is left alone.
func (e *NicheExplorer) end(w *DesignWork, err error, apply func(w *DesignWork)) {
	e.mu.Lock()
	if !e.ownsLocked(w) {
		e.mu.Unlock()
		return
	}
	w.Busy = ""
	w.Err = err
	if err == nil && apply != nil {
		apply(w)
	}
	e.mu.Unlock()
	e.changed()
}

func (e *NicheExplorer) ownsLocked(w *DesignWork) bool {
	for _, cur := range e.work {
		if cur == w {
			return true
		}
	}
	return false
}

// Brief generates the designer brief of idea
func (e *NicheExplorer) Brief(ctx context.Context, idea model.DesignIdea) error {
	w, _, niche, style := e.begin(idea, ActionBrief, nil)
	if w == nil {
		return nil
	}
	result, err := e.backend.DesignBrief(ctx, api.BriefParams{
		Niche:           niche,
		DesignTitle:     idea.Title,
		DesignConcept:   idea.Concept,
		StylePreference: style,
	})
	if err == nil && !result.Success {
		err = newAppError(result.Error, msgBriefFailed)
	}
	e.end(w, err, func(w *DesignWork) { w.Brief = &result })
	return err
}

// Listing generates listing copy for idea. When the idea is already in the
// vault the copy is attached to the saved design as well.
func (e *NicheExplorer) Listing(ctx context.Context, idea model.DesignIdea) error {
	w, current, niche, _ := e.begin(idea, ActionListing, nil)
	if w == nil {
		return nil
	}
	result, err := e.backend.ListingCopy(ctx, api.ListingParams{
		Niche:       niche,
		DesignTitle: idea.Title,
		DesignText:  idea.DesignText,
	})
	if err == nil && !result.Success {
		err = newAppError(result.Error, msgListingFailed)
	}
	if err != nil {
		e.end(w, err, nil)
		return err
	}

	update := result.ListingUpdate()
	savedID := current.SavedID
	var attachErr error
	if savedID != 0 && !update.IsEmpty() {
		if _, attachErr = e.backend.UpdateDesignListing(ctx, savedID, update); attachErr != nil {
			log.Printf("Attaching listing to design %d failed: %v", savedID, attachErr)
		}
	}
	e.end(w, nil, func(w *DesignWork) {
		w.Listing = &update
		w.Err = attachErr
	})
	return attachErr
}

// Mockup renders a mockup of idea. A fallback image still counts as a result.
func (e *NicheExplorer) Mockup(ctx context.Context, idea model.DesignIdea) error {
	w, _, niche, style := e.begin(idea, ActionMockup, nil)
	if w == nil {
		return nil
	}
	result, err := e.backend.DesignMockup(ctx, api.MockupParams{
		Niche:           niche,
		DesignTitle:     idea.Title,
		DesignConcept:   idea.Concept,
		DesignText:      idea.DesignText,
		ProductType:     idea.Product,
		StylePreference: style,
	})
	if err == nil && !result.Success && result.DisplayURL() == "" {
		err = newAppError(result.Error, msgMockupFailed)
	}
	e.end(w, err, func(w *DesignWork) { w.Mockup = &result })
	return err
}

// Variations renders idea on several product types
func (e *NicheExplorer) Variations(ctx context.Context, idea model.DesignIdea, count int) error {
	w, _, niche, style := e.begin(idea, ActionVariations, nil)
	if w == nil {
		return nil
	}
	result, err := e.backend.DesignVariations(ctx, api.VariationParams{
		Niche:           niche,
		DesignTitle:     idea.Title,
		DesignConcept:   idea.Concept,
		NumVariations:   count,
		StylePreference: style,
	})
	if err == nil && !result.Success {
		err = newAppError(result.Error, msgVariationsFailed)
	}
	e.end(w, err, func(w *DesignWork) { w.Variations = &result })
	return err
}

// SaveToVault stores idea in the vault. An idea already saved, or being
// saved, in this session is not sent again; saved is false then.
func (e *NicheExplorer) SaveToVault(ctx context.Context, idea model.DesignIdea) (saved bool, err error) {
	w, current, niche, style := e.begin(idea, ActionSave, DesignWork.Saved)
	if w == nil {
		return false, nil
	}

	mockupURL := ""
	if current.Mockup != nil {
		mockupURL = current.Mockup.DisplayURL()
	}
	design, err := e.backend.SaveDesign(ctx, model.NewSaveDesignRequest(niche, style, idea, mockupURL))
	if err != nil {
		e.end(w, err, nil)
		return false, err
	}

	var attachErr error
	if design.ID == 0 {
		log.Printf("Saved design %q came back without an id", idea.Title)
	} else if current.Listing != nil && !current.Listing.IsEmpty() {
		if _, attachErr = e.backend.UpdateDesignListing(ctx, design.ID, *current.Listing); attachErr != nil {
			log.Printf("Attaching listing to design %d failed: %v", design.ID, attachErr)
			attachErr = fmt.Errorf("saved without listing copy: %w", attachErr)
		}
	}
	e.end(w, nil, func(w *DesignWork) {
		w.InVault = true
		w.SavedID = design.ID
		w.Err = attachErr
	})
	return true, attachErr
}
