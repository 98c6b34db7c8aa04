package processing

import (
	"context"

	"clashberry/internal/domain/activity"
	"clashberry/internal/domain/selection"
	"clashberry/internal/domain/war"

	"github.com/rs/zerolog/log"
)

// ActivityView is everything a renderer needs for the activity tab
type ActivityView struct {
	Selection  selection.State
	Label      string
	StatusLine string
	Clan       *war.Clan
	Members    []war.Member
}

// Renderer receives each recomputed view
type Renderer func(ActivityView)

// ActivityPresenter recomputes the activity view whenever new war data is
// installed or the selection changes, and hands it to the renderer. The
// renderer is called synchronously and may change the selection.
type ActivityPresenter struct {
	source      WarSourceInterface
	machine     *selection.Machine
	render      Renderer
	unsubscribe func()
}

// NewActivityPresenter subscribes to machine; call Close to detach
func NewActivityPresenter(source WarSourceInterface, machine *selection.Machine, render Renderer) *ActivityPresenter {
	p := &ActivityPresenter{
		source:  source,
		machine: machine,
		render:  render,
	}
	p.unsubscribe = machine.Subscribe(p.onSelectionChanged)
	return p
}

// Close stops reacting to selection changes
func (p *ActivityPresenter) Close() {
	p.unsubscribe()
}

// Refresh fetches new war data and renders it for the current selection.
// Any other outcome leaves the last rendered view in place.
func (p *ActivityPresenter) Refresh(ctx context.Context, clanTag string) RefreshResult {
	result := p.source.Refresh(ctx, clanTag)
	if result.Status != StatusWar {
		return result
	}
	// A concurrent refresh may have installed a newer model since ours
	if data := p.source.Current(); data != nil {
		p.emit(buildView(data, p.machine.State()))
	}
	return result
}

// View returns the view for the installed model and current selection.
// The boolean is false when no war has been installed yet.
func (p *ActivityPresenter) View() (ActivityView, bool) {
	data := p.source.Current()
	if data == nil {
		return ActivityView{}, false
	}
	return buildView(data, p.machine.State()), true
}

func (p *ActivityPresenter) onSelectionChanged(state selection.State) {
	data := p.source.Current()
	if data == nil {
		log.Debug().
			Str("sub_tab", state.SubTab.String()).
			Str("clan_side", state.ClanSide.String()).
			Msg("Selection changed before any war data was installed")
		return
	}
	p.emit(buildView(data, state))
}

func (p *ActivityPresenter) emit(view ActivityView) {
	if p.render == nil {
		return
	}
	p.render(view)
}

// buildView classifies the selected roster
// Pure function: No I/O, deterministic output from input
func buildView(data *war.Data, state selection.State) ActivityView {
	clan := activity.SideOf(data, state.ClanSide)
	return ActivityView{
		Selection:  state,
		Label:      activity.Label(state.SubTab, data.State),
		StatusLine: data.StatusLine(),
		Clan:       clan,
		Members:    activity.Classify(clan, data.Type, data.State, state.SubTab),
	}
}
