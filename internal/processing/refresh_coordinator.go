package processing

import (
	"context"
	"errors"
	"sync/atomic"

	"clashberry/internal/clash"
	"clashberry/internal/domain/war"

	"github.com/rs/zerolog/log"
)

// RefreshStatus is the outcome of a refresh
type RefreshStatus int

const (
	// StatusWar means a new war model was installed
	StatusWar RefreshStatus = iota

	// StatusNoWar means the clan is not in a war; this is not a failure
	StatusNoWar

	// StatusFailed means the fetch failed; Err says why
	StatusFailed
)

func (s RefreshStatus) String() string {
	switch s {
	case StatusWar:
		return "War"
	case StatusNoWar:
		return "NoWar"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// RefreshResult is the tagged result of RefreshCoordinator.Refresh.
// War is set only for StatusWar; Err is set only for StatusFailed.
type RefreshResult struct {
	Status  RefreshStatus
	ClanTag string
	War     *war.Data
	Err     *clash.FetchError
}

// MessageKey returns the stable display message key of a non-war result,
// or "" when a war was installed
func (r RefreshResult) MessageKey() string {
	switch r.Status {
	case StatusNoWar:
		return clash.KindNoWar.MessageKey()
	case StatusFailed:
		if r.Err != nil {
			return r.Err.Kind.MessageKey()
		}
		return clash.KindTransport.MessageKey()
	default:
		return ""
	}
}

// RefreshCoordinator fetches war data and installs it as the current model.
// A refresh is all-or-nothing: the installed model only changes after a
// response has been fully decoded and validated. Concurrent refreshes are
// independent and the last successful one wins.
type RefreshCoordinator struct {
	client  WarClientInterface
	current atomic.Pointer[war.Data]
}

// NewRefreshCoordinator creates a coordinator with no installed model
func NewRefreshCoordinator(client WarClientInterface) *RefreshCoordinator {
	return &RefreshCoordinator{client: client}
}

// Current returns the most recently installed model, or nil
func (rc *RefreshCoordinator) Current() *war.Data {
	return rc.current.Load()
}

// Refresh fetches the war for clanTag exactly once and reports the outcome
func (rc *RefreshCoordinator) Refresh(ctx context.Context, clanTag string) RefreshResult {
	tag := clash.FormatClanTag(clanTag)
	result := RefreshResult{ClanTag: tag}

	resp, err := rc.client.GetWarData(ctx, tag)
	if err != nil {
		fetchErr := asFetchError(err)
		if fetchErr.Kind == clash.KindNoWar {
			log.Info().Str("clan_tag", tag).Msg("Clan is not in war")
			result.Status = StatusNoWar
			return result
		}

		logEvent := log.Error()
		if fetchErr.Kind == clash.KindAccessDenied || fetchErr.Kind == clash.KindNotFound {
			logEvent = log.Warn()
		}
		logEvent.
			Err(err).
			Str("clan_tag", tag).
			Str("kind", fetchErr.Kind.String()).
			Int("status", fetchErr.StatusCode).
			Msg("War refresh failed")

		result.Status = StatusFailed
		result.Err = fetchErr
		return result
	}

	data, err := war.NewData(resp)
	if errors.Is(err, war.ErrNotInWar) {
		log.Info().Str("clan_tag", tag).Msg("Clan is not in war")
		result.Status = StatusNoWar
		return result
	}
	if err != nil {
		log.Error().
			Err(err).
			Str("clan_tag", tag).
			Msg("War response failed validation")
		result.Status = StatusFailed
		result.Err = &clash.FetchError{Kind: clash.KindParse, Err: err}
		return result
	}

	rc.current.Store(data)

	log.Debug().
		Str("clan_tag", tag).
		Str("opponent", data.Opponent.Tag).
		Str("state", data.State.String()).
		Str("war_type", data.Type.String()).
		Msg("Installed new war data")

	result.Status = StatusWar
	result.War = data
	return result
}

// asFetchError returns the *clash.FetchError in err's chain, treating any
// other error as a transport failure
func asFetchError(err error) *clash.FetchError {
	var fetchErr *clash.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr
	}
	return &clash.FetchError{Kind: clash.KindTransport, Err: err}
}
