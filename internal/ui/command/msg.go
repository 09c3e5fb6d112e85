package command

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cricsim/auction-tui/internal/auction"
	"github.com/cricsim/auction-tui/internal/cache"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/squad"
	"github.com/cricsim/auction-tui/internal/ui/input"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/xi"
)

func SetViewState(state model.ViewState) tea.Cmd {
	return func() tea.Msg { return state }
}

func SetNextZone(view model.Section, currentZone model.KeyZone, dir input.Direction) tea.Cmd {
	switch view {
	case model.SectionAuction:
		return SetKeyZone(model.AuctionZones.Next(currentZone, dir))
	case model.SectionAnalytics:
		return SetKeyZone(model.AnalyticsZones.Next(currentZone, dir))
	case model.SectionSquad:
		return SetKeyZone(model.SquadZones.Next(currentZone, dir))
	case model.SectionXI:
		return SetKeyZone(model.XIZones.Next(currentZone, dir))
	default:
		return nil
	}
}

func SetKeyZone(zone model.KeyZone) tea.Cmd {
	return func() tea.Msg { return zone }
}

const ClearMessageTimeout = time.Second * 10

type ClearStatusMessageMsg struct{}

func ClearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

// InputActiveMsg is broadcast while a free-form text input owns the keyboard,
// so single-letter global bindings stay out of the way.
type InputActiveMsg bool

func SetInputActive(active bool) tea.Cmd {
	return func() tea.Msg { return InputActiveMsg(active) }
}

type SelectedPlayerMsg struct {
	Player player.Player
}

func SelectPlayer(selected player.Player) func() tea.Msg {
	return func() tea.Msg {
		return SelectedPlayerMsg{Player: selected}
	}
}

type SortMsg[T any] struct {
	SortColumn T
	Asc        bool
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

func SetConfig(config config.Config) tea.Cmd {
	return func() tea.Msg { return config }
}

// ClearSquadMsg empties the curated squad selection, part of the settings
// reset.
type ClearSquadMsg struct{}

func ClearSquad() tea.Cmd {
	return func() tea.Msg { return ClearSquadMsg{} }
}

// FetchStartedMsg tells the status bar that Count background fetches are in
// flight.
type FetchStartedMsg struct {
	Count int
}

func StartFetches(count int) tea.Cmd {
	return func() tea.Msg { return FetchStartedMsg{Count: count} }
}

// HealthMsg carries the latest backend probe results.
type HealthMsg struct {
	AuctionOK bool
	XIOK      bool
}

// PriceTableMsg delivers the auction price table for a season. Cached marks
// payloads restored from the filesystem cache, which pages only accept while
// they hold no live data yet.
type PriceTableMsg struct {
	Gen     model.Generation
	Year    int
	Players []player.Player
	Cached  bool
	Err     error
}

type AnalyticsMsg struct {
	Gen     model.Generation
	Players []player.Player
	Cached  bool
	Err     error
}

type SuggestionMsg struct {
	Gen        model.Generation
	Suggestion auction.Suggestion
	Err        error
}

type PlayerDetailMsg struct {
	Gen    model.Generation
	Detail auction.Detail
	Err    error
}

type XIMsg struct {
	Gen       model.Generation
	Selection xi.Selection
	Err       error
}

// FetchPriceTable retrieves the price table and refreshes the cache copy on
// success.
func FetchPriceTable(client *auction.Client, store cache.Cache, gen model.Generation, year int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultHTTPTimeout)
		defer cancel()

		players, errFetch := client.PriceTable(ctx, year)
		if errFetch != nil {
			return PriceTableMsg{Gen: gen, Year: year, Err: errFetch}
		}

		cachePlayers(store, year, cache.CachePriceTable, players)

		return PriceTableMsg{Gen: gen, Year: year, Players: players}
	}
}

func FetchAnalytics(client *auction.Client, store cache.Cache, gen model.Generation, year int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultHTTPTimeout)
		defer cancel()

		players, errFetch := client.AnalyticsPlayers(ctx)
		if errFetch != nil {
			return AnalyticsMsg{Gen: gen, Err: errFetch}
		}

		cachePlayers(store, year, cache.CacheAnalytics, players)

		return AnalyticsMsg{Gen: gen, Players: players}
	}
}

func FetchSuggestion(client *auction.Client, gen model.Generation, year int, query auction.SquadQuery) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultHTTPTimeout)
		defer cancel()

		suggestion, errFetch := client.SquadSuggestion(ctx, year, query)

		return SuggestionMsg{Gen: gen, Suggestion: suggestion, Err: errFetch}
	}
}

func FetchPlayerDetail(client *auction.Client, gen model.Generation, year int, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultHTTPTimeout)
		defer cancel()

		detail, errFetch := client.PlayerDetail(ctx, year, name)

		return PlayerDetailMsg{Gen: gen, Detail: detail, Err: errFetch}
	}
}

func FetchXI(client *xi.Client, gen model.Generation, request xi.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultHTTPTimeout)
		defer cancel()

		selection, errFetch := client.PredictXI(ctx, request)

		return XIMsg{Gen: gen, Selection: selection, Err: errFetch}
	}
}

// SeedFromCache restores the last successful payloads so the tables are not
// empty while the first live fetch is in flight.
func SeedFromCache(store cache.Cache, year int) tea.Cmd {
	return func() tea.Msg {
		players, ok := cachedPlayers(store, year, cache.CachePriceTable)
		if !ok {
			return nil
		}

		return PriceTableMsg{Year: year, Players: players, Cached: true}
	}
}

func SeedAnalyticsFromCache(store cache.Cache, year int) tea.Cmd {
	return func() tea.Msg {
		players, ok := cachedPlayers(store, year, cache.CacheAnalytics)
		if !ok {
			return nil
		}

		return AnalyticsMsg{Players: players, Cached: true}
	}
}

// SelectionStore is the subset of the persistence layer the UI needs.
type SelectionStore interface {
	SaveSelection(ctx context.Context, players []player.Player) error
}

// PersistSelection writes the current squad selection to the database. Failures
// are logged, never surfaced, so a broken database does not block squad edits.
func PersistSelection(store SelectionStore, players []player.Player) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()

		if err := store.SaveSelection(ctx, players); err != nil {
			slog.Error("Failed to persist squad selection", slog.String("error", err.Error()))
		}

		return nil
	}
}

// ExportPlayersCSV writes the supplied players to the export directory and
// reports the outcome on the status bar.
func ExportPlayersCSV(players []player.Player) tea.Cmd {
	return func() tea.Msg {
		path, errExport := squad.ExportPlayers(config.PathExport(), players)
		if errExport != nil {
			return StatusMsg{Message: errExport.Error(), Err: true}
		}

		return StatusMsg{Message: squad.ExportLabel(path, len(players))}
	}
}

func ExportSelectionCSV(selection *squad.Selection) tea.Cmd {
	return func() tea.Msg {
		path, errExport := squad.ExportSelection(config.PathExport(), selection)
		if errExport != nil {
			return StatusMsg{Message: errExport.Error(), Err: true}
		}

		return StatusMsg{Message: squad.ExportLabel(path, selection.Count())}
	}
}

func cachePlayers(store cache.Cache, year int, variant cache.ItemVariant, players []player.Player) {
	body, errMarshal := json.Marshal(players)
	if errMarshal != nil {
		slog.Error("Failed to encode cache payload", slog.String("error", errMarshal.Error()))

		return
	}

	if err := store.Set(year, variant, body); err != nil {
		slog.Error("Failed to write cache payload", slog.String("error", err.Error()))
	}
}

func cachedPlayers(store cache.Cache, year int, variant cache.ItemVariant) ([]player.Player, bool) {
	body, errGet := store.Get(year, variant)
	if errGet != nil {
		return nil, false
	}

	var players []player.Player
	if err := json.Unmarshal(body, &players); err != nil {
		slog.Error("Discarding unreadable cache payload", slog.String("error", err.Error()))

		return nil, false
	}

	return players, true
}
