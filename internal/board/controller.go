package board

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/standupboard/internal/api"
	"github.com/dmitrijs2005/standupboard/internal/logging"
	"github.com/dmitrijs2005/standupboard/internal/models"
)

// State is the controller's lifecycle phase.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Controller holds the card set of one board for one date window.
//
// A failed operation leaves the previously loaded data intact; the
// caller gets the error and the state returns to ready, never sticking
// in loading.
type Controller struct {
	client  api.Client
	log     logging.Logger
	boardID int64

	mu     sync.Mutex
	state  State
	data   models.BoardData
	window models.DateRange
	seq    int64
}

func NewController(boardID int64, client api.Client, log logging.Logger) *Controller {
	return &Controller{
		client:  client,
		log:     log,
		boardID: boardID,
		state:   StateIdle,
	}
}

// BoardID returns the board this controller serves.
func (c *Controller) BoardID() int64 { return c.boardID }

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Data returns the last successfully loaded card set. Callers must not
// mutate the returned slices.
func (c *Controller) Data() models.BoardData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

// Window returns the date range of the last load.
func (c *Controller) Window() models.DateRange {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window
}

// effectiveWindow widens r to the default "one year ago through now"
// when an end is unset, and normalizes the ends to whole days.
func effectiveWindow(r models.DateRange, now time.Time) (time.Time, time.Time) {
	from := r.From
	if from.IsZero() {
		from = now.AddDate(-1, 0, 0)
	}
	to := r.To
	if to.IsZero() {
		to = now
	}
	return startOfDay(from), endOfDay(to)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Load fetches the card set for the window and replaces local state
// wholesale. Each call supersedes any load still in flight: a response
// arriving for an older sequence number is discarded, so rapid window
// changes cannot leave stale data on screen.
func (c *Controller) Load(ctx context.Context, r models.DateRange) error {
	from, to := effectiveWindow(r, time.Now())

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state = StateLoading
	c.mu.Unlock()

	data, err := c.client.GetCards(ctx, c.boardID, from, to)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		c.log.Debug(ctx, "discarding superseded load",
			"board_id", c.boardID, "seq", seq, "latest", c.seq)
		return nil
	}
	c.state = StateReady
	if err != nil {
		c.log.Error(ctx, "loading cards failed", "board_id", c.boardID, "error", err)
		return err
	}
	c.data = data
	c.window = r
	return nil
}

// CardDraft is one card to be created; drafts with a blank title are
// skipped.
type CardDraft struct {
	Title       string
	Description string
}

// Drafts holds new cards per column for a bulk add.
type Drafts struct {
	Done     []CardDraft
	Planned  []CardDraft
	Blockers []CardDraft
}

// AddCards creates every titled draft, one create call per card, issued
// concurrently, then reloads the current window so the local view shows
// what the server actually assigned (ids, authors, creation dates).
//
// The operation is not atomic: when one create fails the aggregate
// fails, but cards created before the failure stay persisted server-side
// and appear on the next load.
func (c *Controller) AddCards(ctx context.Context, drafts Drafts, actingUser *models.User) error {
	if actingUser == nil {
		return fmt.Errorf("no acting user")
	}

	g, gctx := errgroup.WithContext(ctx)
	submit := func(t models.CardType, ds []CardDraft) {
		for _, d := range ds {
			if strings.TrimSpace(d.Title) == "" {
				continue
			}
			req := api.CreateCardRequest{
				Title:       d.Title,
				Description: d.Description,
				Type:        t,
				Resolved:    false,
			}
			g.Go(func() error {
				_, err := c.client.CreateCard(gctx, req)
				return err
			})
		}
	}
	submit(models.CardTypeCompleted, drafts.Done)
	submit(models.CardTypePlanned, drafts.Planned)
	submit(models.CardTypeBlocker, drafts.Blockers)

	if err := g.Wait(); err != nil {
		c.log.Error(ctx, "bulk card creation failed",
			"board_id", c.boardID, "user", actingUser.Name, "error", err)
		return fmt.Errorf("adding cards: %w", err)
	}
	return c.Load(ctx, c.Window())
}

// EditCard updates a card and patches the matching local card with the
// server-returned entity. The local copy is untouched when the update
// fails.
func (c *Controller) EditCard(ctx context.Context, category models.CardType, cardID int64, upd api.UpdateCardRequest) error {
	card, err := c.client.UpdateCard(ctx, cardID, upd)
	if err != nil {
		c.log.Error(ctx, "card update failed", "card_id", cardID, "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	bucket := c.bucket(category)
	for i := range bucket {
		if bucket[i].ID == cardID {
			bucket[i] = *card
			return nil
		}
	}
	c.log.Warn(ctx, "updated card not present locally", "card_id", cardID)
	return nil
}

// DeleteCard deletes a card and removes it from local state by id.
func (c *Controller) DeleteCard(ctx context.Context, category models.CardType, cardID int64) error {
	if err := c.client.DeleteCard(ctx, cardID); err != nil {
		c.log.Error(ctx, "card deletion failed", "card_id", cardID, "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	bucket := c.bucket(category)
	for i := range bucket {
		if bucket[i].ID == cardID {
			c.setBucket(category, append(bucket[:i:i], bucket[i+1:]...))
			break
		}
	}
	return nil
}

// ToggleResolved flips the resolved flag of a blocker. Cards outside the
// blockers column never carry the flag, so only that bucket is searched;
// an id that is not found (e.g. already deleted) is a no-op.
func (c *Controller) ToggleResolved(ctx context.Context, cardID int64) error {
	c.mu.Lock()
	var target *models.Card
	for i := range c.data.Blockers {
		if c.data.Blockers[i].ID == cardID {
			target = &c.data.Blockers[i]
			break
		}
	}
	if target == nil {
		c.mu.Unlock()
		return nil
	}
	resolved := !target.Resolved
	c.mu.Unlock()

	card, err := c.client.UpdateCard(ctx, cardID, api.UpdateCardRequest{Resolved: &resolved})
	if err != nil {
		c.log.Error(ctx, "resolve toggle failed", "card_id", cardID, "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.data.Blockers {
		if c.data.Blockers[i].ID == cardID {
			c.data.Blockers[i] = *card
			break
		}
	}
	return nil
}

// bucket returns the column slice for a category. Callers hold c.mu.
func (c *Controller) bucket(t models.CardType) []models.Card {
	switch t {
	case models.CardTypeCompleted:
		return c.data.Done
	case models.CardTypePlanned:
		return c.data.Planned
	default:
		return c.data.Blockers
	}
}

func (c *Controller) setBucket(t models.CardType, cards []models.Card) {
	switch t {
	case models.CardTypeCompleted:
		c.data.Done = cards
	case models.CardTypePlanned:
		c.data.Planned = cards
	default:
		c.data.Blockers = cards
	}
}
