package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
)

// MinPollOptions is the smallest number of options a poll may have
const MinPollOptions = 2

// PollStatus is the lifecycle state of a poll
type PollStatus string

// Poll statuses. Settling freezes voting while a result is being distributed.
const (
	PollActive   PollStatus = "active"
	PollSettling PollStatus = "settling"
	PollClosed   PollStatus = "closed"
)

// Valid reports whether the status is known
func (s PollStatus) Valid() bool {
	return s == PollActive || s == PollSettling || s == PollClosed
}

// Option is a choice within a poll; it is never referenced outside its poll
type Option struct {
	ID        string
	PollID    string
	Position  int
	Text      string
	VoteCount int64
	Amount    Money
}

// Poll is a predict-and-win question with a priced vote
type Poll struct {
	ID             string
	Title          string
	Description    string
	PricePerVote   Money
	Options        []Option
	Status         PollStatus
	ResultOptionID string
	TotalVotes     int64
	TotalAmount    Money
	CreatedAt      time.Time
	ClosedAt       *time.Time
}

// NewPoll validates an admin's poll definition and creates an active poll
func NewPoll(
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	title string,
	description string,
	pricePerVote Money,
	optionTexts []string,
) (*Poll, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errs.ErrInvalidPoll)
	}
	if pricePerVote <= 0 {
		return nil, fmt.Errorf("%w: price per vote must be positive", errs.ErrInvalidPoll)
	}

	p := &Poll{
		ID:           ids.NewID(coreport.PrefixPoll),
		Title:        title,
		Description:  strings.TrimSpace(description),
		PricePerVote: pricePerVote,
		Status:       PollActive,
		CreatedAt:    timeProvider.Now(),
	}
	options, err := buildOptions(ids, p.ID, optionTexts)
	if err != nil {
		return nil, err
	}
	p.Options = options
	return p, nil
}

func buildOptions(ids coreport.IDGenerator, pollID string, texts []string) ([]Option, error) {
	if len(texts) < MinPollOptions {
		return nil, fmt.Errorf("%w: at least %d options are required", errs.ErrInvalidPoll, MinPollOptions)
	}
	seen := make(map[string]struct{}, len(texts))
	options := make([]Option, 0, len(texts))
	for i, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, fmt.Errorf("%w: option %d is empty", errs.ErrInvalidPoll, i+1)
		}
		key := strings.ToLower(text)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate option %q", errs.ErrInvalidPoll, text)
		}
		seen[key] = struct{}{}
		options = append(options, Option{
			ID:       ids.NewID(coreport.PrefixOption),
			PollID:   pollID,
			Position: i,
			Text:     text,
		})
	}
	return options, nil
}

// Option returns the option with the given ID
func (p *Poll) Option(optionID string) (*Option, bool) {
	for i := range p.Options {
		if p.Options[i].ID == optionID {
			return &p.Options[i], true
		}
	}
	return nil, false
}

// HasVotes reports whether any vote references the poll
func (p *Poll) HasVotes() bool {
	return p.TotalVotes > 0
}

// EnsureAcceptingVotes fails unless the poll is active
func (p *Poll) EnsureAcceptingVotes() error {
	if p.Status != PollActive {
		return fmt.Errorf("%w: poll %s is %s", errs.ErrPollNotActive, p.ID, p.Status)
	}
	return nil
}

// RecordVote applies a confirmed vote to the option and poll tallies
func (p *Poll) RecordVote(optionID string, voteCount int64, amount Money) error {
	if err := p.EnsureAcceptingVotes(); err != nil {
		return err
	}
	opt, ok := p.Option(optionID)
	if !ok {
		return errs.ErrInvalidOption
	}
	opt.VoteCount += voteCount
	opt.Amount += amount
	p.TotalVotes += voteCount
	p.TotalAmount += amount
	return nil
}

// BeginSettlement freezes voting and records the winning option. A poll already
// settling with the same option may resume; any other option conflicts.
func (p *Poll) BeginSettlement(winningOptionID string) error {
	switch p.Status {
	case PollClosed:
		return errs.ErrPollAlreadyClosed
	case PollSettling:
		if p.ResultOptionID != winningOptionID {
			return errs.ErrSettlementMismatch
		}
		return nil
	}
	if _, ok := p.Option(winningOptionID); !ok {
		return errs.ErrInvalidOption
	}
	p.Status = PollSettling
	p.ResultOptionID = winningOptionID
	return nil
}

// Close finishes settlement. Closed polls are immutable.
func (p *Poll) Close(timeProvider coreport.TimeProvider) error {
	if p.Status != PollSettling {
		return fmt.Errorf("%w: poll %s cannot close from %s", errs.ErrStateConflict, p.ID, p.Status)
	}
	now := timeProvider.Now()
	p.Status = PollClosed
	p.ClosedAt = &now
	return nil
}

// UpdateDetails changes the title and description of an active poll
func (p *Poll) UpdateDetails(title, description *string) error {
	if err := p.EnsureAcceptingVotes(); err != nil {
		return err
	}
	if title != nil {
		t := strings.TrimSpace(*title)
		if t == "" {
			return fmt.Errorf("%w: title is required", errs.ErrInvalidPoll)
		}
		p.Title = t
	}
	if description != nil {
		p.Description = strings.TrimSpace(*description)
	}
	return nil
}

// ReplaceOptions swaps the option set; only allowed before the first vote
func (p *Poll) ReplaceOptions(ids coreport.IDGenerator, texts []string) error {
	if err := p.ensureEditable(); err != nil {
		return err
	}
	options, err := buildOptions(ids, p.ID, texts)
	if err != nil {
		return err
	}
	p.Options = options
	return nil
}

// ChangePrice sets a new price per vote; only allowed before the first vote
func (p *Poll) ChangePrice(price Money) error {
	if err := p.ensureEditable(); err != nil {
		return err
	}
	if price <= 0 {
		return fmt.Errorf("%w: price per vote must be positive", errs.ErrInvalidPoll)
	}
	p.PricePerVote = price
	return nil
}

// EnsureDeletable fails for polls mid-settlement and for active polls holding money
func (p *Poll) EnsureDeletable() error {
	switch {
	case p.Status == PollSettling:
		return fmt.Errorf("%w: poll %s is settling", errs.ErrPollNotActive, p.ID)
	case p.Status == PollActive && p.HasVotes():
		return errs.ErrPollHasVotes
	}
	return nil
}

func (p *Poll) ensureEditable() error {
	if err := p.EnsureAcceptingVotes(); err != nil {
		return err
	}
	if p.HasVotes() {
		return errs.ErrPollOptionsLocked
	}
	return nil
}
