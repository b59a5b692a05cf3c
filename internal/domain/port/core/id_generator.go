package core

// ID prefixes for the aggregates the service creates
const (
	PrefixUser        = "user"
	PrefixWallet      = "wal"
	PrefixPoll        = "poll"
	PrefixOption      = "opt"
	PrefixVote        = "vote"
	PrefixTransaction = "txn"
	PrefixOrder       = "order"
	PrefixSession     = "sess"
	PrefixWithdrawal  = "wd"
	PrefixRequest     = "req"
)

// IDGenerator issues unique, prefixed identifiers
type IDGenerator interface {
	NewID(prefix string) string
}
