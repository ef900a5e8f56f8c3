package service

// IDGenerator produces entity identifiers of the form <prefix><unique suffix>.
type IDGenerator interface {
	New(prefix string) string
}
