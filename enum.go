package waymark

// Enumerable is the interface a Family exposes once its member type is
// erased.
//
// Catalogs collect their families as Enumerables to verify, count, and
// display them without knowing each family's value type. Adding a family to
// a catalog ought to include registering it in that catalog's Enumerable
// list so boot-time verification covers it.
type Enumerable interface {
	Name() string
	Kind() Kind
	Len() int
	DisplayLabels() []string
	Verify() error
}
