package catalog

// State is the dataset of one process lifetime. It is built once by the
// loader and only read afterwards.
type State struct {
	Products   []Product
	Categories []string
	Err        error
}

// Failed returns the state to serve when the initial load did not succeed:
// no products, only the sentinel category.
func Failed(err error) State {
	return State{
		Products:   []Product{},
		Categories: WithSentinel(nil),
		Err:        err,
	}
}

func (s State) Loaded() bool { return s.Err == nil }

func (s State) Visible(query, category string) []Product {
	return ComputeVisible(s.Products, query, category)
}

func (s State) Find(id string) (Product, bool) {
	return Find(s.Products, id)
}
