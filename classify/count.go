package classify

// counter counts the items put into it.
type counter struct {
	n int
}

func (c *counter) Put(item interface{}) error {
	c.n++
	return nil
}

func (c *counter) State() interface{} {
	return c.n
}

// CountFactory returns a factory producing counting aggregators. Each
// aggregator's state is the number of items put into it, starting at zero.
func CountFactory() Factory {
	return FactoryFunc(func() Aggregator {
		return &counter{}
	})
}
