package classify

// Classifier routes incoming items into named buckets, lazily creating the
// aggregator behind each bucket on first sight of its key. A bucket name maps
// to exactly one aggregator for the lifetime of the classifier; once created
// a bucket is never replaced or removed.
type Classifier struct {
	router  Router
	factory Factory
	names   []string
	buckets map[string]Aggregator
}

// NewClassifier creates a classifier that partitions items with the given
// router and backs each bucket with an aggregator from the given factory.
func NewClassifier(router Router, factory Factory) (*Classifier, error) {
	if router == nil {
		return nil, ErrRouterRequired
	}
	if factory == nil {
		return nil, ErrFactoryRequired
	}
	return &Classifier{
		router:  router,
		factory: factory,
		buckets: make(map[string]Aggregator),
	}, nil
}

// NewSingleValueClassifier creates a classifier that buckets items by one
// extracted key.
func NewSingleValueClassifier(extractor Extractor, factory Factory) (*Classifier, error) {
	router, err := SingleValue(extractor)
	if err != nil {
		return nil, err
	}
	return NewClassifier(router, factory)
}

// Put routes one item. All target bucket names are determined in a single
// routing pass; an empty name is normalized to the Unknown bucket so no item
// is silently dropped. Buckets are registered before the item is forwarded
// into them. A routing error aborts the item with no bucket created for it;
// buckets already updated for earlier names in the same pass keep their
// update, routing is not transactional.
func (c *Classifier) Put(item interface{}) error {
	names, err := c.router.Route(item)
	if err != nil {
		return err
	}

	for _, name := range names {
		if name == "" {
			name = Unknown
		}

		bucket, ok := c.buckets[name]
		if !ok {
			bucket = c.factory.Create()
			c.buckets[name] = bucket
			c.names = append(c.names, name)
		}

		if err := bucket.Put(item); err != nil {
			return err
		}
	}

	return nil
}

// Classes returns the live bucket mapping. Callers read state through each
// bucket's State().
func (c *Classifier) Classes() map[string]Aggregator {
	return c.buckets
}

// Names returns the bucket names in order of first appearance.
func (c *Classifier) Names() []string {
	return c.names
}

// State realizes the full bucket-name to state mapping. Values may themselves
// be nested mappings when buckets are backed by classifying aggregators.
func (c *Classifier) State() map[string]interface{} {
	state := make(map[string]interface{}, len(c.names))
	for _, name := range c.names {
		state[name] = c.buckets[name].State()
	}
	return state
}
