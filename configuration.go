package dlist

type Configuration struct {
	capacity int
}

// Creates a configuration object with sensible defaults
// Use this as the start of the fluent configuration:
// e.g.: dlist.Build(dlist.Configure().Capacity(1024))
func Configure() *Configuration {
	return &Configuration{
		capacity: 16,
	}
}

// The number of nodes to allocate room for up front. The list still grows
// past this; it only saves reallocations when the final size is known.
// [16]
func (c *Configuration) Capacity(count int) *Configuration {
	if count < 0 {
		count = 0
	}
	c.capacity = count
	return c
}
