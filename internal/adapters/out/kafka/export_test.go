package kafka

// NewOrderEventPublisherWithWriter exposes the writer seam to external tests.
func NewOrderEventPublisherWithWriter(writer messageWriter) *OrderEventPublisher {
	return newOrderEventPublisher(writer)
}
