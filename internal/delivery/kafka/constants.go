package kafka

const (
	TopicOrderCreated = "orders.created"

	defaultPartitions        = 3
	defaultReplicationFactor = 1
)
