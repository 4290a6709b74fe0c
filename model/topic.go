package model

type CreateTopicRequest struct {
	Topic             string `json:"topic"`
	Partitions        int32  `json:"partitions"`
	ReplicationFactor int32  `json:"replication_factor"`
}

type CreateTopicReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type DeleteTopicRequest struct {
	Topic string `json:"topic"`
}

type DeleteTopicReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ListTopicsRequest struct{}

type ListTopicsReply struct {
	Topics []string `json:"topics"`
}

type DescribeTopicRequest struct {
	Topic string `json:"topic"`
}

// DescribeTopicReply only carries the echoed topic name for a topic that
// exists. The remaining fields are reserved and left at their zero values.
type DescribeTopicReply struct {
	Topic       string            `json:"topic"`
	RetentionMs int64             `json:"retention_ms"`
	Config      map[string]string `json:"config"`
	Error       string            `json:"error"`
	Partitions  []PartitionInfo   `json:"partitions"`
}

type PartitionInfo struct {
	Partition int32   `json:"partition"`
	Leader    int32   `json:"leader"`
	Replicas  []int32 `json:"replicas"`
}
