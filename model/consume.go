package model

type ConsumeRequest struct {
	Topic       string `json:"topic"`
	Partition   int32  `json:"partition"`
	Offset      int64  `json:"offset"`
	MaxMessages int32  `json:"max_messages"`
}

type ConsumeReply struct {
	Messages   []ConsumedMessage `json:"messages"`
	Error      string            `json:"error"`
	NextOffset int64             `json:"next_offset"`
}

type StreamConsumeRequest struct {
	Topic     string `json:"topic"`
	Partition int32  `json:"partition"`
	Offset    int64  `json:"offset"`
}

type ConsumedMessage struct {
	Message   string            `json:"message"`
	Offset    int64             `json:"offset"`
	Key       string            `json:"key"`
	Headers   map[string]string `json:"headers"`
	Timestamp int64             `json:"timestamp"`
	MessageId string            `json:"message_id"`
	Partition int32             `json:"partition"`
}

type CommitOffsetRequest struct {
	Topic     string `json:"topic"`
	Partition int32  `json:"partition"`
	Offset    int64  `json:"offset"`
	GroupId   string `json:"group_id"`
}

type CommitOffsetReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ListConsumerGroupsRequest struct{}

type ListConsumerGroupsReply struct {
	Groups []string `json:"groups"`
	Error  string   `json:"error"`
}

type DescribeConsumerGroupRequest struct {
	GroupId string `json:"group_id"`
}

type DescribeConsumerGroupReply struct {
	GroupId string        `json:"group_id"`
	Offsets []GroupOffset `json:"offsets"`
	Error   string        `json:"error"`
}

type GroupOffset struct {
	Topic     string `json:"topic"`
	Partition int32  `json:"partition"`
	Offset    int64  `json:"offset"`
}
