package model

type ProduceRequest struct {
	Topic     string `json:"topic"`
	Message   string `json:"message"`
	MessageId string `json:"message_id"`
}

// Size is the number of payload bytes carried by the request.
func (r *ProduceRequest) Size() int {
	return len(r.Message)
}

type ProduceReply struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	MessageId string `json:"message_id"`
}

type BatchProduceRequest struct {
	Topic    string         `json:"topic"`
	Messages []BatchMessage `json:"messages"`
}

func (r *BatchProduceRequest) Size() int {
	total := 0
	for i := range r.Messages {
		total += len(r.Messages[i].Message)
	}
	return total
}

type BatchMessage struct {
	Message   string `json:"message"`
	MessageId string `json:"message_id"`
}

// BatchProduceReply holds one outcome per input message, in input order.
type BatchProduceReply struct {
	Success []bool   `json:"success"`
	Error   []string `json:"error"`
}
