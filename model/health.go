package model

type HealthCheckRequest struct{}

type HealthCheckReply struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
}
