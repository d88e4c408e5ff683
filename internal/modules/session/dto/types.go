package dto

import "time"

type StartInput struct {
	Work  time.Duration
	Break time.Duration
}

type StateOutput struct {
	Phase     string
	Remaining time.Duration
	Running   bool
}
