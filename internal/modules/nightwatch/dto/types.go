package dto

import "time"

type StatusOutput struct {
	Night     bool
	Now       time.Time
	StartHour int
	EndHour   int
}
