package succession

import "time"

type Readiness string

const (
	ReadyNow          Readiness = "Ready Now"
	ReadyInOneToTwo   Readiness = "Ready in 1-2 Years"
	ReadyInThreeYears Readiness = "Ready in 3+ Years"
)

var Readinesses = []string{string(ReadyNow), string(ReadyInOneToTwo), string(ReadyInThreeYears)}

type SuccessionPlan struct {
	ID            string
	CriticalRole  string
	SuccessorID   string
	SuccessorName string
	Readiness     Readiness
	CreatedAt     time.Time
}
