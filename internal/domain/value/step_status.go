package value

type StepStatus string

const (
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
)

func (s StepStatus) String() string {
	return string(s)
}

func StepStatusOf(ok bool) StepStatus {
	if ok {
		return StepCompleted
	}

	return StepFailed
}
