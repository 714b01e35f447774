// internal/domain/homework/status.go
package homework

// Status is the review state reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// VerdictFor returns the human-readable verdict for a status.
func VerdictFor(status Status) (string, bool) {
	verdict, ok := verdicts[status]
	return verdict, ok
}
